package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
)

var errStoreDown = errors.New("store unavailable")

// memStore backs the in-memory repositories so a transaction fake can
// snapshot and restore all collections at once.
type memStore struct {
	mu       sync.Mutex
	posts    map[string]entity.Post
	votes    map[string]entity.Vote
	comments map[string]entity.Comment
	users    map[string]entity.User
	media    map[string]entity.Media
	files    map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{
		posts:    map[string]entity.Post{},
		votes:    map[string]entity.Vote{},
		comments: map[string]entity.Comment{},
		users:    map[string]entity.User{},
		media:    map[string]entity.Media{},
		files:    map[string][]byte{},
	}
}

func (s *memStore) snapshot() *memStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := newMemStore()
	for k, v := range s.posts {
		c.posts[k] = v
	}
	for k, v := range s.votes {
		c.votes[k] = v
	}
	for k, v := range s.comments {
		c.comments[k] = v
	}
	return c
}

func (s *memStore) restore(c *memStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts, s.votes, s.comments = c.posts, c.votes, c.comments
}

func (s *memStore) votesFor(postID, userID string) []entity.Vote {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Vote
	for _, v := range s.votes {
		if v.PostID == postID && v.UserID == userID {
			out = append(out, v)
		}
	}
	return out
}

func (s *memStore) post(id string) entity.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.posts[id]
}

// ---- transactors ----

type atomicTx struct{ store *memStore }

func (t *atomicTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snap := t.store.snapshot()
	if err := fn(ctx); err != nil {
		t.store.restore(snap)
		return err
	}
	return nil
}

func (t *atomicTx) Atomic() bool { return true }

type sequentialTx struct{}

func (sequentialTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (sequentialTx) Atomic() bool { return false }

// ---- posts ----

type fakePostRepo struct {
	store       *memStore
	failDelta   int // fail the n-th ApplyVoteDelta call (1-based), 0 = never
	deltaCalls  int
	failGetPage bool
	onGetPosts  func() // runs before the query, outside the store lock
}

func (r *fakePostRepo) CreatePost(ctx context.Context, post *entity.Post) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.posts[post.ID] = *post
	return nil
}

func (r *fakePostRepo) GetPostByID(ctx context.Context, postID string) (*entity.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.posts[postID]
	if !ok {
		return nil, contract.ErrPostNotFound
	}
	return &p, nil
}

func (r *fakePostRepo) IncrementViews(ctx context.Context, postID string) (*entity.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.posts[postID]
	if !ok {
		return nil, contract.ErrPostNotFound
	}
	p.Views++
	r.store.posts[postID] = p
	return &p, nil
}

func (r *fakePostRepo) UpdatePostByAuthor(ctx context.Context, postID, author, title, content string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.posts[postID]
	if !ok || p.Author != author {
		return false, nil
	}
	p.Title, p.Content = title, content
	r.store.posts[postID] = p
	return true, nil
}

func (r *fakePostRepo) DeletePostByAuthor(ctx context.Context, postID, author string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.posts[postID]
	if !ok || p.Author != author {
		return false, nil
	}
	delete(r.store.posts, postID)
	return true, nil
}

func (r *fakePostRepo) GetPosts(ctx context.Context, pagination contract.Pagination) ([]*entity.Post, int64, error) {
	if r.failGetPage {
		return nil, 0, errStoreDown
	}
	if r.onGetPosts != nil {
		r.onGetPosts()
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	all := make([]entity.Post, 0, len(r.store.posts))
	for _, p := range r.store.posts {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	start := int(pagination.Skip())
	if start > len(all) {
		start = len(all)
	}
	end := start + pagination.PageSize
	if end > len(all) {
		end = len(all)
	}
	out := make([]*entity.Post, 0, end-start)
	for i := start; i < end; i++ {
		p := all[i]
		out = append(out, &p)
	}
	return out, int64(len(all)), nil
}

func (r *fakePostRepo) ApplyVoteDelta(ctx context.Context, postID string, likes, dislikes int) (*entity.Post, error) {
	r.deltaCalls++
	if r.failDelta == r.deltaCalls {
		return nil, errStoreDown
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.posts[postID]
	if !ok {
		return nil, contract.ErrPostNotFound
	}
	p.Likes += likes
	p.Dislikes += dislikes
	r.store.posts[postID] = p
	return &p, nil
}

// ---- votes ----

type fakeVoteRepo struct {
	store      *memStore
	failWrites bool
}

func (r *fakeVoteRepo) GetVote(ctx context.Context, postID, userID string) (*entity.Vote, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, v := range r.store.votes {
		if v.PostID == postID && v.UserID == userID {
			v := v
			return &v, nil
		}
	}
	return nil, contract.ErrVoteNotFound
}

func (r *fakeVoteRepo) CreateVote(ctx context.Context, vote *entity.Vote) error {
	if r.failWrites {
		return errStoreDown
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, v := range r.store.votes {
		if v.PostID == vote.PostID && v.UserID == vote.UserID {
			return contract.ErrDuplicateKey
		}
	}
	r.store.votes[vote.ID] = *vote
	return nil
}

func (r *fakeVoteRepo) SetIsLike(ctx context.Context, voteID string, isLike bool) error {
	if r.failWrites {
		return errStoreDown
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	v, ok := r.store.votes[voteID]
	if !ok {
		return contract.ErrVoteNotFound
	}
	v.IsLike = isLike
	r.store.votes[voteID] = v
	return nil
}

func (r *fakeVoteRepo) DeleteVote(ctx context.Context, voteID string) error {
	if r.failWrites {
		return errStoreDown
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.votes[voteID]; !ok {
		return contract.ErrVoteNotFound
	}
	delete(r.store.votes, voteID)
	return nil
}

func (r *fakeVoteRepo) DeleteByPostID(ctx context.Context, postID string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for id, v := range r.store.votes {
		if v.PostID == postID {
			delete(r.store.votes, id)
			n++
		}
	}
	return n, nil
}

// ---- comments ----

type fakeCommentRepo struct {
	store         *memStore
	failCascade   bool
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.comments[comment.ID] = *comment
	return nil
}

func (r *fakeCommentRepo) UpdateByAuthor(ctx context.Context, commentID, author, content string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.comments[commentID]
	if !ok || c.Author != author {
		return false, nil
	}
	c.Content = content
	r.store.comments[commentID] = c
	return true, nil
}

func (r *fakeCommentRepo) DeleteByAuthor(ctx context.Context, commentID, author string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.comments[commentID]
	if !ok || c.Author != author {
		return false, nil
	}
	delete(r.store.comments, commentID)
	return true, nil
}

func (r *fakeCommentRepo) GetByPostID(ctx context.Context, postID string, pagination contract.Pagination) ([]*entity.Comment, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var all []entity.Comment
	for _, c := range r.store.comments {
		if c.PostID == postID {
			all = append(all, c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	start := int(pagination.Skip())
	if start > len(all) {
		start = len(all)
	}
	end := start + pagination.PageSize
	if end > len(all) {
		end = len(all)
	}
	out := make([]*entity.Comment, 0, end-start)
	for i := start; i < end; i++ {
		c := all[i]
		out = append(out, &c)
	}
	return out, int64(len(all)), nil
}

func (r *fakeCommentRepo) DeleteByPostID(ctx context.Context, postID string) (int64, error) {
	if r.failCascade {
		return 0, errStoreDown
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for id, c := range r.store.comments {
		if c.PostID == postID {
			delete(r.store.comments, id)
			n++
		}
	}
	return n, nil
}

// ---- users ----

type fakeUserRepo struct {
	store      *memStore
	failCreate error
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) ExistsByField(ctx context.Context, field entity.DuplicateField, value string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		switch field {
		case entity.DuplicateFieldEmail:
			if u.Email == value {
				return true, nil
			}
		case entity.DuplicateFieldNickname:
			if u.Nickname == value {
				return true, nil
			}
		}
	}
	return false, nil
}

// ---- media ----

type fakeMediaRepo struct{ store *memStore }

func (r *fakeMediaRepo) CreateMedia(ctx context.Context, media *entity.Media) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.media[media.ID] = *media
	return nil
}

func (r *fakeMediaRepo) GetMediaByID(ctx context.Context, mediaID string) (*entity.Media, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	m, ok := r.store.media[mediaID]
	if !ok {
		return nil, contract.ErrMediaNotFound
	}
	return &m, nil
}

type fakeStorage struct{ store *memStore }

func (s *fakeStorage) Upload(ctx context.Context, fileID, name string, r io.Reader) (int64, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.files[fileID] = b
	return int64(len(b)), nil
}

func (s *fakeStorage) Open(ctx context.Context, fileID string) (io.ReadCloser, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	b, ok := s.store.files[fileID]
	if !ok {
		return nil, contract.ErrMediaNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *fakeStorage) Delete(ctx context.Context, fileID string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	delete(s.store.files, fileID)
	return nil
}

// ---- cache ----

type fakePostCache struct {
	pages       map[string]*contract.CachedPostsPage
	gen         int64
	invalidated int
}

func newFakePostCache() *fakePostCache {
	return &fakePostCache{pages: map[string]*contract.CachedPostsPage{}}
}

func (c *fakePostCache) ListGeneration(ctx context.Context) (int64, error) {
	return c.gen, nil
}

func (c *fakePostCache) GetPostsPage(ctx context.Context, key string) (*contract.CachedPostsPage, bool, error) {
	p, ok := c.pages[key]
	return p, ok, nil
}

func (c *fakePostCache) SetPostsPage(ctx context.Context, key string, page *contract.CachedPostsPage) error {
	c.pages[key] = page
	return nil
}

func (c *fakePostCache) InvalidatePostLists(ctx context.Context) error {
	c.invalidated++
	c.gen++
	c.pages = map[string]*contract.CachedPostsPage{}
	return nil
}

// ---- collaborators ----

type fakeSession struct {
	userID   string
	nickname string
}

func (s fakeSession) UserID(ctx context.Context) (string, bool) {
	return s.userID, s.userID != ""
}

func (s fakeSession) Nickname(ctx context.Context) (string, bool) {
	return s.nickname, s.nickname != ""
}

type seqUUID struct{ n int }

func (g *seqUUID) NewUUID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Warnf(string, ...interface{})    {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{})   {}
func (nopLogger) Fatalf(string, ...interface{})   {}
