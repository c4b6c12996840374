package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository represents the MongoDB implementation of the IPostRepository interface.
type PostRepository struct {
	collection *mongo.Collection
}

var _ contract.IPostRepository = (*PostRepository)(nil)

// NewPostRepository creates and returns a new PostRepository instance.
func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		collection: db.Collection("posts"),
	}
}

// CreatePost inserts a new post document.
func (r *PostRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// GetPostByID retrieves a single post.
func (r *PostRepository) GetPostByID(ctx context.Context, postID string) (*entity.Post, error) {
	var post entity.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}
	return &post, nil
}

// IncrementViews bumps the view counter and returns the updated post.
func (r *PostRepository) IncrementViews(ctx context.Context, postID string) (*entity.Post, error) {
	return r.incAndFetch(ctx, postID, bson.M{"views": 1})
}

// UpdatePostByAuthor rewrites title and content; false means no post with
// that id belongs to author.
func (r *PostRepository) UpdatePostByAuthor(ctx context.Context, postID, author, title, content string) (bool, error) {
	filter := bson.M{"_id": postID, "author": author}
	update := bson.M{"$set": bson.M{"title": title, "content": content, "updated_at": time.Now()}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update post: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// DeletePostByAuthor removes the post if author wrote it.
func (r *PostRepository) DeletePostByAuthor(ctx context.Context, postID, author string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": postID, "author": author})
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// GetPosts returns one page of posts, newest first, and the total count.
func (r *PostRepository) GetPosts(ctx context.Context, pagination contract.Pagination) ([]*entity.Post, int64, error) {
	totalCount, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total post count: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(pagination.Skip()).
		SetLimit(int64(pagination.PageSize))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*entity.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, totalCount, nil
}

// ApplyVoteDelta adjusts both counters in one update and returns the post
// as it is afterwards.
func (r *PostRepository) ApplyVoteDelta(ctx context.Context, postID string, likes, dislikes int) (*entity.Post, error) {
	return r.incAndFetch(ctx, postID, bson.M{"likes": likes, "dislikes": dislikes})
}

func (r *PostRepository) incAndFetch(ctx context.Context, postID string, inc bson.M) (*entity.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post entity.Post
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": postID}, bson.M{"$inc": inc}, opts).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to update post counters: %w", err)
	}
	return &post, nil
}
