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
)

// VoteRepository stores one like/dislike record per (post, user) in post_likes.
type VoteRepository struct {
	collection *mongo.Collection
}

var _ contract.IVoteRepository = (*VoteRepository)(nil)

// NewVoteRepository creates and returns a new VoteRepository instance.
func NewVoteRepository(db *mongo.Database) *VoteRepository {
	return &VoteRepository{
		collection: db.Collection("post_likes"),
	}
}

// GetVote retrieves the user's vote on a post.
func (r *VoteRepository) GetVote(ctx context.Context, postID, userID string) (*entity.Vote, error) {
	var vote entity.Vote
	err := r.collection.FindOne(ctx, bson.M{"post_id": postID, "user_id": userID}).Decode(&vote)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrVoteNotFound
		}
		return nil, fmt.Errorf("failed to retrieve vote: %w", err)
	}
	return &vote, nil
}

// CreateVote inserts a vote record. A second record for the same pair is
// rejected by the unique index.
func (r *VoteRepository) CreateVote(ctx context.Context, vote *entity.Vote) error {
	if _, err := r.collection.InsertOne(ctx, vote); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: vote for post %s", contract.ErrDuplicateKey, vote.PostID)
		}
		return fmt.Errorf("failed to create vote record: %w", err)
	}
	return nil
}

// SetIsLike flips an existing vote between like and dislike.
func (r *VoteRepository) SetIsLike(ctx context.Context, voteID string, isLike bool) error {
	update := bson.M{"$set": bson.M{"is_like": isLike, "updated_at": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": voteID}, update)
	if err != nil {
		return fmt.Errorf("failed to update vote: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrVoteNotFound
	}
	return nil
}

// DeleteVote removes a vote record by its id.
func (r *VoteRepository) DeleteVote(ctx context.Context, voteID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": voteID})
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrVoteNotFound
	}
	return nil
}

// DeleteByPostID removes every vote on a post.
func (r *VoteRepository) DeleteByPostID(ctx context.Context, postID string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete votes of post %s: %w", postID, err)
	}
	return res.DeletedCount, nil
}
