package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CommentRepository struct {
	collection *mongo.Collection
}

var _ contract.ICommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{
		collection: db.Collection("comments"),
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if _, err := r.collection.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// UpdateByAuthor replaces the content of a comment author wrote.
func (r *CommentRepository) UpdateByAuthor(ctx context.Context, commentID, author, content string) (bool, error) {
	filter := bson.M{"_id": commentID, "author": author}
	update := bson.M{"$set": bson.M{"content": content, "updated_at": time.Now()}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update comment: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *CommentRepository) DeleteByAuthor(ctx context.Context, commentID, author string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": commentID, "author": author})
	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// GetByPostID pages through a post's comments, oldest first.
func (r *CommentRepository) GetByPostID(ctx context.Context, postID string, pagination contract.Pagination) ([]*entity.Comment, int64, error) {
	filter := bson.M{"post_id": postID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(pagination.Skip()).
		SetLimit(int64(pagination.PageSize))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find comments: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []*entity.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, 0, fmt.Errorf("failed to decode comments: %w", err)
	}
	return comments, total, nil
}

func (r *CommentRepository) DeleteByPostID(ctx context.Context, postID string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete comments of post %s: %w", postID, err)
	}
	return res.DeletedCount, nil
}
