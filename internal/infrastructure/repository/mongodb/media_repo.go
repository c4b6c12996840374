package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MediaRepository represents the MongoDB implementation of the IMediaRepository interface.
type MediaRepository struct {
	collection *mongo.Collection
}

var _ contract.IMediaRepository = (*MediaRepository)(nil)

// NewMediaRepository creates and returns a new MediaRepository instance.
func NewMediaRepository(db *mongo.Database) *MediaRepository {
	return &MediaRepository{
		collection: db.Collection("media"),
	}
}

// CreateMedia inserts a new media record into the database.
func (r *MediaRepository) CreateMedia(ctx context.Context, media *entity.Media) error {
	_, err := r.collection.InsertOne(ctx, media)
	if err != nil {
		return fmt.Errorf("failed to create media record: %w", err)
	}
	return nil
}

// GetMediaByID retrieves a single media record by its unique ID.
func (r *MediaRepository) GetMediaByID(ctx context.Context, mediaID string) (*entity.Media, error) {
	var media entity.Media
	err := r.collection.FindOne(ctx, bson.M{"_id": mediaID}).Decode(&media)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to retrieve media record with ID %s: %w", mediaID, err)
	}
	return &media, nil
}
