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

type MongoUserRepository struct {
	collection *mongo.Collection
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", contract.ErrDuplicateKey, err)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByField reports whether any user has value in the given field.
func (r *MongoUserRepository) ExistsByField(ctx context.Context, field entity.DuplicateField, value string) (bool, error) {
	if !field.Valid() {
		return false, fmt.Errorf("unsupported lookup field %q", field)
	}
	n, err := r.collection.CountDocuments(ctx, bson.M{string(field): value})
	if err != nil {
		return false, fmt.Errorf("failed to count users by %s: %w", field, err)
	}
	return n > 0, nil
}
