package mongodb

import (
	"context"

	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// MongoTransactor runs fn inside a multi-document transaction. It needs a
// replica set or sharded cluster.
type MongoTransactor struct {
	client *mongo.Client
}

var _ contract.ITransactor = (*MongoTransactor)(nil)

func NewMongoTransactor(client *mongo.Client) *MongoTransactor {
	return &MongoTransactor{client: client}
}

// WithTransaction commits when fn returns nil and aborts otherwise. The
// driver re-runs fn on transient transaction errors.
func (t *MongoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	sess, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	}, txnOpts)
	return err
}

func (t *MongoTransactor) Atomic() bool { return true }

// SequentialTransactor runs fn directly. Steps already applied stay applied
// when a later one fails.
type SequentialTransactor struct{}

var _ contract.ITransactor = SequentialTransactor{}

func (SequentialTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (SequentialTransactor) Atomic() bool { return false }
