package mongodb

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GridFSStorage keeps uploaded file bytes in a GridFS bucket.
type GridFSStorage struct {
	db     *mongo.Database
	bucket string
}

var _ contract.IFileStorage = (*GridFSStorage)(nil)

func NewGridFSStorage(db *mongo.Database, bucket string) *GridFSStorage {
	return &GridFSStorage{db: db, bucket: bucket}
}

// open returns a bucket bound to ctx's deadline. Buckets carry their
// deadlines as state, so each call gets its own.
func (s *GridFSStorage) open(ctx context.Context) (*gridfs.Bucket, error) {
	b, err := gridfs.NewBucket(s.db, options.GridFSBucket().SetName(s.bucket))
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", s.bucket, err)
	}
	if dl, ok := ctx.Deadline(); ok {
		if err := b.SetWriteDeadline(dl); err != nil {
			return nil, err
		}
		if err := b.SetReadDeadline(dl); err != nil {
			return nil, err
		}
	}
	return b, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// Upload streams r into the bucket under fileID and returns the bytes written.
func (s *GridFSStorage) Upload(ctx context.Context, fileID, name string, r io.Reader) (int64, error) {
	b, err := s.open(ctx)
	if err != nil {
		return 0, err
	}
	cr := &countingReader{r: r}
	if err := b.UploadFromStreamWithID(fileID, name, cr); err != nil {
		return 0, fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return cr.n, nil
}

// Open returns a reader over the stored file. The caller closes it.
func (s *GridFSStorage) Open(ctx context.Context, fileID string) (io.ReadCloser, error) {
	b, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	stream, err := b.OpenDownloadStream(fileID)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, contract.ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to open file %s: %w", fileID, err)
	}
	return stream, nil
}

func (s *GridFSStorage) Delete(ctx context.Context, fileID string) error {
	b, err := s.open(ctx)
	if err != nil {
		return err
	}
	if err := b.Delete(fileID); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return contract.ErrMediaNotFound
		}
		return fmt.Errorf("failed to delete file %s: %w", fileID, err)
	}
	return nil
}
