package contract

import (
	"context"

	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
)

// CachedPostsPage is the cached payload for the post listing.
type CachedPostsPage struct {
	Posts []entity.Post `json:"posts"`
	Total int64         `json:"total"`
}

// IPostCache defines caching operations for post listings. Listing keys
// embed the generation, which InvalidatePostLists advances.
type IPostCache interface {
	ListGeneration(ctx context.Context) (int64, error)
	GetPostsPage(ctx context.Context, key string) (*CachedPostsPage, bool, error)
	SetPostsPage(ctx context.Context, key string, page *CachedPostsPage) error
	InvalidatePostLists(ctx context.Context) error
}
