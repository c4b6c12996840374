package dto

import (
	"time"

	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
)

// UserResponse is the DTO for a user.
type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Nickname  string  `json:"nickname"`
	Name      *string `json:"name,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Nickname:  user.Nickname,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// IDResponse carries the id of a created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// URLResponse carries the public URL of an upload.
type URLResponse struct {
	URL string `json:"url"`
}

// DuplicateResponse answers a nickname/email availability check.
type DuplicateResponse struct {
	Field     string `json:"field"`
	Duplicate bool   `json:"duplicate"`
}

// PageResponse mirrors entity.Page for any item DTO.
type PageResponse[T any] struct {
	Items       []T   `json:"items"`
	TotalItems  int64 `json:"total_items"`
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// ToPageResponse maps every item of p with conv.
func ToPageResponse[E, T any](p *entity.Page[E], conv func(E) T) PageResponse[T] {
	items := make([]T, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, conv(it))
	}
	return PageResponse[T]{
		Items:       items,
		TotalItems:  p.TotalItems,
		Page:        p.Page,
		PageSize:    p.PageSize,
		TotalPages:  p.TotalPages,
		HasNext:     p.HasNext,
		HasPrevious: p.HasPrevious,
	}
}
