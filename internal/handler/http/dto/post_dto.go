package dto

import (
	"time"

	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
)

// PostRequest is used for both create and modify.
type PostRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

// PostResponse defines the standard JSON response for a single post
type PostResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Views     int       `json:"views"`
	Likes     int       `json:"likes"`
	Dislikes  int       `json:"dislikes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToPostResponse(p entity.Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		Views:     p.Views,
		Likes:     p.Likes,
		Dislikes:  p.Dislikes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// VoteRequest toggles a like (is_like=true) or a dislike.
type VoteRequest struct {
	IsLike *bool `json:"is_like" binding:"required"`
}

// VoteResponse reports the caller's vote and the post's counters afterwards.
type VoteResponse struct {
	PostID   string `json:"post_id"`
	Vote     string `json:"vote"`
	Likes    int    `json:"likes"`
	Dislikes int    `json:"dislikes"`
}

// UserVoteResponse is the caller's current vote on a post.
type UserVoteResponse struct {
	PostID string `json:"post_id"`
	Vote   string `json:"vote"`
}
