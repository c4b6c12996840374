package contract

import "errors"

// Errors returned by repository implementations. Use errors.Is to match.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrVoteNotFound    = errors.New("vote not found")
	ErrMediaNotFound   = errors.New("media not found")
	ErrDuplicateKey    = errors.New("duplicate key")
)
