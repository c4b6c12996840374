package usecase

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidField         = errors.New("field must be nickname or email")
	ErrDuplicateUser        = errors.New("nickname or email already in use")
	ErrFileTooLarge         = errors.New("file exceeds the upload size limit")
	ErrUnsupportedMediaType = errors.New("only png, jpeg, gif and webp images are allowed")
)
