package entity

import (
	"time"
)

// User represents a registered member of the board
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Nickname     string    `bson:"nickname" json:"nickname"`
	Name         *string   `bson:"name,omitempty" json:"name,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// DuplicateField is a user attribute that must be unique across accounts.
type DuplicateField string

const (
	DuplicateFieldNickname DuplicateField = "nickname"
	DuplicateFieldEmail    DuplicateField = "email"
)

func (f DuplicateField) Valid() bool {
	return f == DuplicateFieldNickname || f == DuplicateFieldEmail
}
