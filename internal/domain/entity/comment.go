package entity

import "time"

// Comment is a reply left under a post
type Comment struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	PostID    string    `bson:"post_id" json:"post_id"`
	Author    string    `bson:"author" json:"author"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
