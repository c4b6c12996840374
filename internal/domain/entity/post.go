package entity

import "time"

// Post is a single blog entry. Likes and Dislikes are only ever changed
// through increments so they stay in step with the post_likes collection.
type Post struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Author    string    `bson:"author" json:"author"`
	Views     int       `bson:"views" json:"views"`
	Likes     int       `bson:"likes" json:"likes"`
	Dislikes  int       `bson:"dislikes" json:"dislikes"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
