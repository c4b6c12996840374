package entity

import "time"

// Media describes an uploaded file. The bytes live in object storage under
// the same ID.
type Media struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	FileName    string    `bson:"file_name" json:"file_name"`
	StoredName  string    `bson:"stored_name" json:"stored_name"`
	ContentType string    `bson:"content_type" json:"content_type"`
	Size        int64     `bson:"size" json:"size"`
	URL         string    `bson:"url" json:"url"`
	UploadedBy  string    `bson:"uploaded_by" json:"uploaded_by"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
