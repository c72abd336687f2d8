package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostModel is a post document as stored in the posts collection.
type PostModel struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Published *bool              `bson:"published,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// PostRecord is the document inserted on creation. The _id is assigned by the driver.
type PostRecord struct {
	Title     string    `bson:"title"`
	Content   string    `bson:"content"`
	Published bool      `bson:"published"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// NewPostRecord builds the creation record for a validated request. Both
// timestamps are set to now, truncated to the millisecond precision the
// database keeps.
func NewPostRecord(input CreatePostSchema, now time.Time) PostRecord {
	ts := now.UTC().Truncate(time.Millisecond)

	published := false
	if input.Published != nil {
		published = *input.Published
	}

	return PostRecord{
		Title:     input.Title,
		Content:   input.Content,
		Published: published,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// Post is the client-facing representation of a post.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToPost converts a stored document into its response form. Documents written
// without a published flag read as unpublished.
func (m PostModel) ToPost() Post {
	published := false
	if m.Published != nil {
		published = *m.Published
	}

	return Post{
		ID:        m.ID.Hex(),
		Title:     m.Title,
		Content:   m.Content,
		Published: published,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}
