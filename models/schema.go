package models

// CreatePostSchema is the body accepted by POST /api/posts.
type CreatePostSchema struct {
	Title     string `json:"title" validate:"required,notblank"`
	Content   string `json:"content"`
	Published *bool  `json:"published,omitempty"`
}

// FilterOptions holds the pagination query of GET /api/posts.
type FilterOptions struct {
	Page  int64 `validate:"min=1"`
	Limit int64 `validate:"min=1"`
}

const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 10
)

// Skip returns the number of documents that precede the requested page.
func (f FilterOptions) Skip() int64 {
	return (f.Page - 1) * f.Limit
}
