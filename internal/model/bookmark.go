package model

import "time"

// Bookmark represents a saved URL with metadata.
type Bookmark struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	URL        string     `json:"url"`
	CategoryID *string    `json:"categoryId"` // nil = uncategorized
	Tags       []string   `json:"tags"`
	Position   int        `json:"position"` // order within its category
	CreatedAt  time.Time  `json:"createdAt"`
	VisitedAt  *time.Time `json:"visitedAt"` // nil = never visited
}

// NewBookmarkParams holds parameters for creating a new Bookmark.
type NewBookmarkParams struct {
	Title      string
	URL        string
	CategoryID *string
	Tags       []string
	Position   int
}

// NewBookmark creates a Bookmark with generated UUID and timestamps.
func NewBookmark(params NewBookmarkParams) Bookmark {
	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}

	return Bookmark{
		ID:         GenerateUUID(),
		Title:      params.Title,
		URL:        params.URL,
		CategoryID: params.CategoryID,
		Tags:       tags,
		Position:   params.Position,
		CreatedAt:  time.Now(),
		VisitedAt:  nil,
	}
}
