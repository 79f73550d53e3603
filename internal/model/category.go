package model

// Category groups bookmarks into a named column on a page.
type Category struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	PageID   *string `json:"pageId"`   // nil = default page
	Position int     `json:"position"` // order within its page
}

// NewCategoryParams holds parameters for creating a new Category.
type NewCategoryParams struct {
	Name     string
	PageID   *string
	Position int
}

// NewCategory creates a Category with generated UUID.
func NewCategory(params NewCategoryParams) Category {
	return Category{
		ID:       GenerateUUID(),
		Name:     params.Name,
		PageID:   params.PageID,
		Position: params.Position,
	}
}
