package model

// Page is one dashboard tab holding a set of categories.
type Page struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"` // order among pages
}

// NewPage creates a Page with generated UUID.
func NewPage(name string, position int) Page {
	return Page{
		ID:       GenerateUUID(),
		Name:     name,
		Position: position,
	}
}
