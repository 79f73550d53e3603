package model

import (
	"fmt"
	"sort"
)

// Store holds all pages, categories and bookmarks.
type Store struct {
	Pages      []Page     `json:"pages"`
	Categories []Category `json:"categories"`
	Bookmarks  []Bookmark `json:"bookmarks"`
}

// NewStore creates an empty Store with initialized slices.
func NewStore() *Store {
	return &Store{
		Pages:      []Page{},
		Categories: []Category{},
		Bookmarks:  []Bookmark{},
	}
}

// PagesSorted returns all pages ordered by position.
func (s *Store) PagesSorted() []Page {
	pages := make([]Page, len(s.Pages))
	copy(pages, s.Pages)
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].Position < pages[j].Position
	})
	return pages
}

// CategoriesOnPage returns categories with the given page ID, ordered by
// position. Pass nil for the default page.
func (s *Store) CategoriesOnPage(pageID *string) []Category {
	var result []Category
	for _, c := range s.Categories {
		if ptrEqual(c.PageID, pageID) {
			result = append(result, c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Position < result[j].Position
	})
	return result
}

// BookmarksInCategory returns bookmarks in the given category, ordered by
// position with creation time as tiebreak. Pass nil for uncategorized.
func (s *Store) BookmarksInCategory(categoryID *string) []Bookmark {
	var result []Bookmark
	for _, b := range s.Bookmarks {
		if ptrEqual(b.CategoryID, categoryID) {
			result = append(result, b)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Position != result[j].Position {
			return result[i].Position < result[j].Position
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// GetPageByID finds a page by ID, returns nil if not found.
func (s *Store) GetPageByID(id string) *Page {
	for i := range s.Pages {
		if s.Pages[i].ID == id {
			return &s.Pages[i]
		}
	}
	return nil
}

// GetCategoryByID finds a category by ID, returns nil if not found.
func (s *Store) GetCategoryByID(id string) *Category {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}

// GetBookmarkByID finds a bookmark by ID, returns nil if not found.
func (s *Store) GetBookmarkByID(id string) *Bookmark {
	for i := range s.Bookmarks {
		if s.Bookmarks[i].ID == id {
			return &s.Bookmarks[i]
		}
	}
	return nil
}

// DeleteBookmark removes a bookmark by ID. Returns false if not found.
func (s *Store) DeleteBookmark(id string) bool {
	for i := range s.Bookmarks {
		if s.Bookmarks[i].ID == id {
			s.Bookmarks = append(s.Bookmarks[:i], s.Bookmarks[i+1:]...)
			return true
		}
	}
	return false
}

// DeleteCategory removes a category by ID and uncategorizes its bookmarks.
// Returns false if not found.
func (s *Store) DeleteCategory(id string) bool {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
			for j := range s.Bookmarks {
				if s.Bookmarks[j].CategoryID != nil && *s.Bookmarks[j].CategoryID == id {
					s.Bookmarks[j].CategoryID = nil
				}
			}
			return true
		}
	}
	return false
}

// NextBookmarkPosition returns the position for a bookmark appended to the
// given category.
func (s *Store) NextBookmarkPosition(categoryID *string) int {
	max := -1
	for _, b := range s.Bookmarks {
		if ptrEqual(b.CategoryID, categoryID) && b.Position > max {
			max = b.Position
		}
	}
	return max + 1
}

// NextCategoryPosition returns the position for a category appended to the
// given page.
func (s *Store) NextCategoryPosition(pageID *string) int {
	max := -1
	for _, c := range s.Categories {
		if ptrEqual(c.PageID, pageID) && c.Position > max {
			max = c.Position
		}
	}
	return max + 1
}

// ApplyBookmarkOrder rewrites the positions of the bookmarks in the given
// category to match the order of ids. Every bookmark currently in the
// category must appear exactly once in ids; otherwise the store is left
// untouched and an error is returned.
func (s *Store) ApplyBookmarkOrder(categoryID *string, ids []string) error {
	current := s.BookmarksInCategory(categoryID)
	if err := checkOrderIDs(ids, bookmarkIDs(current)); err != nil {
		return err
	}
	for pos, id := range ids {
		if b := s.GetBookmarkByID(id); b != nil {
			b.Position = pos
		}
	}
	return nil
}

// ApplyCategoryOrder rewrites the positions of the categories on the given
// page to match the order of ids. The id set must match the page's current
// categories exactly.
func (s *Store) ApplyCategoryOrder(pageID *string, ids []string) error {
	current := s.CategoriesOnPage(pageID)
	have := make([]string, len(current))
	for i, c := range current {
		have[i] = c.ID
	}
	if err := checkOrderIDs(ids, have); err != nil {
		return err
	}
	for pos, id := range ids {
		if c := s.GetCategoryByID(id); c != nil {
			c.Position = pos
		}
	}
	return nil
}

// ApplyPageOrder rewrites page positions to match the order of ids.
func (s *Store) ApplyPageOrder(ids []string) error {
	have := make([]string, len(s.Pages))
	for i, p := range s.PagesSorted() {
		have[i] = p.ID
	}
	if err := checkOrderIDs(ids, have); err != nil {
		return err
	}
	for pos, id := range ids {
		if p := s.GetPageByID(id); p != nil {
			p.Position = pos
		}
	}
	return nil
}

// checkOrderIDs verifies that ids is a permutation of have.
func checkOrderIDs(ids, have []string) error {
	if len(ids) != len(have) {
		return fmt.Errorf("order has %d ids, expected %d", len(ids), len(have))
	}
	seen := make(map[string]bool, len(have))
	for _, id := range have {
		seen[id] = true
	}
	for _, id := range ids {
		if !seen[id] {
			return fmt.Errorf("order contains unknown or duplicate id %q", id)
		}
		delete(seen, id)
	}
	return nil
}

// bookmarkIDs extracts IDs from a bookmark slice.
func bookmarkIDs(bookmarks []Bookmark) []string {
	ids := make([]string, len(bookmarks))
	for i, b := range bookmarks {
		ids[i] = b.ID
	}
	return ids
}

// ptrEqual compares two string pointers for equality.
func ptrEqual(a, b *string) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
