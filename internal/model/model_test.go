package model_test

import (
	"testing"
	"time"

	"github.com/startdeck/startdeck/internal/model"
)

func stringPtr(s string) *string { return &s }

func testStore() *model.Store {
	return &model.Store{
		Pages: []model.Page{
			{ID: "p2", Name: "Work", Position: 1},
			{ID: "p1", Name: "Home", Position: 0},
		},
		Categories: []model.Category{
			{ID: "c2", Name: "Tools", PageID: stringPtr("p1"), Position: 1},
			{ID: "c1", Name: "Development", PageID: stringPtr("p1"), Position: 0},
		},
		Bookmarks: []model.Bookmark{
			{ID: "b3", Title: "Go Docs", URL: "https://go.dev", CategoryID: stringPtr("c1"), Position: 2},
			{ID: "b1", Title: "GitHub", URL: "https://github.com", CategoryID: stringPtr("c1"), Position: 0},
			{ID: "b2", Title: "HN", URL: "https://news.ycombinator.com", CategoryID: stringPtr("c1"), Position: 1},
			{ID: "b4", Title: "Loose", URL: "https://example.com", CategoryID: nil, Position: 0},
		},
	}
}

func TestStore_SortedAccessors(t *testing.T) {
	store := testStore()

	pages := store.PagesSorted()
	if pages[0].ID != "p1" || pages[1].ID != "p2" {
		t.Errorf("pages out of order: %s, %s", pages[0].ID, pages[1].ID)
	}

	categories := store.CategoriesOnPage(stringPtr("p1"))
	if len(categories) != 2 || categories[0].ID != "c1" {
		t.Errorf("categories = %v", categories)
	}

	bookmarks := store.BookmarksInCategory(stringPtr("c1"))
	want := []string{"b1", "b2", "b3"}
	for i, id := range want {
		if bookmarks[i].ID != id {
			t.Errorf("bookmark %d = %s, want %s", i, bookmarks[i].ID, id)
		}
	}

	loose := store.BookmarksInCategory(nil)
	if len(loose) != 1 || loose[0].ID != "b4" {
		t.Errorf("uncategorized = %v", loose)
	}
}

func TestStore_BookmarkPositionTiebreak(t *testing.T) {
	early := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	store := &model.Store{
		Bookmarks: []model.Bookmark{
			{ID: "newer", Position: 0, CreatedAt: late},
			{ID: "older", Position: 0, CreatedAt: early},
		},
	}

	got := store.BookmarksInCategory(nil)
	if got[0].ID != "older" {
		t.Errorf("equal positions should order by creation time, got %s first", got[0].ID)
	}
}

func TestStore_ApplyBookmarkOrder(t *testing.T) {
	store := testStore()

	if err := store.ApplyBookmarkOrder(stringPtr("c1"), []string{"b3", "b1", "b2"}); err != nil {
		t.Fatalf("ApplyBookmarkOrder: %v", err)
	}

	got := store.BookmarksInCategory(stringPtr("c1"))
	want := []string{"b3", "b1", "b2"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("bookmark %d = %s, want %s", i, got[i].ID, id)
		}
		if got[i].Position != i {
			t.Errorf("bookmark %s position = %d, want %d", got[i].ID, got[i].Position, i)
		}
	}

	// Bookmarks outside the category are untouched.
	if b := store.GetBookmarkByID("b4"); b.Position != 0 {
		t.Errorf("unrelated bookmark position changed to %d", b.Position)
	}
}

func TestStore_ApplyBookmarkOrder_Rejects(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
	}{
		{"missing id", []string{"b1", "b2"}},
		{"unknown id", []string{"b1", "b2", "nope"}},
		{"duplicate id", []string{"b1", "b1", "b2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testStore()
			if err := store.ApplyBookmarkOrder(stringPtr("c1"), tt.ids); err == nil {
				t.Error("expected an error")
			}
			// Store left untouched.
			got := store.BookmarksInCategory(stringPtr("c1"))
			if got[0].ID != "b1" || got[1].ID != "b2" || got[2].ID != "b3" {
				t.Error("store mutated despite rejected order")
			}
		})
	}
}

func TestStore_ApplyCategoryOrder(t *testing.T) {
	store := testStore()

	if err := store.ApplyCategoryOrder(stringPtr("p1"), []string{"c2", "c1"}); err != nil {
		t.Fatalf("ApplyCategoryOrder: %v", err)
	}
	got := store.CategoriesOnPage(stringPtr("p1"))
	if got[0].ID != "c2" || got[1].ID != "c1" {
		t.Errorf("categories = %s, %s", got[0].ID, got[1].ID)
	}
}

func TestStore_ApplyPageOrder(t *testing.T) {
	store := testStore()

	if err := store.ApplyPageOrder([]string{"p2", "p1"}); err != nil {
		t.Fatalf("ApplyPageOrder: %v", err)
	}
	got := store.PagesSorted()
	if got[0].ID != "p2" {
		t.Errorf("first page = %s, want p2", got[0].ID)
	}
}

func TestStore_NextPositions(t *testing.T) {
	store := testStore()

	if got := store.NextBookmarkPosition(stringPtr("c1")); got != 3 {
		t.Errorf("next bookmark position = %d, want 3", got)
	}
	if got := store.NextBookmarkPosition(stringPtr("empty")); got != 0 {
		t.Errorf("next position in empty category = %d, want 0", got)
	}
	if got := store.NextCategoryPosition(stringPtr("p1")); got != 2 {
		t.Errorf("next category position = %d, want 2", got)
	}
}

func TestStore_DeleteCategory_Uncategorizes(t *testing.T) {
	store := testStore()

	if !store.DeleteCategory("c1") {
		t.Fatal("DeleteCategory returned false")
	}
	if store.GetCategoryByID("c1") != nil {
		t.Error("category still present")
	}
	for _, id := range []string{"b1", "b2", "b3"} {
		if b := store.GetBookmarkByID(id); b.CategoryID != nil {
			t.Errorf("bookmark %s still references the deleted category", id)
		}
	}
}

func TestStore_ImportMerge(t *testing.T) {
	store := testStore()

	imported := []model.Category{
		{ID: "imp-dev", Name: "Development"}, // matches existing c1 by name
		{ID: "imp-new", Name: "Reading"},
	}
	devID := "imp-dev"
	newID := "imp-new"
	bookmarks := []model.Bookmark{
		{ID: "i1", Title: "GitHub", URL: "https://github.com", CategoryID: &devID}, // duplicate URL
		{ID: "i2", Title: "Blog", URL: "https://blog.example.com", CategoryID: &newID},
	}

	added, skipped := store.ImportMerge(imported, bookmarks)
	if added != 1 || skipped != 1 {
		t.Errorf("added=%d skipped=%d, want 1/1", added, skipped)
	}

	reading := store.GetBookmarkByID("i2")
	if reading == nil {
		t.Fatal("imported bookmark missing")
	}
	cat := store.GetCategoryByID(*reading.CategoryID)
	if cat == nil || cat.Name != "Reading" {
		t.Errorf("imported bookmark category = %v", cat)
	}

	// "Development" was reused, not duplicated.
	count := 0
	for _, c := range store.Categories {
		if c.Name == "Development" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Development appears %d times, want 1", count)
	}
}

func TestNewBookmark_Defaults(t *testing.T) {
	b := model.NewBookmark(model.NewBookmarkParams{Title: "X", URL: "https://x.example"})
	if b.ID == "" {
		t.Error("expected generated ID")
	}
	if b.Tags == nil {
		t.Error("tags must be initialized")
	}
	if b.VisitedAt != nil {
		t.Error("visitedAt must start nil")
	}
}
