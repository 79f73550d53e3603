package search

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/startdeck/startdeck/internal/model"
)

// Result represents a fuzzy search match.
type Result struct {
	Bookmark       *model.Bookmark
	MatchedIndexes []int
	Score          int
}

// bookmarkSource implements fuzzy.Source over bookmark titles and tags.
type bookmarkSource []*model.Bookmark

func (bs bookmarkSource) String(i int) string {
	b := bs[i]
	if len(b.Tags) == 0 {
		return b.Title
	}
	return b.Title + " " + strings.Join(b.Tags, " ")
}

func (bs bookmarkSource) Len() int {
	return len(bs)
}

// FuzzyBookmarks searches all bookmarks by title and tags using fuzzy
// matching. Returns results sorted by match score (best first).
func FuzzyBookmarks(store *model.Store, query string) []Result {
	if query == "" {
		return nil
	}

	bookmarks := make(bookmarkSource, len(store.Bookmarks))
	for i := range store.Bookmarks {
		bookmarks[i] = &store.Bookmarks[i]
	}

	matches := fuzzy.FindFrom(query, bookmarks)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Bookmark:       bookmarks[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
