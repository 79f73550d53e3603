package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/startdeck/startdeck/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/startdeck-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("startdeck-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML exports the store to Netscape bookmark HTML format.
// Categories become top-level folders; bookmarks keep their position order.
func ExportHTML(store *model.Store) string {
	var b strings.Builder

	// Header
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	for _, page := range store.PagesSorted() {
		pageID := page.ID
		for _, category := range store.CategoriesOnPage(&pageID) {
			writeCategory(&b, store, category)
		}
	}
	// Categories not attached to any page, then loose bookmarks.
	for _, category := range store.CategoriesOnPage(nil) {
		writeCategory(&b, store, category)
	}
	writeBookmarks(&b, store.BookmarksInCategory(nil), 1)

	b.WriteString("</DL><p>\n")

	return b.String()
}

// writeCategory writes one category folder and its bookmarks.
func writeCategory(b *strings.Builder, store *model.Store, category model.Category) {
	prefix := strings.Repeat("    ", 1)
	fmt.Fprintf(b, "%s<DT><H3>%s</H3>\n", prefix, html.EscapeString(category.Name))
	fmt.Fprintf(b, "%s<DL><p>\n", prefix)

	categoryID := category.ID
	writeBookmarks(b, store.BookmarksInCategory(&categoryID), 2)

	fmt.Fprintf(b, "%s</DL><p>\n", prefix)
}

// writeBookmarks writes bookmark anchors at the given indent level.
func writeBookmarks(b *strings.Builder, bookmarks []model.Bookmark, indent int) {
	prefix := strings.Repeat("    ", indent)
	for _, bookmark := range bookmarks {
		fmt.Fprintf(b,
			"%s<DT><A HREF=\"%s\" ADD_DATE=\"%d\">%s</A>\n",
			prefix,
			html.EscapeString(bookmark.URL),
			bookmark.CreatedAt.Unix(),
			html.EscapeString(bookmark.Title),
		)
	}
}
