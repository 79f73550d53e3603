package importer

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/startdeck/startdeck/internal/model"
	"golang.org/x/net/html"
)

// ParseHTMLBookmarks parses Netscape bookmark HTML and returns categories
// and bookmarks. Nested folders are flattened into "Parent / Child"
// category names, since the launcher's categories form a single level per
// page. Bookmark order within a folder is preserved via Position.
func ParseHTMLBookmarks(r io.Reader) ([]model.Category, []model.Bookmark, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, nil, err
	}

	var categories []model.Category
	var bookmarks []model.Bookmark

	// Track the folder name trail and the category resolved for it.
	var nameStack []string
	var categoryStack []*string   // category ID per open DL, nil = uncategorized
	byPath := map[string]string{} // flattened path -> category ID
	positions := map[string]int{} // category ID ("" = root) -> next position
	var pendingName string        // folder name waiting for its DL

	currentCategory := func() *string {
		if len(categoryStack) > 0 {
			return categoryStack[len(categoryStack)-1]
		}
		return nil
	}

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				if name := getTextContent(n); name != "" {
					pendingName = name
				}
				return // Don't recurse into H3

			case "a":
				href := getAttr(n, "href")
				if href == "" {
					// Skip bookmarks without URL
					return
				}

				title := getTextContent(n)
				if title == "" {
					title = href // fallback to URL as title
				}

				// Parse ADD_DATE timestamp
				createdAt := time.Now()
				if addDate := getAttr(n, "add_date"); addDate != "" {
					if ts, err := strconv.ParseInt(addDate, 10, 64); err == nil {
						createdAt = time.Unix(ts, 0)
					}
				}

				categoryID := currentCategory()
				posKey := ""
				if categoryID != nil {
					posKey = *categoryID
				}
				bookmark := model.Bookmark{
					ID:         model.GenerateUUID(),
					Title:      title,
					URL:        href,
					CategoryID: categoryID,
					Tags:       []string{},
					Position:   positions[posKey],
					CreatedAt:  createdAt,
					VisitedAt:  nil,
				}
				positions[posKey]++
				bookmarks = append(bookmarks, bookmark)
				return // Don't recurse into A

			case "dl":
				// Definition list - marks folder contents.
				// A pending H3 name opens a category for this DL.
				pushed := false
				if pendingName != "" {
					nameStack = append(nameStack, pendingName)
					pendingName = ""
					path := strings.Join(nameStack, " / ")

					id, ok := byPath[path]
					if !ok {
						created := model.Category{
							ID:       model.GenerateUUID(),
							Name:     path,
							Position: len(categories),
						}
						categories = append(categories, created)
						id = created.ID
						byPath[path] = id
					}
					categoryStack = append(categoryStack, &id)
					pushed = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushed {
					nameStack = nameStack[:len(nameStack)-1]
					categoryStack = categoryStack[:len(categoryStack)-1]
				}
				return // Children already handled
			}
		}

		// Recurse into children
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return categories, bookmarks, nil
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
