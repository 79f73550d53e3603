package model

// ImportMerge merges imported categories and bookmarks into the store.
// Categories are matched by name (existing ones are reused); bookmarks with
// a URL already present anywhere in the store are skipped.
// Returns the number of bookmarks added and skipped.
func (s *Store) ImportMerge(categories []Category, bookmarks []Bookmark) (added, skipped int) {
	existingURLs := make(map[string]bool, len(s.Bookmarks))
	for _, b := range s.Bookmarks {
		existingURLs[b.URL] = true
	}

	// Map imported category IDs to store category IDs, reusing by name.
	idMap := make(map[string]string, len(categories))
	byName := make(map[string]string, len(s.Categories))
	for _, c := range s.Categories {
		byName[c.Name] = c.ID
	}
	for _, c := range categories {
		if existingID, ok := byName[c.Name]; ok {
			idMap[c.ID] = existingID
			continue
		}
		merged := c
		merged.Position = s.NextCategoryPosition(c.PageID)
		s.Categories = append(s.Categories, merged)
		byName[merged.Name] = merged.ID
		idMap[c.ID] = merged.ID
	}

	for _, b := range bookmarks {
		if existingURLs[b.URL] {
			skipped++
			continue
		}
		merged := b
		if b.CategoryID != nil {
			if mapped, ok := idMap[*b.CategoryID]; ok {
				id := mapped
				merged.CategoryID = &id
			}
		}
		merged.Position = s.NextBookmarkPosition(merged.CategoryID)
		s.Bookmarks = append(s.Bookmarks, merged)
		existingURLs[merged.URL] = true
		added++
	}

	return added, skipped
}
