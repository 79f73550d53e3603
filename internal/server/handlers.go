package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/startdeck/startdeck/internal/model"
	"github.com/startdeck/startdeck/internal/storage"
)

// uncategorizedID is the path segment addressing bookmarks without a
// category (CategoryID == nil) in order endpoints.
const uncategorizedID = "uncategorized"

type errorResponse struct {
	Error string `json:"error"`
}

type orderRequest struct {
	IDs []string `json:"ids"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, format string, args ...any) {
	respondJSON(w, status, errorResponse{Error: fmt.Sprintf(format, args...)})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return false
	}
	return true
}

// --- Bookmarks ---

func (s *Server) handleListBookmarks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	respondJSON(w, http.StatusOK, s.store.Bookmarks)
}

type bookmarkRequest struct {
	Title      string   `json:"title"`
	URL        string   `json:"url"`
	CategoryID *string  `json:"categoryId"`
	Tags       []string `json:"tags"`
}

func (s *Server) handleCreateBookmark(w http.ResponseWriter, r *http.Request) {
	var req bookmarkRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.URL == "" {
		respondError(w, http.StatusBadRequest, "url is required")
		return
	}
	if req.Title == "" {
		req.Title = req.URL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.CategoryID != nil && s.store.GetCategoryByID(*req.CategoryID) == nil {
		respondError(w, http.StatusUnprocessableEntity, "unknown category %q", *req.CategoryID)
		return
	}

	bookmark := model.NewBookmark(model.NewBookmarkParams{
		Title:      req.Title,
		URL:        req.URL,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
		Position:   s.store.NextBookmarkPosition(req.CategoryID),
	})
	s.store.Bookmarks = append(s.store.Bookmarks, bookmark)

	if err := s.persist(); err != nil {
		respondError(w, http.StatusInternalServerError, "persist: %v", err)
		return
	}
	respondJSON(w, http.StatusCreated, bookmark)
}

func (s *Server) handleUpdateBookmark(w http.ResponseWriter, r *http.Request) {
	var req bookmarkRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bookmark := s.store.GetBookmarkByID(chi.URLParam(r, "id"))
	if bookmark == nil {
		respondError(w, http.StatusNotFound, "bookmark not found")
		return
	}
	if req.CategoryID != nil && s.store.GetCategoryByID(*req.CategoryID) == nil {
		respondError(w, http.StatusUnprocessableEntity, "unknown category %q", *req.CategoryID)
		return
	}

	if req.Title != "" {
		bookmark.Title = req.Title
	}
	if req.URL != "" {
		bookmark.URL = req.URL
	}
	if req.Tags != nil {
		bookmark.Tags = req.Tags
	}
	if req.CategoryID != nil {
		bookmark.CategoryID = req.CategoryID
		bookmark.Position = s.store.NextBookmarkPosition(req.CategoryID)
	}

	if err := s.persist(); err != nil {
		respondError(w, http.StatusInternalServerError, "persist: %v", err)
		return
	}
	respondJSON(w, http.StatusOK, bookmark)
}

func (s *Server) handleDeleteBookmark(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.DeleteBookmark(chi.URLParam(r, "id")) {
		respondError(w, http.StatusNotFound, "bookmark not found")
		return
	}
	if err := s.persist(); err != nil {
		respondError(w, http.StatusInternalServerError, "persist: %v", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Categories ---

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	respondJSON(w, http.StatusOK, s.store.Categories)
}

type categoryRequest struct {
	Name   string  `json:"name"`
	PageID *string `json:"pageId"`
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.PageID != nil && s.store.GetPageByID(*req.PageID) == nil {
		respondError(w, http.StatusUnprocessableEntity, "unknown page %q", *req.PageID)
		return
	}

	category := model.NewCategory(model.NewCategoryParams{
		Name:     req.Name,
		PageID:   req.PageID,
		Position: s.store.NextCategoryPosition(req.PageID),
	})
	s.store.Categories = append(s.store.Categories, category)

	if err := s.persist(); err != nil {
		respondError(w, http.StatusInternalServerError, "persist: %v", err)
		return
	}
	respondJSON(w, http.StatusCreated, category)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	category := s.store.GetCategoryByID(chi.URLParam(r, "id"))
	if category == nil {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}
	if req.Name != "" {
		category.Name = req.Name
	}
	if req.PageID != nil {
		if s.store.GetPageByID(*req.PageID) == nil {
			respondError(w, http.StatusUnprocessableEntity, "unknown page %q", *req.PageID)
			return
		}
		category.PageID = req.PageID
		category.Position = s.store.NextCategoryPosition(req.PageID)
	}

	if err := s.persist(); err != nil {
		respondError(w, http.StatusInternalServerError, "persist: %v", err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.DeleteCategory(chi.URLParam(r, "id")) {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}
	if err := s.persist(); err != nil {
		respondError(w, http.StatusInternalServerError, "persist: %v", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleBookmarkOrder rewrites the bookmark order within one category.
// The body must list every bookmark in the category exactly once; anything
// else is rejected with 422 and the store stays untouched.
func (s *Server) handleBookmarkOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var categoryID *string
	if id := chi.URLParam(r, "id"); id != uncategorizedID {
		category := s.store.GetCategoryByID(id)
		if category == nil {
			respondError(w, http.StatusNotFound, "category not found")
			return
		}
		categoryID = &category.ID
	}

	if err := s.store.ApplyBookmarkOrder(categoryID, req.IDs); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "%v", err)
		return
	}
	if err := s.persist(); err != nil {
		respondError(w, http.StatusInternalServerError, "persist: %v", err)
		return
	}
	respondJSON(w, http.StatusOK, s.store.BookmarksInCategory(categoryID))
}

// --- Pages ---

func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	respondJSON(w, http.StatusOK, s.store.PagesSorted())
}

type pageRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreatePage(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	page := model.NewPage(req.Name, len(s.store.Pages))
	s.store.Pages = append(s.store.Pages, page)

	if err := s.persist(); err != nil {
		respondError(w, http.StatusInternalServerError, "persist: %v", err)
		return
	}
	respondJSON(w, http.StatusCreated, page)
}

func (s *Server) handlePageOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ApplyPageOrder(req.IDs); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "%v", err)
		return
	}
	if err := s.persist(); err != nil {
		respondError(w, http.StatusInternalServerError, "persist: %v", err)
		return
	}
	respondJSON(w, http.StatusOK, s.store.PagesSorted())
}

// handleCategoryOrder rewrites the category order on one page. The page id
// "uncategorized" addresses categories without a page.
func (s *Server) handleCategoryOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var pageID *string
	if id := chi.URLParam(r, "id"); id != uncategorizedID {
		page := s.store.GetPageByID(id)
		if page == nil {
			respondError(w, http.StatusNotFound, "page not found")
			return
		}
		pageID = &page.ID
	}

	if err := s.store.ApplyCategoryOrder(pageID, req.IDs); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "%v", err)
		return
	}
	if err := s.persist(); err != nil {
		respondError(w, http.StatusInternalServerError, "persist: %v", err)
		return
	}
	respondJSON(w, http.StatusOK, s.store.CategoriesOnPage(pageID))
}

// --- Settings ---

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	respondJSON(w, http.StatusOK, s.settings)
}

type settingsRequest struct {
	Theme   *string `json:"theme"`
	Columns *int    `json:"columns"`
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Theme != nil {
		s.settings.Theme = *req.Theme
	}
	if req.Columns != nil {
		if *req.Columns < 1 || *req.Columns > 6 {
			respondError(w, http.StatusUnprocessableEntity, "columns must be between 1 and 6")
			return
		}
		s.settings.Columns = *req.Columns
	}

	if s.settingsPath != "" {
		if err := storage.SaveSettings(s.settingsPath, s.settings); err != nil {
			respondError(w, http.StatusInternalServerError, "persist: %v", err)
			return
		}
	}
	respondJSON(w, http.StatusOK, s.settings)
}
