package http

import (
	"errors"
	"net/http"

	"bookreview/internal/catalog"
	"bookreview/internal/entity"
	"bookreview/internal/httpx"
)

// CatalogStore is the contract the handlers need from the catalog.
type CatalogStore interface {
	List() map[string]entity.Book
	GetByISBN(isbn string) (entity.Book, error)
	FindByAuthor(author string) (map[string]entity.Book, error)
	FindByTitle(title string) (map[string]entity.Book, error)
	Reviews(isbn string) (map[string]string, error)
	UpsertReview(isbn, username, text string) (map[string]string, error)
	DeleteReview(isbn, username string) (map[string]string, error)
}

type BookHandler struct {
	store CatalogStore
}

func NewBookHandler(store CatalogStore) *BookHandler {
	return &BookHandler{store: store}
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.List())
}

func (h *BookHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	book, err := h.store.GetByISBN(isbn)
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "book not found")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]entity.Book{isbn: book})
}

// ListByAuthor matches the author exactly, ignoring case. Path values come
// in already URL-decoded.
func (h *BookHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	books, err := h.store.FindByAuthor(r.PathValue("author"))
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "no books by that author")
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

func (h *BookHandler) ListByTitle(w http.ResponseWriter, r *http.Request) {
	books, err := h.store.FindByTitle(r.PathValue("title"))
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "no books with that title")
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

func (h *BookHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.store.Reviews(r.PathValue("isbn"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "book not found")
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	httpx.JSON(w, http.StatusOK, reviews)
}
