package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookreview/internal/catalog"
	"bookreview/internal/entity"
	"bookreview/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore() *catalog.Store {
	return catalog.NewStore(map[string]entity.Book{
		"9780451524935": {Title: "1984", Author: "George Orwell"},
		"9780141439518": {Title: "Pride and Prejudice", Author: "Jane Austen"},
	})
}

func TestBookHandler_List(t *testing.T) {
	handler := NewBookHandler(seededStore())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/books", nil)
	handler.List(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	body := testutil.DecodeBody(w)
	assert.Len(t, body, 2)
	assert.Contains(t, body, "9780451524935")
}

func TestBookHandler_GetByISBN(t *testing.T) {
	handler := NewBookHandler(seededStore())

	tests := []struct {
		name           string
		isbn           string
		expectedStatus int
	}{
		{name: "found", isbn: "9780451524935", expectedStatus: http.StatusOK},
		{name: "absent", isbn: "0000000000000", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/books/isbn/"+tt.isbn, nil)
			r.SetPathValue("isbn", tt.isbn)

			handler.GetByISBN(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := testutil.DecodeBody(w)
			if tt.expectedStatus == http.StatusOK {
				book, ok := body[tt.isbn].(map[string]any)
				require.True(t, ok, "response must be keyed by ISBN")
				assert.Equal(t, "1984", book["title"])
			} else {
				assert.Equal(t, "book not found", body["error"])
			}
		})
	}
}

func TestBookHandler_ListByAuthor(t *testing.T) {
	handler := NewBookHandler(seededStore())

	tests := []struct {
		name           string
		author         string
		expectedStatus int
	}{
		{name: "exact", author: "Jane Austen", expectedStatus: http.StatusOK},
		{name: "case insensitive", author: "george orwell", expectedStatus: http.StatusOK},
		{name: "no matches", author: "Nobody", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/books/author/x", nil)
			r.SetPathValue("author", tt.author)

			handler.ListByAuthor(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBookHandler_ListByTitle(t *testing.T) {
	handler := NewBookHandler(seededStore())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/books/title/x", nil)
	r.SetPathValue("title", "pride and prejudice")
	handler.ListByTitle(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, testutil.DecodeBody(w), "9780141439518")
}

func TestBookHandler_GetReviews(t *testing.T) {
	store := seededStore()
	handler := NewBookHandler(store)

	_, err := store.UpsertReview("9780451524935", "alice", "great")
	require.NoError(t, err)

	t.Run("book with a review", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/review/9780451524935", nil)
		r.SetPathValue("isbn", "9780451524935")
		handler.GetReviews(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{"alice": "great"}, testutil.DecodeBody(w))
	})

	t.Run("book without reviews", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/review/9780141439518", nil)
		r.SetPathValue("isbn", "9780141439518")
		handler.GetReviews(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, testutil.DecodeBody(w))
	})

	t.Run("unknown isbn", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/review/0000000000000", nil)
		r.SetPathValue("isbn", "0000000000000")
		handler.GetReviews(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
