package catalog

import (
	"errors"
	"strings"
	"sync"

	"bookreview/internal/entity"
)

var (
	ErrNotFound    = errors.New("book not found")
	ErrNoReview    = errors.New("no review by this user")
	ErrEmptyReview = errors.New("review text is required")
)

// Store owns the ISBN -> Book mapping and every per-book review map.
// Writers hold the lock exclusively, so a review upsert or delete is atomic
// per (isbn, username) pair. Every method returns copies; callers never
// alias the guarded maps.
type Store struct {
	mu    sync.RWMutex
	books map[string]entity.Book
}

// NewStore builds a store from a seed catalog. The ISBN key wins over any
// ISBN set on the record itself.
func NewStore(seed map[string]entity.Book) *Store {
	books := make(map[string]entity.Book, len(seed))
	for isbn, book := range seed {
		book.ISBN = isbn
		book.Reviews = copyReviews(book.Reviews)
		books[isbn] = book
	}
	return &Store{books: books}
}

// List returns a snapshot of the full catalog.
func (s *Store) List() map[string]entity.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]entity.Book, len(s.books))
	for isbn, book := range s.books {
		out[isbn] = copyBook(book)
	}
	return out
}

// GetByISBN returns the book stored under isbn.
func (s *Store) GetByISBN(isbn string) (entity.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[isbn]
	if !ok {
		return entity.Book{}, ErrNotFound
	}
	return copyBook(book), nil
}

// FindByAuthor returns every book whose author matches, ignoring case.
// Exact match only, no substring search.
func (s *Store) FindByAuthor(author string) (map[string]entity.Book, error) {
	return s.find(func(b entity.Book) bool {
		return strings.EqualFold(b.Author, author)
	})
}

// FindByTitle returns every book whose title matches, ignoring case.
func (s *Store) FindByTitle(title string) (map[string]entity.Book, error) {
	return s.find(func(b entity.Book) bool {
		return strings.EqualFold(b.Title, title)
	})
}

func (s *Store) find(match func(entity.Book) bool) (map[string]entity.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]entity.Book)
	for isbn, book := range s.books {
		if match(book) {
			out[isbn] = copyBook(book)
		}
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// Reviews returns the review map for a book, empty if nobody has reviewed
// it yet.
func (s *Store) Reviews(isbn string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[isbn]
	if !ok {
		return nil, ErrNotFound
	}
	return copyReviews(book.Reviews), nil
}

// UpsertReview sets username's review on a book, replacing any prior review
// by the same user, and returns the updated review map.
func (s *Store) UpsertReview(isbn, username, text string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[isbn]
	if !ok {
		return nil, ErrNotFound
	}
	if text == "" {
		return nil, ErrEmptyReview
	}
	book.Reviews[username] = text
	return copyReviews(book.Reviews), nil
}

// DeleteReview removes username's review from a book and returns the
// updated review map. Only the caller's own entry is touched.
func (s *Store) DeleteReview(isbn, username string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[isbn]
	if !ok {
		return nil, ErrNotFound
	}
	if _, ok := book.Reviews[username]; !ok {
		return nil, ErrNoReview
	}
	delete(book.Reviews, username)
	return copyReviews(book.Reviews), nil
}

func copyBook(b entity.Book) entity.Book {
	b.Reviews = copyReviews(b.Reviews)
	return b
}

func copyReviews(reviews map[string]string) map[string]string {
	out := make(map[string]string, len(reviews))
	for user, text := range reviews {
		out[user] = text
	}
	return out
}
