package http

import (
	"net/http"

	"bookreview/internal/httpx"
)

// NewRouter wires every route to its handler. Only the review-mutation
// routes sit behind the auth middleware; the rest of the surface is public.
func NewRouter(books *BookHandler, users *UserHandler, reviews *ReviewHandler, secret string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{
			"message": "book review api is running",
		})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("GET /books", books.List)
	mux.HandleFunc("GET /books/isbn/{isbn}", books.GetByISBN)
	mux.HandleFunc("GET /books/author/{author}", books.ListByAuthor)
	mux.HandleFunc("GET /books/title/{title}", books.ListByTitle)
	mux.HandleFunc("GET /books/review/{isbn}", books.GetReviews)

	mux.HandleFunc("POST /register", users.Register)
	mux.HandleFunc("POST /login", users.Login)

	authed := httpx.AuthMiddleware(secret)
	mux.Handle("PUT /review/{isbn}", authed(http.HandlerFunc(reviews.Upsert)))
	mux.Handle("DELETE /review/{isbn}", authed(http.HandlerFunc(reviews.Delete)))

	return mux
}
