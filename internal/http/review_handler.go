package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookreview/internal/catalog"
	"bookreview/internal/httpx"
)

// ReviewHandler covers the authenticated mutation routes. The auth
// middleware has already verified the token and put the username in the
// request context by the time these run.
type ReviewHandler struct {
	store CatalogStore
}

func NewReviewHandler(store CatalogStore) *ReviewHandler {
	return &ReviewHandler{store: store}
}

type reviewReq struct {
	Review string `json:"review"`
}

func (h *ReviewHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	username := httpx.UsernameFrom(r)
	if username == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req reviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "review (string) is required")
		return
	}

	reviews, err := h.store.UpsertReview(r.PathValue("isbn"), username, req.Review)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "book not found")
		case errors.Is(err, catalog.ErrEmptyReview):
			httpx.JSONError(w, http.StatusBadRequest, "review (string) is required")
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"message": "review added/updated",
		"reviews": reviews,
	})
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := httpx.UsernameFrom(r)
	if username == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	reviews, err := h.store.DeleteReview(r.PathValue("isbn"), username)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "book not found")
		case errors.Is(err, catalog.ErrNoReview):
			httpx.JSONError(w, http.StatusNotFound, "no review by this user to delete")
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"message": "review deleted",
		"reviews": reviews,
	})
}
