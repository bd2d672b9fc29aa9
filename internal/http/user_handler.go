package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"bookreview/internal/auth"
	"bookreview/internal/credential"
	"bookreview/internal/entity"
	"bookreview/internal/httpx"
)

// CredentialStore is the contract the handlers need from the user store.
type CredentialStore interface {
	Register(username, password string) error
	Authenticate(username, password string) (entity.User, error)
}

type UserHandler struct {
	users  CredentialStore
	secret string
}

func NewUserHandler(users CredentialStore, secret string) *UserHandler {
	return &UserHandler{users: users, secret: secret}
}

type credentialsReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if msg := ValidateStruct(req); msg != "" {
		httpx.JSONError(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.users.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, credential.ErrAlreadyExists) {
			httpx.JSONError(w, http.StatusConflict, "user already exists")
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "server error")
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]string{
		"message": "user registered successfully",
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	// no presence check here: any pair that does not exactly match a
	// registered user is a 401, missing fields included
	user, err := h.users.Authenticate(req.Username, req.Password)
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.secret, user.Username)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "server error")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"token": token})
}
