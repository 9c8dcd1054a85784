// Package handlers — HTTP endpoint katmanı.
//
// Thin handler prensibi: Parse → Service → Response.
// Handler'lar iş mantığı içermez; request'i parse eder, service'i çağırır,
// sonucu pkg helper'larıyla yazar. Bu API'de auth middleware yoktur —
// kimlik, request body/query'sindeki açık user id alanlarıyla beyan edilir.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/dischord/models"
	"github.com/akinalp/dischord/pkg"
	"github.com/akinalp/dischord/services"
)

// UserHandler, kullanıcı ve arkadaşlık endpoint'lerini yöneten struct.
//
// Route'lar (routes.go'da bağlanır):
//
//	POST /api/users                  → Create
//	GET  /api/users/{id}             → Get
//	POST /api/users/{id}/friends     → AddFriend
//	GET  /api/users/{id}/friends     → ListFriends
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler, constructor.
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create godoc
// POST /api/users
// Body: { "username": "alice", "email": "alice@example.com" }
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, user)
}

// Get godoc
// GET /api/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "user id is required")
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, user)
}

// AddFriend godoc
// POST /api/users/{id}/friends
// Body: { "friend_id": "..." }
// Arkadaşlık simetriktir; onay akışı yoktur.
func (h *UserHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "user id is required")
		return
	}

	var req models.AddFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.userService.AddFriend(r.Context(), id, &req); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.NoContent(w)
}

// ListFriends godoc
// GET /api/users/{id}/friends
func (h *UserHandler) ListFriends(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "user id is required")
		return
	}

	friends, err := h.userService.ListFriends(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, friends)
}
