package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/dischord/models"
	"github.com/akinalp/dischord/pkg"
	"github.com/akinalp/dischord/services"
)

// ServerHandler, sunucu endpoint'lerini yöneten struct.
//
// Route'lar:
//
//	POST /api/servers          → Create
//	GET  /api/servers/{serverId} → Get
type ServerHandler struct {
	serverService services.ServerService
}

// NewServerHandler, constructor.
func NewServerHandler(serverService services.ServerService) *ServerHandler {
	return &ServerHandler{serverService: serverService}
}

// Create godoc
// POST /api/servers
// Body: { "name": "gophers", "owner_id": "..." }
// Owner otomatik olarak ilk üye olur.
func (h *ServerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	server, err := h.serverService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, server)
}

// Get godoc
// GET /api/servers/{serverId}
// Denormalize yanıt: metadata + member_ids + post_ids.
func (h *ServerHandler) Get(w http.ResponseWriter, r *http.Request) {
	serverID := r.PathValue("serverId")
	if serverID == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "server id is required")
		return
	}

	server, err := h.serverService.Get(r.Context(), serverID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, server)
}
