package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/dischord/models"
	"github.com/akinalp/dischord/pkg"
	"github.com/akinalp/dischord/services"
)

// MessageHandler, mesaj endpoint'lerini yöneten struct.
//
// Route'lar:
//
//	POST /api/servers/{serverId}/messages → Create
//	GET  /api/servers/{serverId}/messages → List
type MessageHandler struct {
	messageService services.MessageService
}

// NewMessageHandler, constructor.
func NewMessageHandler(messageService services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Create godoc
// POST /api/servers/{serverId}/messages
// Body: { "author_id": "...", "content": "hello" }
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	serverID := r.PathValue("serverId")
	if serverID == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "server id is required")
		return
	}

	var req models.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.messageService.Create(r.Context(), serverID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, msg)
}

// List godoc
// GET /api/servers/{serverId}/messages
// Tüm mesajlar kronolojik sırayla — pagination yoktur.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	serverID := r.PathValue("serverId")
	if serverID == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "server id is required")
		return
	}

	msgs, err := h.messageService.ListByServer(r.Context(), serverID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, msgs)
}
