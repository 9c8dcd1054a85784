package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/dischord/models"
	"github.com/akinalp/dischord/pkg"
	"github.com/akinalp/dischord/services"
)

// PostHandler, post ve oy endpoint'lerini yöneten struct.
//
// Route'lar:
//
//	POST   /api/servers/{serverId}/posts                 → Create
//	GET    /api/servers/{serverId}/posts/{postId}        → Get
//	PUT    /api/servers/{serverId}/posts/{postId}        → Update
//	DELETE /api/servers/{serverId}/posts/{postId}        → Delete
//	GET    /api/servers/{serverId}/posts/{postId}/vote   → GetVote
//	PUT    /api/servers/{serverId}/posts/{postId}/vote   → PutVote
type PostHandler struct {
	postService services.PostService
}

// NewPostHandler, constructor.
func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create godoc
// POST /api/servers/{serverId}/posts
// Body: { "author_id": "...", "title": "...", "body": "..." }
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	serverID := r.PathValue("serverId")
	if serverID == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "server id is required")
		return
	}

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.postService.Create(r.Context(), serverID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, post)
}

// Get godoc
// GET /api/servers/{serverId}/posts/{postId}
// Tally (votes) her okumada SUM ile hesaplanır.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	serverID, postID, ok := postPath(w, r)
	if !ok {
		return
	}

	post, err := h.postService.Get(r.Context(), serverID, postID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, post)
}

// Update godoc
// PUT /api/servers/{serverId}/posts/{postId}
// Body: { "title": "...", "body": "..." }
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	serverID, postID, ok := postPath(w, r)
	if !ok {
		return
	}

	var req models.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.postService.Update(r.Context(), serverID, postID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, post)
}

// Delete godoc
// DELETE /api/servers/{serverId}/posts/{postId}
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serverID, postID, ok := postPath(w, r)
	if !ok {
		return
	}

	if err := h.postService.Delete(r.Context(), serverID, postID); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.NoContent(w)
}

// GetVote godoc
// GET /api/servers/{serverId}/posts/{postId}/vote?user_id=...
// Kullanıcının oyunu döner; oy yoksa 404.
func (h *PostHandler) GetVote(w http.ResponseWriter, r *http.Request) {
	serverID, postID, ok := postPath(w, r)
	if !ok {
		return
	}

	userID := r.URL.Query().Get("user_id")

	vote, err := h.postService.GetVote(r.Context(), serverID, postID, userID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, vote)
}

// PutVote godoc
// PUT /api/servers/{serverId}/posts/{postId}/vote
// Body: { "user_id": "...", "value": 1 }  (value ∈ {-1, 0, 1}; 0 oyu siler)
func (h *PostHandler) PutVote(w http.ResponseWriter, r *http.Request) {
	serverID, postID, ok := postPath(w, r)
	if !ok {
		return
	}

	var req models.PutVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.postService.PutVote(r.Context(), serverID, postID, &req); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.NoContent(w)
}

// postPath, serverId + postId path parametrelerini çıkarır.
// Eksikse hata yanıtını yazar ve ok=false döner.
func postPath(w http.ResponseWriter, r *http.Request) (serverID, postID string, ok bool) {
	serverID = r.PathValue("serverId")
	postID = r.PathValue("postId")
	if serverID == "" || postID == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "server id and post id are required")
		return "", "", false
	}
	return serverID, postID, true
}
