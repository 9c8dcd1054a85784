package handlers

import (
	"net/http"

	"github.com/akinalp/dischord/services"
)

// NewMux, tüm API endpoint'lerini bağlanmış bir ServeMux döner.
// main.go ve testler aynı router'ı buradan kurar.
//
// Go 1.22+ method-aware pattern'leri kullanılır: "METHOD /path/{param}".
func NewMux(
	userService services.UserService,
	serverService services.ServerService,
	postService services.PostService,
	messageService services.MessageService,
) *http.ServeMux {
	userHandler := NewUserHandler(userService)
	serverHandler := NewServerHandler(serverService)
	postHandler := NewPostHandler(postService)
	messageHandler := NewMessageHandler(messageService)

	mux := http.NewServeMux()

	// ─── Users & Friends ───
	mux.HandleFunc("POST /api/users", userHandler.Create)
	mux.HandleFunc("GET /api/users/{id}", userHandler.Get)
	mux.HandleFunc("POST /api/users/{id}/friends", userHandler.AddFriend)
	mux.HandleFunc("GET /api/users/{id}/friends", userHandler.ListFriends)

	// ─── Servers ───
	mux.HandleFunc("POST /api/servers", serverHandler.Create)
	mux.HandleFunc("GET /api/servers/{serverId}", serverHandler.Get)

	// ─── Posts & Votes ───
	mux.HandleFunc("POST /api/servers/{serverId}/posts", postHandler.Create)
	mux.HandleFunc("GET /api/servers/{serverId}/posts/{postId}", postHandler.Get)
	mux.HandleFunc("PUT /api/servers/{serverId}/posts/{postId}", postHandler.Update)
	mux.HandleFunc("DELETE /api/servers/{serverId}/posts/{postId}", postHandler.Delete)
	mux.HandleFunc("GET /api/servers/{serverId}/posts/{postId}/vote", postHandler.GetVote)
	mux.HandleFunc("PUT /api/servers/{serverId}/posts/{postId}/vote", postHandler.PutVote)

	// ─── Messages ───
	mux.HandleFunc("POST /api/servers/{serverId}/messages", messageHandler.Create)
	mux.HandleFunc("GET /api/servers/{serverId}/messages", messageHandler.List)

	return mux
}
