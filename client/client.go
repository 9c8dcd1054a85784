// Package client — Remote Entity Service erişim katmanı.
//
// RemoteService, sunucunun REST API'sine karşılık gelen mantıksal
// operasyonların interface'idir. Session ve resolver bu interface'e
// bağımlıdır (Dependency Inversion) — testlerde fake implementasyon,
// production'da HTTP implementasyonu kullanılır.
//
// Hata sözleşmesi:
//   - 404 → pkg.ErrNotFound (resolution path'lerinde normal bir sonuçtur)
//   - 400/403/409 → pkg.ErrBadRequest / ErrForbidden / ErrAlreadyExists
//   - network hatası → pkg.ErrUnavailable ile wrap'lenir
//
// Retry YOKTUR — bu katman hiçbir çağrıyı otomatik tekrarlamaz,
// başarısız istek olduğu gibi çağırana döner.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/akinalp/dischord/models"
	"github.com/akinalp/dischord/pkg"
)

// RemoteService, entity service'in tüm operasyonları.
// Her çağrı bir suspension point'tir — context her zaman ilk parametredir.
type RemoteService interface {
	CreateUser(ctx context.Context, username, email string) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)

	AddFriend(ctx context.Context, userID, friendID string) error
	GetFriends(ctx context.Context, userID string) ([]models.User, error)

	CreateServer(ctx context.Context, name, ownerID string) (models.Server, error)
	GetServer(ctx context.Context, id string) (models.Server, error)

	CreatePost(ctx context.Context, serverID, authorID, title, body string) (models.Post, error)
	GetPost(ctx context.Context, serverID, postID string) (models.Post, error)
	UpdatePost(ctx context.Context, serverID, postID, title, body string) (models.Post, error)
	DeletePost(ctx context.Context, serverID, postID string) error

	GetVote(ctx context.Context, serverID, postID, userID string) (models.Vote, error)
	PutVote(ctx context.Context, serverID, postID, userID string, value int) error

	CreateMessage(ctx context.Context, serverID, authorID, content string) (models.Message, error)
	GetMessages(ctx context.Context, serverID string) ([]models.Message, error)
}

// Client, RemoteService'in HTTP implementasyonu.
type Client struct {
	baseURL string
	http    *http.Client
}

// New, constructor. baseURL servis kökü (ör: "http://localhost:9090"),
// httpClient nil ise http.DefaultClient kullanılır — timeout politikası
// çağıranındır, bu katman kendi timeout'unu dayatmaz.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// do, tek bir HTTP round-trip çalıştırır ve envelope'u açar.
// out nil ise response body'deki data yok sayılır (ack endpoint'leri).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", pkg.ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var envelope pkg.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: decode response for %s %s: %v", pkg.ErrUnavailable, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := envelope.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%w: %s", pkg.ErrorFromStatus(resp.StatusCode), msg)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: decode data for %s %s: %v", pkg.ErrUnavailable, method, path, err)
	}
	return nil
}

func (c *Client) CreateUser(ctx context.Context, username, email string) (models.User, error) {
	var user models.User
	req := models.CreateUserRequest{Username: username, Email: email}
	err := c.do(ctx, http.MethodPost, "/api/users", &req, &user)
	return user, err
}

func (c *Client) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), nil, &user)
	return user, err
}

func (c *Client) AddFriend(ctx context.Context, userID, friendID string) error {
	req := models.AddFriendRequest{FriendID: friendID}
	return c.do(ctx, http.MethodPost, "/api/users/"+url.PathEscape(userID)+"/friends", &req, nil)
}

func (c *Client) GetFriends(ctx context.Context, userID string) ([]models.User, error) {
	var friends []models.User
	err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID)+"/friends", nil, &friends)
	return friends, err
}

func (c *Client) CreateServer(ctx context.Context, name, ownerID string) (models.Server, error) {
	var server models.Server
	req := models.CreateServerRequest{Name: name, OwnerID: ownerID}
	err := c.do(ctx, http.MethodPost, "/api/servers", &req, &server)
	return server, err
}

func (c *Client) GetServer(ctx context.Context, id string) (models.Server, error) {
	var server models.Server
	err := c.do(ctx, http.MethodGet, "/api/servers/"+url.PathEscape(id), nil, &server)
	return server, err
}

func (c *Client) CreatePost(ctx context.Context, serverID, authorID, title, body string) (models.Post, error) {
	var post models.Post
	req := models.CreatePostRequest{AuthorID: authorID, Title: title, Body: body}
	err := c.do(ctx, http.MethodPost, serverPath(serverID)+"/posts", &req, &post)
	return post, err
}

func (c *Client) GetPost(ctx context.Context, serverID, postID string) (models.Post, error) {
	var post models.Post
	err := c.do(ctx, http.MethodGet, serverPath(serverID)+"/posts/"+url.PathEscape(postID), nil, &post)
	return post, err
}

func (c *Client) UpdatePost(ctx context.Context, serverID, postID, title, body string) (models.Post, error) {
	var post models.Post
	req := models.UpdatePostRequest{Title: title, Body: body}
	err := c.do(ctx, http.MethodPut, serverPath(serverID)+"/posts/"+url.PathEscape(postID), &req, &post)
	return post, err
}

func (c *Client) DeletePost(ctx context.Context, serverID, postID string) error {
	return c.do(ctx, http.MethodDelete, serverPath(serverID)+"/posts/"+url.PathEscape(postID), nil, nil)
}

// GetVote, kullanıcının bir post'taki oyunu döner.
// Oy yoksa pkg.ErrNotFound döner — bu bir hata durumu değil, "oy yok"
// durumunun temsilidir (0 değerli kayıt saklanmaz).
func (c *Client) GetVote(ctx context.Context, serverID, postID, userID string) (models.Vote, error) {
	var vote models.Vote
	path := serverPath(serverID) + "/posts/" + url.PathEscape(postID) + "/vote?user_id=" + url.QueryEscape(userID)
	err := c.do(ctx, http.MethodGet, path, nil, &vote)
	return vote, err
}

func (c *Client) PutVote(ctx context.Context, serverID, postID, userID string, value int) error {
	req := models.PutVoteRequest{UserID: userID, Value: value}
	return c.do(ctx, http.MethodPut, serverPath(serverID)+"/posts/"+url.PathEscape(postID)+"/vote", &req, nil)
}

func (c *Client) CreateMessage(ctx context.Context, serverID, authorID, content string) (models.Message, error) {
	var msg models.Message
	req := models.CreateMessageRequest{AuthorID: authorID, Content: content}
	err := c.do(ctx, http.MethodPost, serverPath(serverID)+"/messages", &req, &msg)
	return msg, err
}

func (c *Client) GetMessages(ctx context.Context, serverID string) ([]models.Message, error) {
	var msgs []models.Message
	err := c.do(ctx, http.MethodGet, serverPath(serverID)+"/messages", nil, &msgs)
	return msgs, err
}

func serverPath(serverID string) string {
	return "/api/servers/" + url.PathEscape(serverID)
}
