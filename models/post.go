package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Post, bir sunucunun feed'indeki tek bir gönderiyi temsil eder.
//
// Votes, sunucu tarafında vote satırlarının toplamı olarak hesaplanır
// (COALESCE(SUM(vote), 0)) — client bu toplamı asla kendisi türetmez,
// sadece kendi oyunu değiştirirken optimistic delta uygular.
type Post struct {
	ID        string    `json:"id"`
	ServerID  string    `json:"server_id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Edited, post'un oluşturulduktan sonra düzenlenip düzenlenmediğini döner.
// updated_at != created_at → "(edited)" işareti.
func (p *Post) Edited() bool {
	return !p.UpdatedAt.Equal(p.CreatedAt)
}

// CreatePostRequest, yeni post oluşturma isteği.
type CreatePostRequest struct {
	AuthorID string `json:"author_id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

// Validate, CreatePostRequest'in geçerli olup olmadığını kontrol eder.
// Body opsiyoneldir — başlık tek başına yeterli.
func (r *CreatePostRequest) Validate() error {
	if strings.TrimSpace(r.AuthorID) == "" {
		return fmt.Errorf("author_id is required")
	}
	r.Title = strings.TrimSpace(r.Title)
	titleLen := utf8.RuneCountInString(r.Title)
	if titleLen < 1 {
		return fmt.Errorf("post title is required")
	}
	if titleLen > 300 {
		return fmt.Errorf("post title must be at most 300 characters")
	}
	r.Body = strings.TrimSpace(r.Body)
	if utf8.RuneCountInString(r.Body) > 10000 {
		return fmt.Errorf("post body must be at most 10000 characters")
	}
	return nil
}

// UpdatePostRequest, post düzenleme isteği.
// Sahiplik kontrolü (sadece yazar düzenler) client tarafındadır.
type UpdatePostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Validate, UpdatePostRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdatePostRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	titleLen := utf8.RuneCountInString(r.Title)
	if titleLen < 1 {
		return fmt.Errorf("post title is required")
	}
	if titleLen > 300 {
		return fmt.Errorf("post title must be at most 300 characters")
	}
	r.Body = strings.TrimSpace(r.Body)
	if utf8.RuneCountInString(r.Body) > 10000 {
		return fmt.Errorf("post body must be at most 10000 characters")
	}
	return nil
}
