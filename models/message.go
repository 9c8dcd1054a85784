package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Message, bir sunucunun chat panelindeki tek mesajı temsil eder.
// Mesajlar append-only'dir — düzenleme ve silme yolu yoktur.
type Message struct {
	ID        string    `json:"id"`
	ServerID  string    `json:"server_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateMessageRequest, yeni mesaj gönderme isteği.
type CreateMessageRequest struct {
	AuthorID string `json:"author_id"`
	Content  string `json:"content"`
}

// Validate, CreateMessageRequest'in geçerli olup olmadığını kontrol eder.
// İçerik 1-2000 karakter arası olmalı.
func (r *CreateMessageRequest) Validate() error {
	if strings.TrimSpace(r.AuthorID) == "" {
		return fmt.Errorf("author_id is required")
	}
	r.Content = strings.TrimSpace(r.Content)
	contentLen := utf8.RuneCountInString(r.Content)
	if contentLen < 1 {
		return fmt.Errorf("message content is required")
	}
	if contentLen > 2000 {
		return fmt.Errorf("message content must be at most 2000 characters")
	}
	return nil
}
