package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Server, bir sunucuyu (topluluk) temsil eder.
//
// MemberIDs ve PostIDs denormalize listelerdir — veritabanında ayrı
// tablolardadır ama GET /servers/{id} response'unda birlikte döner.
// Client bu listelerle üye panelini ve post feed'ini kurar; listeler
// bu client'ın bakış açısından append-only'dir (üyelikten çıkarma ve
// post listesinden düşme işlemi yoktur, silinen post bir sonraki
// sunucu seçiminde listeden kaybolur).
type Server struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	MemberIDs []string  `json:"member_ids"`
	PostIDs   []string  `json:"post_ids"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateServerRequest, yeni sunucu oluşturma isteği.
// Sunucuyu oluşturan kullanıcı otomatik olarak owner ve ilk üye olur.
type CreateServerRequest struct {
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`
}

// Validate, CreateServerRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateServerRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	nameLen := utf8.RuneCountInString(r.Name)
	if nameLen < 1 {
		return fmt.Errorf("server name is required")
	}
	if nameLen > 100 {
		return fmt.Errorf("server name must be at most 100 characters")
	}
	if strings.TrimSpace(r.OwnerID) == "" {
		return fmt.Errorf("owner_id is required")
	}
	return nil
}
