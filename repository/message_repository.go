package repository

import (
	"context"

	"github.com/akinalp/dischord/models"
)

// MessageRepository, mesaj veritabanı işlemleri için interface.
// Mesajlar append-only'dir — update/delete operasyonu yoktur.
type MessageRepository interface {
	// Create, yeni mesaj kaydeder.
	Create(ctx context.Context, msg *models.Message) error

	// ListByServer, sunucunun mesajlarını kronolojik sırayla döner.
	ListByServer(ctx context.Context, serverID string) ([]models.Message, error)
}
