package repository

import (
	"context"
	"time"

	"github.com/akinalp/dischord/models"
)

// ServerRepository, sunucu veritabanı işlemleri için interface.
//
// GetByID sadece metadata satırını döner; üye ve post id listeleri
// ayrı tablolardan okunur ve service katmanında Server struct'ına
// denormalize edilir (GET /servers/{id} response şekli).
type ServerRepository interface {
	// Create, sunucu metadata satırını kaydeder.
	Create(ctx context.Context, server *models.Server) error

	// GetByID, sunucu metadata'sını döner (üye/post listeleri hariç).
	// Yoksa pkg.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Server, error)

	// AddMember, kullanıcıyı sunucuya üye yapar (idempotent).
	AddMember(ctx context.Context, serverID, userID string, joinedAt time.Time) error

	// ListMemberIDs, üye id'lerini katılım sırasıyla döner.
	ListMemberIDs(ctx context.Context, serverID string) ([]string, error)

	// ListPostIDs, sunucudaki post id'lerini oluşturulma sırasıyla döner.
	ListPostIDs(ctx context.Context, serverID string) ([]string, error)
}
