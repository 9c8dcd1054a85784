package repository

import (
	"context"

	"github.com/akinalp/dischord/models"
)

// PostRepository, post veritabanı işlemleri için interface.
// Okumalar Votes alanını vote satırlarının toplamı olarak doldurur —
// tally ayrı bir kolon değildir, her zaman SUM'dan türetilir.
type PostRepository interface {
	// Create, yeni post kaydeder.
	Create(ctx context.Context, post *models.Post) error

	// GetByID, post'u sunucusuna scope'lu olarak döner (tally dahil).
	// Yoksa veya başka sunucuya aitse pkg.ErrNotFound.
	GetByID(ctx context.Context, serverID, postID string) (*models.Post, error)

	// Update, title/body/updated_at günceller. Yoksa pkg.ErrNotFound.
	Update(ctx context.Context, post *models.Post) error

	// Delete, post'u siler (oy satırları cascade ile gider).
	// Yoksa pkg.ErrNotFound.
	Delete(ctx context.Context, serverID, postID string) error
}
