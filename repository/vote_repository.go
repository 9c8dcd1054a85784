package repository

import (
	"context"

	"github.com/akinalp/dischord/models"
)

// VoteRepository, oy veritabanı işlemleri için interface.
//
// "Oy yok" durumu satır YOKLUĞUDUR: Get bu durumda pkg.ErrNotFound döner,
// 0 değerli satır asla saklanmaz (geri çekme = Delete).
type VoteRepository interface {
	// Get, kullanıcının post'taki oyunu döner. Oy yoksa pkg.ErrNotFound.
	Get(ctx context.Context, postID, userID string) (*models.Vote, error)

	// Upsert, oyu kaydeder veya mevcut değeri değiştirir.
	Upsert(ctx context.Context, vote *models.Vote) error

	// Delete, oyu geri çeker. Satır yoksa sessizce başarılıdır.
	Delete(ctx context.Context, postID, userID string) error
}
