// Package repository, veritabanı erişim katmanını tanımlar.
//
// Her entity için bir interface + SQLite implementasyonu çifti vardır.
// Service katmanı interface'lere bağımlıdır (Dependency Inversion) —
// testlerde veya başka bir storage'a geçişte implementasyon değişir,
// service kodu değişmez.
package repository

import (
	"context"

	"github.com/akinalp/dischord/models"
)

// UserRepository, kullanıcı veritabanı işlemleri için interface.
type UserRepository interface {
	// Create, yeni kullanıcı kaydeder. Username çakışmasında
	// pkg.ErrAlreadyExists döner.
	Create(ctx context.Context, user *models.User) error

	// GetByID, kullanıcıyı id ile döner. Yoksa pkg.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// Exists, kullanıcının var olup olmadığını döner.
	Exists(ctx context.Context, id string) (bool, error)
}
