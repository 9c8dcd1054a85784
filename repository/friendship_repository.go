package repository

import (
	"context"

	"github.com/akinalp/dischord/models"
)

// FriendshipRepository, arkadaşlık veritabanı işlemleri için interface.
// Arkadaşlık simetriktir — Add her iki yönde birden kayıt açar,
// onay/pending akışı yoktur.
type FriendshipRepository interface {
	// Add, (user, friend) çiftini her iki yönde kaydeder.
	// Mevcut kayıt sessizce korunur (idempotent).
	Add(ctx context.Context, userID, friendID string) error

	// ListFriends, kullanıcının arkadaşlarını User kaydı olarak döner.
	ListFriends(ctx context.Context, userID string) ([]models.User, error)
}
