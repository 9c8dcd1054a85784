// Package services, iş mantığı katmanıdır.
//
// Handler katmanı HTTP detaylarını, repository katmanı SQL detaylarını
// bilir; kurallar (validation, id üretimi, sahiplik, tutarlılık) burada
// yaşar. Her service bir interface + private implementasyon çiftidir,
// handler'lar interface'e bağımlıdır (Dependency Inversion).
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/akinalp/dischord/models"
	"github.com/akinalp/dischord/pkg"
	"github.com/akinalp/dischord/repository"

	"github.com/google/uuid"
)

// UserService, kullanıcı ve arkadaşlık iş mantığı için public interface.
type UserService interface {
	// Create, yeni kullanıcı oluşturur. Username çakışması hata döner.
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)

	// Get, kullanıcıyı id ile döner.
	Get(ctx context.Context, id string) (*models.User, error)

	// AddFriend, iki kullanıcıyı arkadaş yapar (simetrik, onaysız).
	AddFriend(ctx context.Context, userID string, req *models.AddFriendRequest) error

	// ListFriends, kullanıcının arkadaşlarını döner.
	ListFriends(ctx context.Context, userID string) ([]models.User, error)
}

// userService, UserService'in private implementasyonu.
type userService struct {
	userRepo   repository.UserRepository
	friendRepo repository.FriendshipRepository
}

// NewUserService, constructor.
func NewUserService(userRepo repository.UserRepository, friendRepo repository.FriendshipRepository) UserService {
	return &userService{
		userRepo:   userRepo,
		friendRepo: friendRepo,
	}
}

func (s *userService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Username:  req.Username,
		Email:     req.Email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) AddFriend(ctx context.Context, userID string, req *models.AddFriendRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	if userID == req.FriendID {
		return fmt.Errorf("%w: cannot add yourself as a friend", pkg.ErrBadRequest)
	}

	// İki taraf da var olmalı — yoksa generic not found.
	for _, id := range []string{userID, req.FriendID} {
		exists, err := s.userRepo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: user %s", pkg.ErrNotFound, id)
		}
	}

	return s.friendRepo.Add(ctx, userID, req.FriendID)
}

func (s *userService) ListFriends(ctx context.Context, userID string) ([]models.User, error) {
	friends, err := s.friendRepo.ListFriends(ctx, userID)
	if err != nil {
		return nil, err
	}

	// JSON serialization: null yerine boş array döndür
	if friends == nil {
		friends = []models.User{}
	}
	return friends, nil
}
