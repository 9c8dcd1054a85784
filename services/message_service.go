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

// MessageService, mesaj iş mantığı için public interface.
// Mesajlar append-only'dir; edit/delete yolu bilerek yoktur.
type MessageService interface {
	// Create, sunucuya mesaj ekler.
	Create(ctx context.Context, serverID string, req *models.CreateMessageRequest) (*models.Message, error)

	// ListByServer, sunucunun tüm mesajlarını kronolojik döner.
	ListByServer(ctx context.Context, serverID string) ([]models.Message, error)
}

// messageService, MessageService'in private implementasyonu.
type messageService struct {
	messageRepo repository.MessageRepository
	serverRepo  repository.ServerRepository
	userRepo    repository.UserRepository
}

// NewMessageService, constructor.
func NewMessageService(
	messageRepo repository.MessageRepository,
	serverRepo repository.ServerRepository,
	userRepo repository.UserRepository,
) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		serverRepo:  serverRepo,
		userRepo:    userRepo,
	}
}

func (s *messageService) Create(ctx context.Context, serverID string, req *models.CreateMessageRequest) (*models.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	if _, err := s.serverRepo.GetByID(ctx, serverID); err != nil {
		return nil, err
	}
	exists, err := s.userRepo.Exists(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: user %s", pkg.ErrNotFound, req.AuthorID)
	}

	msg := &models.Message{
		ID:        uuid.New().String(),
		ServerID:  serverID,
		AuthorID:  req.AuthorID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

func (s *messageService) ListByServer(ctx context.Context, serverID string) ([]models.Message, error) {
	if _, err := s.serverRepo.GetByID(ctx, serverID); err != nil {
		return nil, err
	}

	msgs, err := s.messageRepo.ListByServer(ctx, serverID)
	if err != nil {
		return nil, err
	}

	// JSON serialization: null yerine boş array döndür
	if msgs == nil {
		msgs = []models.Message{}
	}
	return msgs, nil
}
