package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akinalp/dischord/database"
	"github.com/akinalp/dischord/models"
	"github.com/akinalp/dischord/pkg"
	"github.com/akinalp/dischord/repository"

	"github.com/google/uuid"
)

// ServerService, sunucu iş mantığı için public interface.
type ServerService interface {
	// Create, yeni sunucu oluşturur. Oluşturan kullanıcı (owner)
	// otomatik olarak ilk üye olur — iki yazma tek transaction'dadır.
	Create(ctx context.Context, req *models.CreateServerRequest) (*models.Server, error)

	// Get, sunucuyu denormalize haliyle döner: metadata + üye id'leri
	// + post id'leri. Client'ın load protokolü bu tek response'la başlar.
	Get(ctx context.Context, id string) (*models.Server, error)
}

// serverService, ServerService'in private implementasyonu.
type serverService struct {
	conn       *sql.DB
	serverRepo repository.ServerRepository
	userRepo   repository.UserRepository
}

// NewServerService, constructor. conn transaction açmak için gereklidir
// (repository'ler TxQuerier alır, tx-scoped kopyaları Create içinde kurulur).
func NewServerService(conn *sql.DB, serverRepo repository.ServerRepository, userRepo repository.UserRepository) ServerService {
	return &serverService{
		conn:       conn,
		serverRepo: serverRepo,
		userRepo:   userRepo,
	}
}

func (s *serverService) Create(ctx context.Context, req *models.CreateServerRequest) (*models.Server, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	exists, err := s.userRepo.Exists(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: user %s", pkg.ErrNotFound, req.OwnerID)
	}

	now := time.Now().UTC()
	server := &models.Server{
		ID:        uuid.New().String(),
		Name:      req.Name,
		OwnerID:   req.OwnerID,
		CreatedAt: now,
	}

	// Sunucu satırı + owner üyeliği atomik yazılır.
	err = database.WithTx(ctx, s.conn, func(tx *sql.Tx) error {
		txRepo := repository.NewSQLiteServerRepo(tx)
		if err := txRepo.Create(ctx, server); err != nil {
			return err
		}
		return txRepo.AddMember(ctx, server.ID, req.OwnerID, now)
	})
	if err != nil {
		return nil, err
	}

	server.MemberIDs = []string{req.OwnerID}
	server.PostIDs = []string{}
	return server, nil
}

func (s *serverService) Get(ctx context.Context, id string) (*models.Server, error) {
	server, err := s.serverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	memberIDs, err := s.serverRepo.ListMemberIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	postIDs, err := s.serverRepo.ListPostIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	// JSON serialization: null yerine boş array döndür
	if memberIDs == nil {
		memberIDs = []string{}
	}
	if postIDs == nil {
		postIDs = []string{}
	}

	server.MemberIDs = memberIDs
	server.PostIDs = postIDs
	return server, nil
}
