package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akinalp/dischord/database"
	"github.com/akinalp/dischord/models"
	"github.com/akinalp/dischord/pkg"
)

// sqliteServerRepo, ServerRepository'nin SQLite implementasyonu.
type sqliteServerRepo struct {
	db database.TxQuerier
}

// NewSQLiteServerRepo, constructor.
func NewSQLiteServerRepo(db database.TxQuerier) ServerRepository {
	return &sqliteServerRepo{db: db}
}

func (r *sqliteServerRepo) Create(ctx context.Context, server *models.Server) error {
	query := `
		INSERT INTO servers (id, name, owner_id, created_at)
		VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		server.ID, server.Name, server.OwnerID, server.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return nil
}

func (r *sqliteServerRepo) GetByID(ctx context.Context, id string) (*models.Server, error) {
	query := `
		SELECT id, name, owner_id, created_at
		FROM servers WHERE id = ?`

	server := &models.Server{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&server.ID, &server.Name, &server.OwnerID, &server.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: server %s", pkg.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get server by id: %w", err)
	}

	return server, nil
}

func (r *sqliteServerRepo) AddMember(ctx context.Context, serverID, userID string, joinedAt time.Time) error {
	query := `
		INSERT INTO server_members (server_id, user_id, joined_at) VALUES (?, ?, ?)
		ON CONFLICT DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, serverID, userID, joinedAt); err != nil {
		return fmt.Errorf("failed to add server member: %w", err)
	}
	return nil
}

func (r *sqliteServerRepo) ListMemberIDs(ctx context.Context, serverID string) ([]string, error) {
	query := `
		SELECT user_id FROM server_members
		WHERE server_id = ? ORDER BY joined_at`

	return r.listIDs(ctx, query, serverID, "member")
}

func (r *sqliteServerRepo) ListPostIDs(ctx context.Context, serverID string) ([]string, error) {
	query := `
		SELECT id FROM posts
		WHERE server_id = ? ORDER BY created_at`

	return r.listIDs(ctx, query, serverID, "post")
}

// listIDs, tek kolonluk id sorgularının ortak iterasyonu.
func (r *sqliteServerRepo) listIDs(ctx context.Context, query, serverID, kind string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, serverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s ids: %w", kind, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan %s id: %w", kind, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s ids: %w", kind, err)
	}

	return ids, nil
}
