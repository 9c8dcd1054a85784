package repository

import (
	"context"
	"fmt"

	"github.com/akinalp/dischord/database"
	"github.com/akinalp/dischord/models"
)

// sqliteMessageRepo, MessageRepository'nin SQLite implementasyonu.
type sqliteMessageRepo struct {
	db database.TxQuerier
}

// NewSQLiteMessageRepo, constructor.
func NewSQLiteMessageRepo(db database.TxQuerier) MessageRepository {
	return &sqliteMessageRepo{db: db}
}

func (r *sqliteMessageRepo) Create(ctx context.Context, msg *models.Message) error {
	query := `
		INSERT INTO messages (id, server_id, author_id, content, created_at)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.ServerID, msg.AuthorID, msg.Content, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

func (r *sqliteMessageRepo) ListByServer(ctx context.Context, serverID string) ([]models.Message, error) {
	query := `
		SELECT id, server_id, author_id, content, created_at
		FROM messages WHERE server_id = ? ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, serverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var msgs []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.ServerID, &m.AuthorID, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		msgs = append(msgs, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}

	return msgs, nil
}
