package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/dischord/database"
	"github.com/akinalp/dischord/models"
	"github.com/akinalp/dischord/pkg"
)

// sqliteVoteRepo, VoteRepository'nin SQLite implementasyonu.
type sqliteVoteRepo struct {
	db database.TxQuerier
}

// NewSQLiteVoteRepo, constructor.
func NewSQLiteVoteRepo(db database.TxQuerier) VoteRepository {
	return &sqliteVoteRepo{db: db}
}

func (r *sqliteVoteRepo) Get(ctx context.Context, postID, userID string) (*models.Vote, error) {
	query := `
		SELECT post_id, user_id, value
		FROM votes WHERE post_id = ? AND user_id = ?`

	vote := &models.Vote{}
	err := r.db.QueryRowContext(ctx, query, postID, userID).Scan(
		&vote.PostID, &vote.UserID, &vote.Value,
	)

	if errors.Is(err, sql.ErrNoRows) {
		// Oy yok — normal bir durum, error chain'i yine de NotFound taşır.
		return nil, fmt.Errorf("%w: no vote on post %s", pkg.ErrNotFound, postID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}

	return vote, nil
}

func (r *sqliteVoteRepo) Upsert(ctx context.Context, vote *models.Vote) error {
	query := `
		INSERT INTO votes (post_id, user_id, value) VALUES (?, ?, ?)
		ON CONFLICT (post_id, user_id) DO UPDATE SET value = excluded.value`

	if _, err := r.db.ExecContext(ctx, query, vote.PostID, vote.UserID, vote.Value); err != nil {
		return fmt.Errorf("failed to upsert vote: %w", err)
	}
	return nil
}

func (r *sqliteVoteRepo) Delete(ctx context.Context, postID, userID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM votes WHERE post_id = ? AND user_id = ?`, postID, userID,
	); err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}
	return nil
}
