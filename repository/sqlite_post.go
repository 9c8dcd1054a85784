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

// sqlitePostRepo, PostRepository'nin SQLite implementasyonu.
type sqlitePostRepo struct {
	db database.TxQuerier
}

// NewSQLitePostRepo, constructor.
func NewSQLitePostRepo(db database.TxQuerier) PostRepository {
	return &sqlitePostRepo{db: db}
}

func (r *sqlitePostRepo) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, server_id, author_id, title, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.ServerID, post.AuthorID, post.Title, post.Body,
		post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *sqlitePostRepo) GetByID(ctx context.Context, serverID, postID string) (*models.Post, error) {
	// Tally her okumada vote satırlarından hesaplanır —
	// tek doğruluk kaynağı votes tablosudur.
	query := `
		SELECT p.id, p.server_id, p.author_id, p.title, p.body,
		       COALESCE(SUM(v.value), 0) AS votes,
		       p.created_at, p.updated_at
		FROM posts p
		LEFT JOIN votes v ON v.post_id = p.id
		WHERE p.id = ? AND p.server_id = ?
		GROUP BY p.id`

	post := &models.Post{}
	err := r.db.QueryRowContext(ctx, query, postID, serverID).Scan(
		&post.ID, &post.ServerID, &post.AuthorID, &post.Title, &post.Body,
		&post.Votes, &post.CreatedAt, &post.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: post %s", pkg.ErrNotFound, postID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *sqlitePostRepo) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET title = ?, body = ?, updated_at = ?
		WHERE id = ? AND server_id = ?`

	result, err := r.db.ExecContext(ctx, query,
		post.Title, post.Body, post.UpdatedAt, post.ID, post.ServerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: post %s", pkg.ErrNotFound, post.ID)
	}

	return nil
}

func (r *sqlitePostRepo) Delete(ctx context.Context, serverID, postID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM posts WHERE id = ? AND server_id = ?`, postID, serverID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: post %s", pkg.ErrNotFound, postID)
	}

	return nil
}
