package repository

import (
	"context"
	"fmt"

	"github.com/akinalp/dischord/database"
	"github.com/akinalp/dischord/models"
)

// sqliteFriendshipRepo, FriendshipRepository'nin SQLite implementasyonu.
type sqliteFriendshipRepo struct {
	db database.TxQuerier
}

// NewSQLiteFriendshipRepo, constructor.
func NewSQLiteFriendshipRepo(db database.TxQuerier) FriendshipRepository {
	return &sqliteFriendshipRepo{db: db}
}

func (r *sqliteFriendshipRepo) Add(ctx context.Context, userID, friendID string) error {
	// İki yönlü insert — arkadaşlık simetrik.
	// ON CONFLICT DO NOTHING: tekrar eklemek hata değildir.
	query := `
		INSERT INTO friends (user_id, friend_id) VALUES (?, ?), (?, ?)
		ON CONFLICT DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, userID, friendID, friendID, userID); err != nil {
		return fmt.Errorf("failed to add friend: %w", err)
	}
	return nil
}

func (r *sqliteFriendshipRepo) ListFriends(ctx context.Context, userID string) ([]models.User, error) {
	query := `
		SELECT u.id, u.username, u.email, u.created_at
		FROM users u
		JOIN friends f ON f.friend_id = u.id
		WHERE f.user_id = ?
		ORDER BY u.username`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	var friends []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan friend row: %w", err)
		}
		friends = append(friends, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating friend rows: %w", err)
	}

	return friends, nil
}
