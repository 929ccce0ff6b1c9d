package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type socialRepository struct {
	db *sqlx.DB
}

func NewSocialRepository(db *sqlx.DB) SocialRepository {
	return &socialRepository{db: db}
}

// Follow - идемпотентная вставка ребра подписки
func (r *socialRepository) Follow(ctx context.Context, q sqlx.ExtContext, followerID, followingID string) error {
	query := `INSERT INTO follows (follower_id, following_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	_, err := q.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("ошибка при создании подписки: %w", err)
	}

	return nil
}

func (r *socialRepository) Unfollow(ctx context.Context, followerID, followingID string) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`

	_, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	return nil
}

// Block - идемпотентная вставка; блокировка направленная,
// но фильтр видимости ленты трактует её в обе стороны
func (r *socialRepository) Block(ctx context.Context, blockerID, blockedID string) error {
	query := `INSERT INTO blocks (blocker_id, blocked_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, blockerID, blockedID)
	if err != nil {
		return fmt.Errorf("ошибка при блокировке пользователя: %w", err)
	}

	return nil
}

func (r *socialRepository) Unblock(ctx context.Context, blockerID, blockedID string) error {
	query := `DELETE FROM blocks WHERE blocker_id = $1 AND blocked_id = $2`

	_, err := r.db.ExecContext(ctx, query, blockerID, blockedID)
	if err != nil {
		return fmt.Errorf("ошибка при разблокировке пользователя: %w", err)
	}

	return nil
}
