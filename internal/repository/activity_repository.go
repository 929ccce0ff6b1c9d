package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"socialhub/internal/models"
)

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Append - единственный путь записи в журнал; записи никогда
// не обновляются и не удаляются
func (r *activityRepository) Append(ctx context.Context, q sqlx.ExtContext, activity *models.Activity) error {
	query := `
		INSERT INTO activities (type, actor_id, target_user_id, post_id, description)
		VALUES (:type, :actor_id, :target_user_id, :post_id, :description)
	`

	_, err := sqlx.NamedExecContext(ctx, q, query, activity)
	if err != nil {
		return fmt.Errorf("ошибка при записи активности: %w", err)
	}

	return nil
}

// ListRecent - последние записи журнала с текущими именами участников.
// Актор присоединяется внутренним соединением, цель - внешним:
// запись переживает удаление целевого пользователя, target_name
// в этом случае остаётся NULL
func (r *activityRepository) ListRecent(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	query := `
		SELECT a.activity_id,
		       a.type,
		       a.description,
		       a.created_at,
		       a.actor_id,
		       actor.display_name AS actor_name,
		       a.target_user_id,
		       target.display_name AS target_name,
		       a.post_id
		FROM activities a
		JOIN users actor ON actor.user_id = a.actor_id
		LEFT JOIN users target ON target.user_id = a.target_user_id
		ORDER BY a.created_at DESC
		LIMIT $1
	`

	entries := []models.ActivityEntry{}
	err := r.db.SelectContext(ctx, &entries, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении журнала активности: %w", err)
	}

	return entries, nil
}
