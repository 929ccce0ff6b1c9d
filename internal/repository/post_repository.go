package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"socialhub/internal/apperrors"
	"socialhub/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, q sqlx.ExtContext, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	post.CreatedAt = time.Now()

	query := `
		INSERT INTO posts (post_id, author_id, content, created_at, deleted)
		VALUES (:post_id, :author_id, :content, :created_at, FALSE)
	`

	_, err := sqlx.NamedExecContext(ctx, q, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post

	query := `SELECT * FROM posts WHERE post_id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.CodeNotFound, "Пост не найден")
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

// ListVisible - неудалённые посты без блокировки между автором и зрителем
// в любом направлении; сортировка по дате создания, без пагинации
func (r *postRepository) ListVisible(ctx context.Context, viewerID string) ([]models.FeedPost, error) {
	query := `
		SELECT p.post_id, p.author_id, u.display_name, p.content, p.created_at
		FROM posts p
		JOIN users u ON u.user_id = p.author_id
		WHERE p.deleted = FALSE
		  AND NOT EXISTS (
		    SELECT 1 FROM blocks b
		    WHERE (b.blocker_id = $1 AND b.blocked_id = p.author_id)
		       OR (b.blocker_id = p.author_id AND b.blocked_id = $1)
		  )
		ORDER BY p.created_at DESC
	`

	posts := []models.FeedPost{}
	err := r.db.SelectContext(ctx, &posts, query, viewerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты постов: %w", err)
	}

	return posts, nil
}

// SoftDelete - пост помечается удалённым, строка физически не удаляется;
// обратного перехода deleted -> false не существует
func (r *postRepository) SoftDelete(ctx context.Context, q sqlx.ExtContext, postID string, deletedBy models.Role) error {
	query := `
		UPDATE posts
		SET deleted = TRUE, deleted_by = $2, deleted_at = NOW()
		WHERE post_id = $1 AND deleted = FALSE
	`

	result, err := q.ExecContext(ctx, query, postID, deletedBy.String())
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.New(apperrors.CodeAlreadyDeleted, "Пост уже удалён")
	}

	return nil
}

// Like - идемпотентная вставка: повторный лайк не создаёт дубликата
func (r *postRepository) Like(ctx context.Context, q sqlx.ExtContext, userID, postID string) error {
	query := `INSERT INTO likes (user_id, post_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	_, err := q.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении лайка: %w", err)
	}

	return nil
}

// Unlike - удаление несуществующего лайка проходит молча
func (r *postRepository) Unlike(ctx context.Context, userID, postID string) error {
	query := `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`

	_, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении лайка: %w", err)
	}

	return nil
}
