package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"socialhub/internal/apperrors"
	"socialhub/internal/database"
	"socialhub/internal/models"
	"socialhub/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, actor models.AuthUser, content string) (*models.Post, error)
	ListPosts(ctx context.Context, viewerID string) ([]models.FeedPost, error)
	DeletePost(ctx context.Context, actor models.AuthUser, postID string) error
	LikePost(ctx context.Context, actor models.AuthUser, postID string) error
	UnlikePost(ctx context.Context, actor models.AuthUser, postID string) error
}

type postService struct {
	db           *database.DB
	postRepo     repository.PostRepository
	activityRepo repository.ActivityRepository
}

func NewPostService(db *database.DB, postRepo repository.PostRepository, activityRepo repository.ActivityRepository) PostService {
	return &postService{
		db:           db,
		postRepo:     postRepo,
		activityRepo: activityRepo,
	}
}

func (s *postService) CreatePost(ctx context.Context, actor models.AuthUser, content string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.New(apperrors.CodeValidation, "Содержимое поста не может быть пустым")
	}

	post := &models.Post{
		AuthorID: actor.UserID,
		Content:  content,
	}

	// вставка поста и запись в журнал фиксируются одной транзакцией
	err := s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.postRepo.Create(ctx, tx, post); err != nil {
			return err
		}

		return s.activityRepo.Append(ctx, tx, &models.Activity{
			Type:        models.ActivityPostCreated,
			ActorID:     actor.UserID,
			PostID:      &post.PostID,
			Description: fmt.Sprintf("%s made a post", actor.DisplayName),
		})
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) ListPosts(ctx context.Context, viewerID string) ([]models.FeedPost, error) {
	return s.postRepo.ListVisible(ctx, viewerID)
}

func (s *postService) DeletePost(ctx context.Context, actor models.AuthUser, postID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.Deleted {
		return apperrors.New(apperrors.CodeAlreadyDeleted, "Пост уже удалён")
	}

	// удалять пост может его автор либо модератор (ADMIN/OWNER)
	if post.AuthorID != actor.UserID && !actor.Role.IsModerator() {
		return apperrors.New(apperrors.CodeForbidden, "Удалить пост может только его автор или администратор")
	}

	description := fmt.Sprintf("Post deleted by '%s'", actor.Role)
	if actor.Role == models.RoleUser {
		description = fmt.Sprintf("%s deleted their post", actor.DisplayName)
	}

	return s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.postRepo.SoftDelete(ctx, tx, postID, actor.Role); err != nil {
			return err
		}

		return s.activityRepo.Append(ctx, tx, &models.Activity{
			Type:        models.ActivityPostDeleted,
			ActorID:     actor.UserID,
			PostID:      &postID,
			Description: description,
		})
	})
}

// LikePost - лайк идемпотентен на уровне данных, но запись в журнал
// добавляется при каждом вызове, в том числе повторном
func (s *postService) LikePost(ctx context.Context, actor models.AuthUser, postID string) error {
	return s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.postRepo.Like(ctx, tx, actor.UserID, postID); err != nil {
			if strings.Contains(err.Error(), "violates foreign key") {
				return apperrors.New(apperrors.CodeNotFound, "Пост не найден")
			}
			return err
		}

		return s.activityRepo.Append(ctx, tx, &models.Activity{
			Type:        models.ActivityLikedPost,
			ActorID:     actor.UserID,
			PostID:      &postID,
			Description: fmt.Sprintf("%s liked a post", actor.DisplayName),
		})
	})
}

// UnlikePost - снятие лайка в журнал не попадает
func (s *postService) UnlikePost(ctx context.Context, actor models.AuthUser, postID string) error {
	return s.postRepo.Unlike(ctx, actor.UserID, postID)
}
