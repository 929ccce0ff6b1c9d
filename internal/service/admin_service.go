package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"socialhub/internal/apperrors"
	"socialhub/internal/database"
	"socialhub/internal/models"
	"socialhub/internal/repository"
)

type AdminService interface {
	PromoteUser(ctx context.Context, targetID string) error
	DemoteUser(ctx context.Context, targetID string) error
	DeleteUser(ctx context.Context, actor models.AuthUser, targetID string) error
	DeletePost(ctx context.Context, actor models.AuthUser, postID string) error
	DeleteLike(ctx context.Context, userID, postID string) error
}

type adminService struct {
	db           *database.DB
	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	activityRepo repository.ActivityRepository
}

func NewAdminService(db *database.DB, userRepo repository.UserRepository, postRepo repository.PostRepository, activityRepo repository.ActivityRepository) AdminService {
	return &adminService{
		db:           db,
		userRepo:     userRepo,
		postRepo:     postRepo,
		activityRepo: activityRepo,
	}
}

// PromoteUser - безусловное назначение ADMIN; смены ролей в журнал не пишутся
func (s *adminService) PromoteUser(ctx context.Context, targetID string) error {
	return s.userRepo.PromoteToAdmin(ctx, targetID)
}

func (s *adminService) DemoteUser(ctx context.Context, targetID string) error {
	return s.userRepo.DemoteAdmin(ctx, targetID)
}

// DeleteUser - запись в журнал добавляется ДО физического удаления:
// текст записи опирается на состояние, которое каскад уничтожит.
// После удаления она остаётся висячей ссылкой, лента терпит это
// за счёт внешнего соединения при отображении
func (s *adminService) DeleteUser(ctx context.Context, actor models.AuthUser, targetID string) error {
	return s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		err := s.activityRepo.Append(ctx, tx, &models.Activity{
			Type:         models.ActivityUserDeleted,
			ActorID:      actor.UserID,
			TargetUserID: &targetID,
			Description:  fmt.Sprintf("User deleted by '%s'", actor.Role.Title()),
		})
		if err != nil {
			return err
		}

		return s.userRepo.DeleteUser(ctx, tx, targetID)
	})
}

// DeletePost - модераторское удаление: проверка владельца не выполняется,
// семантика мягкого удаления та же, что и у автора
func (s *adminService) DeletePost(ctx context.Context, actor models.AuthUser, postID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.Deleted {
		return apperrors.New(apperrors.CodeAlreadyDeleted, "Пост уже удалён")
	}

	// здесь порядок записи в журнал не важен: строка поста сохраняется
	return s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.postRepo.SoftDelete(ctx, tx, postID, actor.Role); err != nil {
			return err
		}

		return s.activityRepo.Append(ctx, tx, &models.Activity{
			Type:        models.ActivityPostDeleted,
			ActorID:     actor.UserID,
			PostID:      &postID,
			Description: fmt.Sprintf("Post deleted by '%s'", actor.Role),
		})
	})
}

// DeleteLike - безусловное удаление, без проверки существования и без записи в журнал
func (s *adminService) DeleteLike(ctx context.Context, userID, postID string) error {
	return s.postRepo.Unlike(ctx, userID, postID)
}
