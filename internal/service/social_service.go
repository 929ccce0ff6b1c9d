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

type SocialService interface {
	Follow(ctx context.Context, actor models.AuthUser, targetID string) error
	Unfollow(ctx context.Context, actor models.AuthUser, targetID string) error
	Block(ctx context.Context, actor models.AuthUser, targetID string) error
	Unblock(ctx context.Context, actor models.AuthUser, targetID string) error
}

type socialService struct {
	db           *database.DB
	socialRepo   repository.SocialRepository
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
}

func NewSocialService(db *database.DB, socialRepo repository.SocialRepository, userRepo repository.UserRepository, activityRepo repository.ActivityRepository) SocialService {
	return &socialService{
		db:           db,
		socialRepo:   socialRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

// Follow - подписка идемпотентна на уровне графа, но запись FOLLOWED
// добавляется в журнал при каждом вызове, в том числе повторном
func (s *socialService) Follow(ctx context.Context, actor models.AuthUser, targetID string) error {
	if targetID == actor.UserID {
		return apperrors.New(apperrors.CodeValidation, "Нельзя подписаться на самого себя")
	}

	// имя цели фиксируется в тексте записи на момент подписки
	// и позже не перечитывается
	targetName := "a user"
	if target, err := s.userRepo.GetUserByID(ctx, targetID); err == nil {
		targetName = target.DisplayName
	}

	return s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.socialRepo.Follow(ctx, tx, actor.UserID, targetID); err != nil {
			if strings.Contains(err.Error(), "violates foreign key") {
				return apperrors.New(apperrors.CodeNotFound, "Пользователь не найден")
			}
			return err
		}

		return s.activityRepo.Append(ctx, tx, &models.Activity{
			Type:         models.ActivityFollowed,
			ActorID:      actor.UserID,
			TargetUserID: &targetID,
			Description:  fmt.Sprintf("%s followed %s", actor.DisplayName, targetName),
		})
	})
}

func (s *socialService) Unfollow(ctx context.Context, actor models.AuthUser, targetID string) error {
	return s.socialRepo.Unfollow(ctx, actor.UserID, targetID)
}

// Block - блокировки в журнал активности не попадают
func (s *socialService) Block(ctx context.Context, actor models.AuthUser, targetID string) error {
	if targetID == actor.UserID {
		return apperrors.New(apperrors.CodeValidation, "Нельзя заблокировать самого себя")
	}

	if err := s.socialRepo.Block(ctx, actor.UserID, targetID); err != nil {
		if strings.Contains(err.Error(), "violates foreign key") {
			return apperrors.New(apperrors.CodeNotFound, "Пользователь не найден")
		}
		return err
	}

	return nil
}

func (s *socialService) Unblock(ctx context.Context, actor models.AuthUser, targetID string) error {
	return s.socialRepo.Unblock(ctx, actor.UserID, targetID)
}
