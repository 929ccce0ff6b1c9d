package service

import (
	"context"

	"socialhub/internal/models"
	"socialhub/internal/repository"
)

// activityWallLimit - фиксированный размер глобальной ленты активности
const activityWallLimit = 100

type ActivityService interface {
	Wall(ctx context.Context) ([]models.ActivityEntry, error)
}

type activityService struct {
	activityRepo repository.ActivityRepository
}

func NewActivityService(activityRepo repository.ActivityRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

func (s *activityService) Wall(ctx context.Context) ([]models.ActivityEntry, error) {
	return s.activityRepo.ListRecent(ctx, activityWallLimit)
}
