package service

import (
	"socialhub/internal/config"
	"socialhub/internal/database"
	"socialhub/internal/repository"
)

type Service struct {
	Auth     AuthService
	Post     PostService
	Social   SocialService
	Admin    AdminService
	Activity ActivityService
}

func NewService(db *database.DB, rep *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		Auth:     NewAuthService(rep.User, cfg),
		Post:     NewPostService(db, rep.Post, rep.Activity),
		Social:   NewSocialService(db, rep.Social, rep.User, rep.Activity),
		Admin:    NewAdminService(db, rep.User, rep.Post, rep.Activity),
		Activity: NewActivityService(rep.Activity),
	}
}
