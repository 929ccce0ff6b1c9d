package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"socialhub/internal/models"
)

// Запись, которая должна попасть в журнал активности вместе с мутацией,
// выполняется через q sqlx.ExtContext - сервис передаёт транзакцию,
// чтобы обе записи фиксировались атомарно.

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	PromoteToAdmin(ctx context.Context, userID string) error
	DemoteAdmin(ctx context.Context, userID string) error
	DeleteUser(ctx context.Context, q sqlx.ExtContext, userID string) error
}

type PostRepository interface {
	Create(ctx context.Context, q sqlx.ExtContext, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	ListVisible(ctx context.Context, viewerID string) ([]models.FeedPost, error)
	SoftDelete(ctx context.Context, q sqlx.ExtContext, postID string, deletedBy models.Role) error
	Like(ctx context.Context, q sqlx.ExtContext, userID, postID string) error
	Unlike(ctx context.Context, userID, postID string) error
}

type SocialRepository interface {
	Follow(ctx context.Context, q sqlx.ExtContext, followerID, followingID string) error
	Unfollow(ctx context.Context, followerID, followingID string) error
	Block(ctx context.Context, blockerID, blockedID string) error
	Unblock(ctx context.Context, blockerID, blockedID string) error
}

// ActivityRepository - единственный писатель журнала; остальные компоненты
// только запрашивают добавление записей. Журнал append-only
type ActivityRepository interface {
	Append(ctx context.Context, q sqlx.ExtContext, activity *models.Activity) error
	ListRecent(ctx context.Context, limit int) ([]models.ActivityEntry, error)
}

type Repository struct {
	User     UserRepository
	Post     PostRepository
	Social   SocialRepository
	Activity ActivityRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Post:     NewPostRepository(db),
		Social:   NewSocialRepository(db),
		Activity: NewActivityRepository(db),
	}
}
