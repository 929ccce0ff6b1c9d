package models

import (
	"database/sql"
	"time"
)

type User struct {
	UserID       string    `json:"id" db:"user_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	DisplayName  string    `json:"display_name" db:"display_name"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Post struct {
	PostID    string         `json:"id" db:"post_id"`
	AuthorID  string         `json:"author_id" db:"author_id"`
	Content   string         `json:"content" db:"content"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	Deleted   bool           `json:"-" db:"deleted"`
	DeletedBy sql.NullString `json:"-" db:"deleted_by"`
	DeletedAt sql.NullTime   `json:"-" db:"deleted_at"`
}

// FeedPost - пост ленты вместе с текущим именем автора
type FeedPost struct {
	PostID     string    `json:"id" db:"post_id"`
	AuthorID   string    `json:"author_id" db:"author_id"`
	AuthorName string    `json:"display_name" db:"display_name"`
	Content    string    `json:"content" db:"content"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Типы записей журнала активности (перечисление открытое, новые типы допустимы)
const (
	ActivityPostCreated = "POST_CREATED"
	ActivityPostDeleted = "POST_DELETED"
	ActivityLikedPost   = "LIKED_POST"
	ActivityFollowed    = "FOLLOWED"
	ActivityUserDeleted = "USER_DELETED"
)

// Activity - запись журнала на запись. Ссылки слабые: target_user_id и
// post_id могут указывать на уже удалённые строки
type Activity struct {
	Type         string  `db:"type"`
	ActorID      string  `db:"actor_id"`
	TargetUserID *string `db:"target_user_id"`
	PostID       *string `db:"post_id"`
	Description  string  `db:"description"`
}

// ActivityEntry - запись журнала для отображения в глобальной ленте.
// TargetName остаётся nil, если целевой пользователь уже удалён
type ActivityEntry struct {
	ActivityID   int64     `json:"id" db:"activity_id"`
	Type         string    `json:"type" db:"type"`
	Description  string    `json:"description" db:"description"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	ActorID      string    `json:"actor_id" db:"actor_id"`
	ActorName    string    `json:"actor_name" db:"actor_name"`
	TargetUserID *string   `json:"target_user_id" db:"target_user_id"`
	TargetName   *string   `json:"target_name" db:"target_name"`
	PostID       *string   `json:"post_id" db:"post_id"`
}

// AuthUser - личность из проверенного bearer-токена
type AuthUser struct {
	UserID      string
	Email       string
	Role        Role
	DisplayName string
}
