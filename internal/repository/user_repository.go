package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"socialhub/internal/apperrors"
	"socialhub/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	// create user id
	user.UserID = uuid.New().String()
	user.PasswordHash = string(hashedPassword)
	user.CreatedAt = time.Now()
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	query := `
		INSERT INTO users (user_id, email, password_hash, display_name, role, created_at)
		VALUES (:user_id, :email, :password_hash, :display_name, :role, :created_at)
	`

	_, err = r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return apperrors.Wrap(apperrors.CodeConflict, "Email уже зарегистрирован", err)
		}
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.CodeNotFound, "Пользователь не найден")
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.CodeNotFound, "Пользователь не найден")
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", err)
	}

	return &user, nil
}

func (r *userRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// checking that the password hash is the same
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, apperrors.New(apperrors.CodeUnauthenticated, "Неверный email или пароль")
	}

	return user, nil
}

// PromoteToAdmin - безусловное назначение роли ADMIN (повторное назначение - no-op)
func (r *userRepository) PromoteToAdmin(ctx context.Context, userID string) error {
	query := `UPDATE users SET role = 'ADMIN' WHERE user_id = $1`

	_, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("ошибка при назначении администратора: %w", err)
	}

	return nil
}

// DemoteAdmin - снимает роль только с ADMIN; OWNER этим путём не понижается,
// отсутствие изменений не считается ошибкой
func (r *userRepository) DemoteAdmin(ctx context.Context, userID string) error {
	query := `UPDATE users SET role = 'USER' WHERE user_id = $1 AND role = 'ADMIN'`

	_, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("ошибка при снятии администратора: %w", err)
	}

	return nil
}

func (r *userRepository) DeleteUser(ctx context.Context, q sqlx.ExtContext, userID string) error {
	// посты, лайки, подписки и блокировки уходят каскадом по внешним ключам
	query := `DELETE FROM users WHERE user_id = $1`

	result, err := q.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении пользователя: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.New(apperrors.CodeNotFound, "Пользователь не найден")
	}

	return nil
}
