package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"socialhub/internal/apperrors"
	"socialhub/internal/config"
	"socialhub/internal/models"
	"socialhub/internal/repository"
)

type SignupRequest struct {
	Email       string
	Password    string
	DisplayName string
}

type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Me(ctx context.Context, userID string) (*models.User, error)
	GenerateToken(user *models.User) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Signup(ctx context.Context, req SignupRequest) (*models.User, string, error) {
	existingUser, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err == nil && existingUser != nil {
		return nil, "", apperrors.New(apperrors.CodeConflict, "Email уже зарегистрирован")
	}

	user := &models.User{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        models.RoleUser,
	}

	if err := s.userRepo.CreateUser(ctx, user, req.Password); err != nil {
		return nil, "", err
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		// неизвестный email и неверный пароль дают одинаковый ответ,
		// чтобы по нему нельзя было проверить наличие аккаунта
		if apperrors.CodeOf(err) == apperrors.CodeNotFound {
			return nil, "", apperrors.New(apperrors.CodeUnauthenticated, "Неверный email или пароль")
		}
		return nil, "", err
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *authService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":      user.UserID,
		"email":        user.Email,
		"role":         user.Role.String(),
		"display_name": user.DisplayName,
		"exp":          time.Now().Add(s.cfg.TokenDuration).Unix(),
		"iat":          time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}
