package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"socialhub/internal/apperrors"
	"socialhub/internal/config"
	"socialhub/internal/models"
	"socialhub/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	PostService     service.PostService
	SocialService   service.SocialService
	AdminService    service.AdminService
	ActivityService service.ActivityService
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:     services.Auth,
		PostService:     services.Post,
		SocialService:   services.Social,
		AdminService:    services.Admin,
		ActivityService: services.Activity,
		Cfg:             config,
		Validate:        validator.New(),
	}
}

// authUserFromContext - личность запроса, положенная в контекст auth-middleware
func authUserFromContext(r *http.Request) (models.AuthUser, bool) {
	userID, ok1 := r.Context().Value("userID").(string)
	email, ok2 := r.Context().Value("email").(string)
	role, ok3 := r.Context().Value("role").(models.Role)
	displayName, ok4 := r.Context().Value("displayName").(string)

	if !ok1 || !ok2 || !ok3 || !ok4 {
		return models.AuthUser{}, false
	}

	return models.AuthUser{
		UserID:      userID,
		Email:       email,
		Role:        role,
		DisplayName: displayName,
	}, true
}

// pathUUID - проверка параметра пути до обращения к БД
func pathUUID(r *http.Request, name, message string) (string, error) {
	id := mux.Vars(r)[name]
	if _, err := uuid.Parse(id); err != nil {
		return "", apperrors.New(apperrors.CodeValidation, message)
	}
	return id, nil
}
