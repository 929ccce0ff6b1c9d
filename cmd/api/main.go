package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"socialhub/cmd/app"
	"socialhub/internal/config"
	handlers "socialhub/internal/handler"
	"socialhub/internal/logger"
	"socialhub/internal/middleware"
	"socialhub/internal/models"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	logger.InitLogger(cfg.LogLevel)
	defer logger.Logger.Sync()

	if cfg.JWTSecretKey == "" {
		logger.Logger.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	r := newRouter(handler)

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Logger.Info("Сервер запущен", zap.String("addr", addr))

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		logger.Logger.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}

func newRouter(handler *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	r.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/me", handler.Me).Methods(http.MethodGet)

	r.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/posts", handler.ListPosts).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)
	r.HandleFunc("/posts/{id}/like", handler.LikePost).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}/like", handler.UnlikePost).Methods(http.MethodDelete)

	r.HandleFunc("/social/follow/{id}", handler.Follow).Methods(http.MethodPost)
	r.HandleFunc("/social/follow/{id}", handler.Unfollow).Methods(http.MethodDelete)
	r.HandleFunc("/social/block/{id}", handler.Block).Methods(http.MethodPost)
	r.HandleFunc("/social/block/{id}", handler.Unblock).Methods(http.MethodDelete)

	// promote/demote - только OWNER, остальные операции - ADMIN и выше
	ownerOnly := middleware.RequireRole(models.RoleOwner)
	moderators := middleware.RequireRole(models.RoleAdmin)

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Handle("/admins/{id}", ownerOnly(http.HandlerFunc(handler.PromoteUser))).Methods(http.MethodPost)
	admin.Handle("/admins/{id}", ownerOnly(http.HandlerFunc(handler.DemoteUser))).Methods(http.MethodDelete)
	admin.Handle("/users/{id}", moderators(http.HandlerFunc(handler.AdminDeleteUser))).Methods(http.MethodDelete)
	admin.Handle("/posts/{id}", moderators(http.HandlerFunc(handler.AdminDeletePost))).Methods(http.MethodDelete)
	admin.Handle("/likes/{userId}/{postId}", moderators(http.HandlerFunc(handler.AdminDeleteLike))).Methods(http.MethodDelete)

	r.HandleFunc("/activities", handler.ListActivities).Methods(http.MethodGet)

	return r
}
