package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialhub/internal/config"
	"socialhub/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecretKey: "test-secret"}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(role string) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id":      "11111111-1111-1111-1111-111111111111",
		"email":        "alice@example.com",
		"role":         role,
		"display_name": "Alice",
		"exp":          time.Now().Add(time.Hour).Unix(),
		"iat":          time.Now().Unix(),
	}
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testConfig()

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Публичные пути проходят без токена", func(t *testing.T) {
		for _, path := range []string{"/", "/health", "/auth/signup", "/auth/login"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rr := httptest.NewRecorder()

			AuthMiddleware(cfg)(okHandler).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code, path)
		}
	})

	t.Run("Без заголовка 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		rr := httptest.NewRecorder()

		AuthMiddleware(cfg)(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Мусор вместо токена 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		rr := httptest.NewRecorder()

		AuthMiddleware(cfg)(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Просроченный токен 401", func(t *testing.T) {
		claims := validClaims("USER")
		claims["exp"] = time.Now().Add(-time.Hour).Unix()
		token := signToken(t, cfg.JWTSecretKey, claims)

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		AuthMiddleware(cfg)(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Токен с чужим секретом 401", func(t *testing.T) {
		token := signToken(t, "other-secret", validClaims("USER"))

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		AuthMiddleware(cfg)(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Неизвестная роль в токене 401", func(t *testing.T) {
		token := signToken(t, cfg.JWTSecretKey, validClaims("SUPERUSER"))

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		AuthMiddleware(cfg)(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Валидный токен наполняет контекст", func(t *testing.T) {
		token := signToken(t, cfg.JWTSecretKey, validClaims("ADMIN"))

		var gotUserID string
		var gotRole models.Role
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserID, _ = r.Context().Value("userID").(string)
			gotRole, _ = r.Context().Value("role").(models.Role)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		AuthMiddleware(cfg)(inner).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "11111111-1111-1111-1111-111111111111", gotUserID)
		assert.Equal(t, models.RoleAdmin, gotRole)
	})
}

func TestRequireRole(t *testing.T) {
	cfg := testConfig()

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serve := func(t *testing.T, minRole models.Role, tokenRole string) int {
		token := signToken(t, cfg.JWTSecretKey, validClaims(tokenRole))
		req := httptest.NewRequest(http.MethodDelete, "/admin/users/x", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		// порядок как в роутере: сначала аутентификация, затем проверка роли
		AuthMiddleware(cfg)(RequireRole(minRole)(okHandler)).ServeHTTP(rr, req)
		return rr.Code
	}

	t.Run("USER не проходит модераторскую границу", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, serve(t, models.RoleAdmin, "USER"))
	})

	t.Run("ADMIN проходит модераторскую границу", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(t, models.RoleAdmin, "ADMIN"))
	})

	t.Run("ADMIN не управляет составом администраторов", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, serve(t, models.RoleOwner, "ADMIN"))
	})

	t.Run("OWNER проходит обе границы", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(t, models.RoleOwner, "OWNER"))
	})

	t.Run("Без контекста роли 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/admin/users/x", nil)
		rr := httptest.NewRecorder()

		RequireRole(models.RoleAdmin)(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestCORSMiddleware(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("OPTIONS обрывается на middleware", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/posts", nil)
		rr := httptest.NewRecorder()

		CORSMiddleware(inner).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Остальные методы проходят дальше", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		rr := httptest.NewRecorder()

		CORSMiddleware(inner).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
