package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boiketlo2/school-reporting/internal/app/models"
	"github.com/Boiketlo2/school-reporting/internal/app/services"
	"github.com/Boiketlo2/school-reporting/internal/middleware"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
	"github.com/Boiketlo2/school-reporting/internal/pkg/auth"
	"github.com/rs/zerolog"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memoryUserStore is a minimal in-memory services.UserStore.
type memoryUserStore struct {
	users  []*models.User
	nextID int64
}

func (s *memoryUserStore) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, u := range s.users {
		if user.Email != nil && u.Email != nil && *u.Email == *user.Email {
			return 0, apperrors.ErrIdentifierExists
		}
	}
	s.nextID++
	stored := *user
	stored.ID = s.nextID
	s.users = append(s.users, &stored)
	return stored.ID, nil
}

func (s *memoryUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *memoryUserStore) GetByStudentNumber(_ context.Context, number string) (*models.User, error) {
	for _, u := range s.users {
		if u.StudentNumber != nil && *u.StudentNumber == number {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *memoryUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func newAuthTestRouter() (*gin.Engine, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	authService := services.NewAuthService(&memoryUserStore{}, jwtService, zerolog.Nop())
	authController := NewAuthController(authService)
	authMW := middleware.NewAuthMiddleware(jwtService)

	router := gin.New()
	router.POST("/api/auth/register", authController.Register)
	router.POST("/api/auth/login", authController.Login)
	router.GET("/api/auth/me", authMW.JWTAuth(), authController.Me)
	return router, jwtService
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	router, _ := newAuthTestRouter()

	rec := postJSON(router, "/api/auth/register", gin.H{
		"name": "Thabo", "email": "thabo@luct.ac.ls", "password": "pw", "role": "lecturer",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User registered successfully", body["message"])
	assert.Equal(t, float64(1), body["userId"])
}

func TestRegisterEndpointRejectsBadPayload(t *testing.T) {
	router, _ := newAuthTestRouter()

	// Missing required binding fields.
	rec := postJSON(router, "/api/auth/register", gin.H{"email": "a@b.c"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")

	// Identifier missing entirely.
	rec = postJSON(router, "/api/auth/register", gin.H{"name": "Thabo", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	router, _ := newAuthTestRouter()
	payload := gin.H{"name": "Thabo", "email": "thabo@luct.ac.ls", "password": "pw"}

	rec := postJSON(router, "/api/auth/register", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(router, "/api/auth/register", payload)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := newAuthTestRouter()

	rec := postJSON(router, "/api/auth/register", gin.H{
		"name": "Thabo", "email": "thabo@luct.ac.ls", "password": "pw", "role": "pl",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(router, "/api/auth/login", gin.H{"identifier": "thabo@luct.ac.ls", "password": "pw"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "pl", body["role"])
	assert.Equal(t, "Thabo", body["name"])
	assert.NotEmpty(t, body["token"])
}

func TestLoginEndpointFailures(t *testing.T) {
	router, _ := newAuthTestRouter()

	rec := postJSON(router, "/api/auth/register", gin.H{
		"name": "Thabo", "email": "thabo@luct.ac.ls", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(router, "/api/auth/login", gin.H{"identifier": "ghost@luct.ac.ls", "password": "pw"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = postJSON(router, "/api/auth/login", gin.H{"identifier": "thabo@luct.ac.ls", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postJSON(router, "/api/auth/login", gin.H{"identifier": "thabo@luct.ac.ls"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeEndpointRequiresToken(t *testing.T) {
	router, jwtService := newAuthTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A valid token for a registered user passes the middleware.
	registerRec := postJSON(router, "/api/auth/register", gin.H{
		"name": "Thabo", "email": "thabo@luct.ac.ls", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, registerRec.Code)

	token, err := jwtService.GenerateToken(1, "student")
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Thabo", body["name"])
}
