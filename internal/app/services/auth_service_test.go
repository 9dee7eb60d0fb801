package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
	"github.com/Boiketlo2/school-reporting/internal/pkg/auth"
)

func newTestAuthService(users UserStore) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	return NewAuthService(users, jwtService, zerolog.Nop())
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{name: "missing name", req: dto.RegisterRequest{Password: "pw", Email: "a@b.c"}},
		{name: "missing password", req: dto.RegisterRequest{Name: "Thabo", Email: "a@b.c"}},
		{name: "missing identifier", req: dto.RegisterRequest{Name: "Thabo", Password: "pw"}},
		{name: "both identifiers", req: dto.RegisterRequest{Name: "Thabo", Password: "pw", Email: "a@b.c", StudentNumber: "S1"}},
		{name: "unknown role", req: dto.RegisterRequest{Name: "Thabo", Password: "pw", Email: "a@b.c", Role: "headmaster"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestRegisterDefaultsToStudent(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	id, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:          "Lerato",
		StudentNumber: "901000123",
		Password:      "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	user, err := store.GetByStudentNumber(context.Background(), "901000123")
	require.NoError(t, err)
	assert.Equal(t, "student", string(user.Role))
	assert.NotEqual(t, "pw", user.Password)
}

func TestRegisterDuplicateIdentifier(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())
	ctx := context.Background()

	req := dto.RegisterRequest{Name: "Thabo", Email: "thabo@luct.ac.ls", Password: "pw", Role: "lecturer"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrIdentifierExists)
}

func TestLoginIdentifierRouting(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{
		Name: "Thabo", Email: "thabo@luct.ac.ls", Password: "pw", Role: "lecturer",
	})
	require.NoError(t, err)
	_, err = svc.Register(ctx, dto.RegisterRequest{
		Name: "Lerato", StudentNumber: "901000123", Password: "pw",
	})
	require.NoError(t, err)

	byEmail, err := svc.Login(ctx, dto.LoginRequest{Identifier: "thabo@luct.ac.ls", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "lecturer", byEmail.Role)
	assert.Equal(t, "Thabo", byEmail.Name)
	assert.NotEmpty(t, byEmail.Token)

	byNumber, err := svc.Login(ctx, dto.LoginRequest{Identifier: "901000123", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "student", byNumber.Role)
}

func TestLoginFailureTaxonomy(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{
		Name: "Thabo", Email: "thabo@luct.ac.ls", Password: "pw",
	})
	require.NoError(t, err)

	// Unknown identifier is distinguishable from a wrong password.
	_, err = svc.Login(ctx, dto.LoginRequest{Identifier: "nobody@luct.ac.ls", Password: "pw"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = svc.Login(ctx, dto.LoginRequest{Identifier: "thabo@luct.ac.ls", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, dto.LoginRequest{Identifier: "", Password: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCurrentUser(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)
	ctx := context.Background()

	id, err := svc.Register(ctx, dto.RegisterRequest{
		Name: "Thabo", Email: "thabo@luct.ac.ls", Password: "pw", Role: "prl",
	})
	require.NoError(t, err)

	me, err := svc.CurrentUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, me.ID)
	assert.Equal(t, "prl", me.Role)

	_, err = svc.CurrentUser(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
