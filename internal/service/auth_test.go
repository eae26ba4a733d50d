package service

import (
	"context"
	"fundflow-backend/internal/model"
	"fundflow-backend/internal/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAuthService_TokenRoundTrip(t *testing.T) {
	auth := NewAuthService("test-secret", time.Hour, nil)

	token, err := auth.IssueToken(map[string]any{"email": "c@x.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, "c@x.com", claims["email"])
}

func TestAuthService_IssueToken_RequiresEmail(t *testing.T) {
	auth := NewAuthService("test-secret", time.Hour, nil)

	_, err := auth.IssueToken(map[string]any{"name": "no email here"})
	require.Error(t, err)
}

func TestAuthService_VerifyToken_Failures(t *testing.T) {
	auth := NewAuthService("test-secret", time.Hour, nil)

	expiredAuth := NewAuthService("test-secret", -time.Minute, nil)
	expired, err := expiredAuth.IssueToken(map[string]any{"email": "c@x.com"})
	require.NoError(t, err)

	otherSecret := NewAuthService("other-secret", time.Hour, nil)
	foreign, err := otherSecret.IssueToken(map[string]any{"email": "c@x.com"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "expired", token: expired},
		{name: "wrong signature", token: foreign},
		{name: "empty", token: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := auth.VerifyToken(test.token)
			require.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}

func TestAuthService_RequireAdmin(t *testing.T) {
	tests := []struct {
		name    string
		seed    *model.User
		email   string
		wantErr error
	}{
		{
			name:  "admin passes",
			seed:  &model.User{Email: "admin@x.com", Role: model.RoleAdmin},
			email: "admin@x.com",
		},
		{
			name:    "member is forbidden",
			seed:    &model.User{Email: "member@x.com", Role: model.RoleMember},
			email:   "member@x.com",
			wantErr: ErrForbidden,
		},
		{
			name:    "unknown email is forbidden",
			email:   "ghost@x.com",
			wantErr: ErrForbidden,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			db := newTestDB(t)
			userRepo := repository.NewUserRepository(db)
			if test.seed != nil {
				require.NoError(t, userRepo.Create(context.Background(), test.seed))
			}

			auth := NewAuthService("test-secret", time.Hour, userRepo)

			err := auth.RequireAdmin(context.Background(), test.email)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
