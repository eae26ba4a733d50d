package service

import (
	"context"
	"errors"
	"fmt"
	"fundflow-backend/internal/model"
	"fundflow-backend/internal/repository"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var (
	// ErrUnauthorized covers absent, malformed, expired and badly signed tokens.
	ErrUnauthorized = errors.New("unauthorized access")
	// ErrForbidden means the token was fine but the identity is not an admin.
	ErrForbidden = errors.New("forbidden access")
)

type AuthService interface {
	IssueToken(identity map[string]any) (string, error)
	VerifyToken(token string) (jwt.MapClaims, error)
	RequireAdmin(ctx context.Context, email string) error
}

type authServiceImpl struct {
	secret   []byte
	tokenTTL time.Duration
	userRepo repository.UserRepository
}

func NewAuthService(secret string, tokenTTL time.Duration, userRepo repository.UserRepository) AuthService {
	return &authServiceImpl{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		userRepo: userRepo,
	}
}

// IssueToken signs whatever identity payload the client sent, as long as it
// carries an email. It deliberately does not check the email against the
// users table; possession of the token is all later checks rely on.
func (s *authServiceImpl) IssueToken(identity map[string]any) (string, error) {
	email, _ := identity["email"].(string)
	if email == "" {
		return "", fmt.Errorf("identity payload must include an email")
	}

	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	claims["exp"] = jwt.NewNumericDate(time.Now().Add(s.tokenTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (s *authServiceImpl) VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnauthorized
	}

	return claims, nil
}

// RequireAdmin reads the users table on every call. It must only ever see an
// email that came out of a verified token.
func (s *authServiceImpl) RequireAdmin(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrForbidden
		}
		return fmt.Errorf("find user by email: %w", err)
	}

	if user.Role != model.RoleAdmin {
		return ErrForbidden
	}

	return nil
}
