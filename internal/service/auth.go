package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"ledgerkeep/internal/domain"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

const tokenLifetime = 24 * time.Hour

// AuthService registers users and issues HMAC-signed JWTs.
type AuthService struct {
	users  UserStore
	secret []byte
	log    zerolog.Logger
}

func NewAuthService(users UserStore, secret string, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), log: log}
}

// Register creates a user with a bcrypt-hashed password. The plaintext never
// leaves this function.
func (s *AuthService) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.Username = strings.ToLower(user.Username)
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if len(user.Password) < 8 {
		return nil, &domain.ValidationError{Field: "password", Rule: "must be at least 8 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("password hashing failed: %w", err)
	}
	user.Password = ""
	user.PasswordHash = string(hash)
	user.ActiveStatus = true

	inserted, err := s.users.InsertUser(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("username", inserted.Username).Msg("user registered")
	return inserted, nil
}

// Login verifies the password and returns a signed token. Absent users and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FetchUserByUsername(ctx, strings.ToLower(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !user.ActiveStatus {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"username": user.Username,
		"user_id":  user.UserID,
		"exp":      time.Now().Add(tokenLifetime).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token signing failed: %w", err)
	}
	return signed, nil
}

// ParseToken validates a token string and returns its claims.
func (s *AuthService) ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
