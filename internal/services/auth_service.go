package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"postboard/dto"
	"postboard/internal/models"
	"postboard/internal/repository"
	"postboard/internal/validation"
)

// Claims is the token payload. The user id travels in both uid and sub.
type Claims struct {
	UID string `json:"uid,omitempty"`
	jwt.RegisteredClaims
}

type AuthService struct {
	base
	secret []byte
	ttl    time.Duration
}

func NewAuthService(d Deps, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &AuthService{base: newBase(d, "auth"), secret: []byte(secret), ttl: ttl}
}

func (s *AuthService) Register(ctx context.Context, in dto.RegisterReq) (*dto.UserResponse, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.store.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("User registered", "user", u.ID)
	return &dto.UserResponse{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}, nil
}

func (s *AuthService) Login(ctx context.Context, in dto.LoginReq) (*dto.TokenResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	u, err := s.store.Users.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.IssueToken(u.ID)
}

// IssueToken signs an HS256 token for userID.
func (s *AuthService) IssueToken(userID string) (*dto.TokenResponse, error) {
	now := s.now()
	exp := now.Add(s.ttl)
	claims := Claims{
		UID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &dto.TokenResponse{AccessToken: signed, TokenType: "Bearer", ExpiresAt: exp, User: userID}, nil
}
