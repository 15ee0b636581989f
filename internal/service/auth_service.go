package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/config"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/model"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the login email or password is wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Claims extends JWT standard claims with the authenticated user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// AuthService implements the platform's simulated authentication: one demo
// account seeded from config, bcrypt-checked logins and HS256 JWTs. There is
// no user database; the profile lives in memory for the process lifetime.
type AuthService struct {
	cfg          *config.Config
	stats        *repository.UserStatsStore
	demoUser     model.User
	passwordHash string
}

// NewAuthService seeds the demo account and returns the service.
func NewAuthService(cfg *config.Config, stats *repository.UserStatsStore) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DemoPassword), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	name := cfg.DemoEmail
	if at := strings.Index(name, "@"); at > 0 {
		name = name[:at]
	}

	return &AuthService{
		cfg:   cfg,
		stats: stats,
		demoUser: model.User{
			ID:        uuid.New(),
			Email:     cfg.DemoEmail,
			Name:      name,
			Tier:      "free",
			AvatarURL: "https://api.dicebear.com/7.x/initials/svg?seed=" + cfg.DemoEmail,
			JoinDate:  time.Now(),
		},
		passwordHash: string(hash),
	}, nil
}

// Login checks the demo credentials and issues a signed token.
func (s *AuthService) Login(email, password string) (string, model.User, error) {
	if !strings.EqualFold(email, s.demoUser.Email) {
		return "", model.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", model.User{}, ErrInvalidCredentials
	}

	token, err := s.generateToken(s.demoUser)
	if err != nil {
		return "", model.User{}, err
	}
	return token, s.Profile(s.demoUser.ID), nil
}

// Profile returns the user profile with current stats attached.
func (s *AuthService) Profile(userID uuid.UUID) model.User {
	user := s.demoUser
	user.Stats = s.stats.Get(userID)
	return user
}

func (s *AuthService) generateToken(user model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		UserID: user.ID,
		Email:  user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
