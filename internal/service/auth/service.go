// Package auth checks credentials and issues the bearer tokens the middleware
// turns back into request actors.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jdcastellanos/granja/internal/domain/identity"
	"github.com/jdcastellanos/granja/internal/domain/models"
	"github.com/jdcastellanos/granja/internal/repository/mongodb"
)

// ErrInvalidCredentials indicates the email/password pair did not match an
// active account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken indicates the bearer token could not be verified.
var ErrInvalidToken = errors.New("invalid token")

// Service implements login and token verification.
type Service struct {
	users  mongodb.UserStore
	secret []byte
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires an auth service instance.
func NewService(users mongodb.UserStore, secret string, ttl time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// LoginResult carries the issued token and the authenticated account.
type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"usuario"`
}

type sessionClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Login verifies the credentials against the stored bcrypt hash and issues a
// signed session token. Unknown emails, wrong passwords and deactivated
// accounts all surface as ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}

	if !user.Active {
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	now := s.now()
	claims := sessionClaims{
		Name: user.Name,
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID.Hex()), zap.String("role", string(user.Role)))
	return LoginResult{Token: token, User: user}, nil
}

// ParseToken verifies a bearer token and reconstructs the request actor.
func (s *Service) ParseToken(tokenString string) (identity.Actor, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return identity.Actor{}, ErrInvalidToken
	}

	userID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return identity.Actor{}, ErrInvalidToken
	}

	role := models.Role(claims.Role)
	if !models.ValidRole(role) {
		return identity.Actor{}, ErrInvalidToken
	}

	return identity.Actor{UserID: userID, Name: claims.Name, Role: role}, nil
}
