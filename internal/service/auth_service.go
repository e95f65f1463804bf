package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogql/internal/apperr"
	"blogql/internal/config"
	"blogql/internal/models"
	"blogql/internal/repository"
	"blogql/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// Identity is the authenticated principal carried by a validated token.
type Identity struct {
	UserID string
	Email  string
}

type ctxKey string

const identityCtxKey ctxKey = "identity"

// WithIdentity attaches id to ctx. The middleware calls this only for
// requests carrying a valid token.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, id)
}

// IdentityFromContext reports the identity of the request, if any. Operations
// that require auth check the second return themselves; the middleware never
// rejects a request.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityCtxKey).(*Identity)
	return id, ok && id != nil
}

type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, string, error)
	IssueToken(userID, email string) (string, error)
	DecodeToken(tokenString string) (*Identity, bool)
}

type authService struct {
	userRepo repository.UserRepository
	validate *validation.Validator
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, validate *validation.Validator, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		validate: validate,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	if err := s.validate.UserInput(email, password); err != nil {
		return nil, err
	}

	existingUser, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, apperr.Conflict("User exists already!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashedPassword),
	}

	err = s.userRepo.Create(ctx, user)
	if err != nil {
		// two registrations can race past the GetByEmail check, the unique
		// constraint still catches the loser
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperr.Conflict("User exists already!")
		}
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", apperr.Unauthenticated("User not found.")
		}
		return "", "", err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return "", "", apperr.Unauthenticated("Password is incorrect.")
	}

	token, err := s.IssueToken(user.UserID, user.Email)
	if err != nil {
		return "", "", err
	}

	return token, user.UserID, nil
}

func (s *authService) IssueToken(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"exp":    time.Now().Add(s.cfg.TokenDuration).Unix(),
		"iat":    time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// DecodeToken checks signature and expiry and reports validity. It never
// raises an error itself, callers decide whether a valid identity is required.
func (s *authService) DecodeToken(tokenString string) (*Identity, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	userID, ok1 := claims["userId"].(string)
	email, ok2 := claims["email"].(string)
	if !ok1 || !ok2 {
		return nil, false
	}

	return &Identity{UserID: userID, Email: email}, true
}
