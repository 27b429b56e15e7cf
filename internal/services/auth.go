package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/recipehub/recipehub/internal/logger"
	"github.com/recipehub/recipehub/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserReader defines read-only operations for identities.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for identities.
type UserWriter interface {
	Save(ctx context.Context, email, passwordHash string) (uuid.UUID, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// EventPublisher publishes authentication-state events.
type EventPublisher interface {
	Publish(e Event)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
	events EventPublisher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, events EventPublisher) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		events: events,
	}
}

// Register creates a new identity. The matching blank profile row is
// created by the store itself.
func (svc *AuthService) Register(ctx context.Context, email, password string) (uuid.UUID, error) {
	if email == "" || password == "" {
		return uuid.Nil, NewValidationError("Email and password are required")
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "email", email)
		return uuid.Nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	userID, err := svc.writer.Save(ctx, email, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	return userID, nil
}

// Login authenticates an identity and returns its key and a JWT token.
// Credential and network failures leave no state behind.
func (svc *AuthService) Login(ctx context.Context, email, password string) (uuid.UUID, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return uuid.Nil, "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return uuid.Nil, "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return uuid.Nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return uuid.Nil, "", err
	}

	if svc.events != nil {
		svc.events.Publish(Event{Kind: EventSignedIn, UserID: user.UserID})
	}

	return user.UserID, token, nil
}
