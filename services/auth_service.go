package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/repository"
	"github.com/yeremiapane/restaurant-site/utils"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
}

// Session is an authenticated identity resolved from a token.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Credentials struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

var credentialMessages = map[string]string{
	"Email":    MsgInvalidEmail,
	"Password": MsgPasswordTooShort,
}

func (c Credentials) Validate() error {
	c.Email = strings.TrimSpace(c.Email)
	return checkStruct(c, credentialMessages)
}

type AuthService struct {
	users   UserStore
	tokens  *utils.TokenManager
	revoked utils.RevocationStore

	// HashCost is the bcrypt cost used on sign-up.
	HashCost int
}

func NewAuthService(users UserStore, tokens *utils.TokenManager, revoked utils.RevocationStore) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		revoked:  revoked,
		HashCost: bcrypt.DefaultCost,
	}
}

func (s *AuthService) SignUp(ctx context.Context, creds Credentials) (*models.User, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), s.HashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, creds.Email, string(hashed))
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.WithField("user_id", user.ID).Info("user signed up")
	return user, nil
}

// SignIn checks the credentials and issues a new session token.
func (s *AuthService) SignIn(ctx context.Context, creds Credentials) (string, *Session, error) {
	if err := creds.Validate(); err != nil {
		return "", nil, err
	}

	user, err := s.users.FindByEmail(ctx, creds.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, claims, err := s.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	utils.InfoLogger.WithField("user_id", user.ID).Info("user signed in")
	return token, sessionFromClaims(claims), nil
}

// SignOut revokes the token. Signing out without a valid session is a no-op.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	sess, err := s.Session(ctx, token)
	if errors.Is(err, ErrNoSession) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.revoked.Revoke(ctx, sess.TokenID, sess.ExpiresAt)
}

// Session resolves the current session. Missing, malformed, expired and
// revoked tokens all give ErrNoSession.
func (s *AuthService) Session(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, ErrNoSession
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrNoSession
	}
	return sessionFromClaims(claims), nil
}

func sessionFromClaims(c *utils.CustomClaims) *Session {
	sess := &Session{UserID: c.UserID, Email: c.Email, TokenID: c.ID}
	if c.ExpiresAt != nil {
		sess.ExpiresAt = c.ExpiresAt.Time
	}
	return sess
}
