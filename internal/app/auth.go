package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

// TokenIssuer is implemented by the JWT adapter.
type TokenIssuer interface {
	Issue(u domain.User) (token string, expiresAt time.Time, err error)
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      domain.User `json:"-"`
}

type AuthService struct {
	users  domain.UserRepository
	tokens TokenIssuer
}

func NewAuthService(users domain.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies credentials and issues a session token. Unknown username
// and wrong password both come back as ErrInvalid so the response does not
// reveal which part failed.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (Session, error) {
	if err := checkInput(in); err != nil {
		return Session{}, err
	}
	u, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return Session{}, fmt.Errorf("%w: bad credentials", domain.ErrInvalid)
	}
	if !u.Active {
		return Session{}, fmt.Errorf("%w: account disabled", domain.ErrInvalid)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return Session{}, fmt.Errorf("%w: bad credentials", domain.ErrInvalid)
	}
	token, exp, err := s.tokens.Issue(u)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: exp, User: u}, nil
}

// Me loads the account behind an authenticated request.
func (s *AuthService) Me(ctx context.Context, userID int64) (domain.User, error) {
	return s.users.Get(ctx, userID)
}
