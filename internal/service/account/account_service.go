package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/airportservice/internal/auth"
	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/Domenick1991/airportservice/internal/repository"
)

type TokenIssuer interface {
	Issue(id auth.Identity) (string, error)
}

type AccountService struct {
	users  repository.UserRepository
	tokens TokenIssuer
	hash   func(string) (string, error)
}

func NewAccountService(users repository.UserRepository, tokens TokenIssuer) *AccountService {
	return &AccountService{users: users, tokens: tokens, hash: auth.HashPassword}
}

// Register creates a regular (non-staff) user.
func (s *AccountService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	hash, err := s.hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{Email: strings.ToLower(strings.TrimSpace(email)), PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if domain.IsConflict(err) {
			return nil, domain.ValidationError{Fields: map[string]string{"email": "user with this email already exists"}, Err: err}
		}
		return nil, err
	}
	return user, nil
}

// EnsureStaff makes sure a staff account exists for the given credentials.
func (s *AccountService) EnsureStaff(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domain.ValidationError{Msg: "staff email and password are required"}
	}
	hash, err := s.hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{Email: email, PasswordHash: hash, IsStaff: true}
	if err := s.users.UpsertStaff(ctx, user); err != nil {
		return nil, fmt.Errorf("ensure staff %s: %w", email, err)
	}
	return user, nil
}

// Login checks credentials and returns a signed access token.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if domain.IsNotFound(err) {
			return "", fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
		}
		return "", err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	}

	return s.tokens.Issue(auth.Identity{UserID: user.ID, Email: user.Email, IsStaff: user.IsStaff})
}

func (s *AccountService) Me(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}
