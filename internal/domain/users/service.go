// Package users owns signup, login and profile management. Token issuance
// lives here rather than in the handlers so there is exactly one code path
// producing credentials, with user storage as a pure data collaborator.
package users

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/eventdesk/server/internal/auth"
	"github.com/eventdesk/server/internal/sanitize"
)

type Service struct {
	repo Repository
	jwt  *auth.JWTManager
}

func NewService(repo Repository, jwt *auth.JWTManager) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// Signup creates an account and issues a token for it. A duplicate email
// fails with ErrEmailTaken before any row is written.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, User{
		FullName:        sanitize.Text(input.FullName),
		Email:           input.Email,
		PasswordHash:    hash,
		ProfileImageURL: input.ProfileImageURL,
	})
	if err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both return ErrInvalidCredentials so the two cases cannot be told
// apart from the response.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(*user)
}

// AuthenticatedUser resolves the profile behind a verified token. Tokens are
// not revocable, so this is where a deleted account surfaces as ErrNotFound.
func (s *Service) AuthenticatedUser(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial profile change. A new email is re-checked for
// uniqueness against other accounts; a new password is re-hashed.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*User, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user := *existing
	if input.FullName != nil {
		user.FullName = sanitize.Text(*input.FullName)
	}
	if input.Email != nil && *input.Email != existing.Email {
		taken, err := s.repo.GetByEmail(ctx, *input.Email)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken != nil && taken.ID != id {
			return nil, ErrEmailTaken
		}
		user.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if input.ProfileImageURL != nil {
		if *input.ProfileImageURL == "" {
			user.ProfileImageURL = nil
		} else {
			user.ProfileImageURL = input.ProfileImageURL
		}
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Service) issueToken(user User) (*AuthResult, error) {
	token, err := s.jwt.Generate(strconv.FormatInt(user.ID, 10), user.Email, user.FullName)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}
