package plantservice

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/AlexDanDobrin/Plantech/internal/errors"
	"github.com/AlexDanDobrin/Plantech/internal/models"
	"github.com/AlexDanDobrin/Plantech/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// Register creates a new user account. The plaintext password is hashed
// immediately and never stored or logged.
func (s *PlantService) Register(ctx context.Context, username, password string) error {
	if username == "" || len(username) > models.MaxUsernameLength {
		return errors.NewValidationError("username is required and must be at most 30 characters", nil)
	}
	if password == "" {
		return errors.NewValidationError("password is required", nil)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return errors.NewInternalError("failed to hash password", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Users.Create(ctx, user); err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return errors.NewConflictError("user already exists", err)
		}
		return err
	}

	nuts.L.Infof("[AuthService] Registered user %s", username)
	s.monitoring.RecordEvent("user.registered")
	return nil
}

// Login verifies a username/password pair. There is no session or token: the
// API is deliberately stateless and every protected call re-supplies
// credentials on the client side. Unknown user and wrong password are
// indistinguishable to the caller.
func (s *PlantService) Login(ctx context.Context, username, password string) error {
	user, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return errors.NewNotFoundError("invalid username or password", nil)
		}
		return err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return errors.NewInternalError("failed to verify password", err)
	}
	if !ok {
		return errors.NewNotFoundError("invalid username or password", nil)
	}

	nuts.L.Infof("[AuthService] User %s logged in", username)
	return nil
}
