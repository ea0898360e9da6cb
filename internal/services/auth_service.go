package services

import (
	"errors"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/password"
)

// ErrUserExists is returned when the requested username is already taken.
var ErrUserExists = errors.New("user already exists")

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password, so callers cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles business logic for registration and login.
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Register creates a new user with a hashed password and returns the stored
// record with its assigned id. The flow is check, hash, insert: the upfront
// existence check answers the common case, and the unique index on username
// backstops the race where two registrations pass the check concurrently.
func (s *AuthService) Register(username, lastname, plaintext string) (*models.User, error) {
	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username %q: %w", username, err)
	}

	hashed, err := password.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Lastname: lastname,
		Password: hashed,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and returns the matching user.
// Unknown username and wrong password both map to ErrInvalidCredentials.
func (s *AuthService) Login(username, plaintext string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !password.Verify(user.Password, plaintext) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
