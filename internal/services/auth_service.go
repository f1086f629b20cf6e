package services

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fitledger/fitledger/internal/models"
)

const minPasswordLength = 8

type AuthUserStore interface {
	FindByID(userID uint) (models.User, bool, error)
	FindByUsername(username string) (models.User, bool, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	Create(user *models.User) error
	UpdateLastLogin(userID uint, at time.Time) error
	UpdatePassword(userID uint, passwordHash string) error
}

type AuthService struct {
	users AuthUserStore
	clock func() time.Time
}

type RegistrationInput struct {
	Username string
	Email    string
	Nickname string
	Password string
}

func NewAuthService(users AuthUserStore) *AuthService {
	return &AuthService{
		users: users,
		clock: func() time.Time { return time.Now().UTC() },
	}
}

func validateRegistration(input RegistrationInput) error {
	if strings.TrimSpace(input.Username) == "" {
		return fmt.Errorf("%w: username is required", models.ErrValidation)
	}
	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", models.ErrValidation)
	}
	if len(input.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", models.ErrValidation, minPasswordLength)
	}
	return nil
}

func (service *AuthService) Register(input RegistrationInput) (models.User, error) {
	if err := validateRegistration(input); err != nil {
		return models.User{}, err
	}

	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	nickname := strings.TrimSpace(input.Nickname)
	if nickname == "" {
		nickname = username
	}

	taken, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return models.User{}, fmt.Errorf("%w: username %q is taken", models.ErrConflict, username)
	}
	taken, err = service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return models.User{}, fmt.Errorf("%w: email %q is already registered", models.ErrConflict, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		Nickname:     nickname,
		PasswordHash: string(hash),
		CreatedAt:    service.clock(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("persist user: %w", err)
	}
	return user, nil
}

// Authenticate checks credentials and records the login time. Wrong username
// and wrong password are indistinguishable to the caller.
func (service *AuthService) Authenticate(username string, password string) (models.User, error) {
	user, found, err := service.users.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if !found {
		return models.User{}, fmt.Errorf("%w: invalid credentials", models.ErrNotAuthorized)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, fmt.Errorf("%w: invalid credentials", models.ErrNotAuthorized)
	}

	now := service.clock()
	if err := service.users.UpdateLastLogin(user.ID, now); err != nil {
		return models.User{}, fmt.Errorf("record login: %w", err)
	}
	user.LastLogin = &now
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if !found {
		return models.User{}, fmt.Errorf("%w: user %d", models.ErrNotFound, userID)
	}
	return user, nil
}

// ResetPassword sets a new password for the named user. Used by the admin
// CLI, not exposed over HTTP.
func (service *AuthService) ResetPassword(username string, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", models.ErrValidation, minPasswordLength)
	}
	user, found, err := service.users.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: user %q", models.ErrNotFound, username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return service.users.UpdatePassword(user.ID, string(hash))
}
