package services

import (
	"errors"

	"github.com/heroforce/heroforce/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrSessionUserNotFound    = errors.New("session user not found")
)

type AuthUserRepository interface {
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (models.User, error)
	FindByID(userID string) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users  AuthUserRepository
	tokens *TokenService
}

func NewAuthService(users AuthUserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type AuthResult struct {
	AccessToken string
	User        models.User
}

func (service *AuthService) Register(input RegisterInput) (AuthResult, error) {
	exists, err := service.users.ExistsByEmail(input.Email)
	if err != nil {
		return AuthResult{}, err
	}
	if exists {
		return AuthResult{}, ErrEmailAlreadyRegistered
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		Character:    input.Character,
		PasswordHash: string(passwordHash),
		Role:         input.Role,
	}
	if err := service.users.Create(&user); err != nil {
		// The unique index is the authority; a concurrent insert between
		// the existence check and the create lands here.
		return AuthResult{}, ErrEmailAlreadyRegistered
	}

	token, err := service.tokens.Issue(&user)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{AccessToken: token, User: user}, nil
}

// Login fails with the same error for an unknown email and a wrong
// password, so responses cannot be used to enumerate accounts.
func (service *AuthService) Login(email string, password string) (AuthResult, error) {
	user, err := service.users.FindByEmail(email)
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := service.tokens.Issue(&user)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{AccessToken: token, User: user}, nil
}

// ValidateSession resolves a token subject back to a stored user,
// rejecting tokens whose subject was deleted after issuance.
func (service *AuthService) ValidateSession(userID string) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, ErrSessionUserNotFound
	}
	return user, nil
}
