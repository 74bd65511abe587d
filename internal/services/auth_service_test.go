package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/heroforce/heroforce/internal/models"
	"gorm.io/gorm"
)

type stubUserRepository struct {
	usersByEmail map[string]models.User
	usersByID    map[string]models.User
	createErr    error
	created      []models.User
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{
		usersByEmail: make(map[string]models.User),
		usersByID:    make(map[string]models.User),
	}
}

func (stub *stubUserRepository) add(user models.User) {
	stub.usersByEmail[user.Email] = user
	stub.usersByID[user.ID] = user
}

func (stub *stubUserRepository) ExistsByEmail(email string) (bool, error) {
	_, exists := stub.usersByEmail[email]
	return exists, nil
}

func (stub *stubUserRepository) FindByEmail(email string) (models.User, error) {
	user, exists := stub.usersByEmail[email]
	if !exists {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (stub *stubUserRepository) FindByID(userID string) (models.User, error) {
	user, exists := stub.usersByID[userID]
	if !exists {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (stub *stubUserRepository) Create(user *models.User) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	if user.ID == "" {
		user.ID = "generated-id"
	}
	stub.created = append(stub.created, *user)
	stub.add(*user)
	return nil
}

func newAuthServiceForTest(users AuthUserRepository) (*AuthService, *TokenService) {
	tokens := NewTokenService("test-secret-key", time.Hour)
	return NewAuthService(users, tokens), tokens
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	users := newStubUserRepository()
	service, tokens := newAuthServiceForTest(users)

	result, err := service.Register(RegisterInput{
		Name:      "Bruce Wayne",
		Email:     "bruce@example.com",
		Character: "Batman",
		Password:  "senha123",
		Role:      models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if len(users.created) != 1 {
		t.Fatalf("expected one created user, got %d", len(users.created))
	}
	stored := users.created[0]
	if stored.PasswordHash == "senha123" || stored.PasswordHash == "" {
		t.Fatal("expected password to be stored as a hash")
	}
	if !strings.HasPrefix(stored.PasswordHash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", stored.PasswordHash)
	}

	claims, err := tokens.Verify(result.AccessToken)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.UserID != stored.ID || claims.Role != models.RoleAdmin {
		t.Fatalf("unexpected claims %+v for user %q", claims, stored.ID)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	users := newStubUserRepository()
	service, _ := newAuthServiceForTest(users)
	users.add(models.User{ID: "user-1", Email: "bruce@example.com"})

	_, err := service.Register(RegisterInput{
		Name:      "Impostor",
		Email:     "bruce@example.com",
		Character: "Joker",
		Password:  "senha123",
		Role:      models.RoleHero,
	})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
	if len(users.created) != 0 {
		t.Fatalf("expected no user created, got %d", len(users.created))
	}
}

func TestRegisterMapsRacingInsertToConflict(t *testing.T) {
	users := newStubUserRepository()
	service, _ := newAuthServiceForTest(users)
	users.createErr = errors.New("UNIQUE constraint failed: users.email")

	_, err := service.Register(RegisterInput{
		Name:      "Bruce Wayne",
		Email:     "bruce@example.com",
		Character: "Batman",
		Password:  "senha123",
		Role:      models.RoleHero,
	})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered for racing insert, got %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	users := newStubUserRepository()
	service, _ := newAuthServiceForTest(users)

	registered, err := service.Register(RegisterInput{
		Name:      "Bruce Wayne",
		Email:     "bruce@example.com",
		Character: "Batman",
		Password:  "senha123",
		Role:      models.RoleHero,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	_, unknownErr := service.Login("unknown@example.com", "senha123")
	_, wrongErr := service.Login("bruce@example.com", "senha-errada")
	if !errors.Is(unknownErr, ErrInvalidCredentials) || !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("expected identical ErrInvalidCredentials, got %v and %v", unknownErr, wrongErr)
	}

	result, err := service.Login("bruce@example.com", "senha123")
	if err != nil {
		t.Fatalf("login with correct password: %v", err)
	}
	if result.User.ID != registered.User.ID {
		t.Fatalf("expected login to resolve to registered user %q, got %q", registered.User.ID, result.User.ID)
	}
}

func TestValidateSessionRejectsDeletedSubject(t *testing.T) {
	users := newStubUserRepository()
	service, _ := newAuthServiceForTest(users)
	users.add(models.User{ID: "user-1", Email: "bruce@example.com"})

	if _, err := service.ValidateSession("user-1"); err != nil {
		t.Fatalf("expected existing subject to validate, got %v", err)
	}
	if _, err := service.ValidateSession("deleted-user"); !errors.Is(err, ErrSessionUserNotFound) {
		t.Fatalf("expected ErrSessionUserNotFound, got %v", err)
	}
}
