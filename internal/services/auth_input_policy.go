package services

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/heroforce/heroforce/internal/models"
)

var ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")

const minPasswordLength = 6

type RegisterInput struct {
	Name      string
	Email     string
	Character string
	Password  string
	Role      string
}

// ValidateRegisterInput returns one message per violated field, in the
// order the fields appear on the registration form.
func ValidateRegisterInput(input RegisterInput) []string {
	messages := make([]string, 0)

	if strings.TrimSpace(input.Name) == "" {
		messages = append(messages, "Nome é obrigatório")
	}
	if !validEmailFormat(input.Email) {
		messages = append(messages, "Email inválido")
	}
	if strings.TrimSpace(input.Character) == "" {
		messages = append(messages, "Personagem é obrigatório")
	}
	if len(input.Password) < minPasswordLength {
		messages = append(messages, "Senha deve ter no minimo 6 caracteres")
	}
	if !models.ValidRole(input.Role) {
		messages = append(messages, "Role deve ser hero ou admin")
	}

	return messages
}

// NormalizeLoginInput trims surrounding whitespace only. Emails are
// stored and matched case-sensitively.
func NormalizeLoginInput(emailRaw string, password string) (string, string, error) {
	email := strings.TrimSpace(emailRaw)
	if !validEmailFormat(email) || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

func validEmailFormat(raw string) bool {
	email := strings.TrimSpace(raw)
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}
