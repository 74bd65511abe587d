package cli

import (
	"fmt"
	"net/mail"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heroforce/heroforce/internal/db"
	"github.com/heroforce/heroforce/internal/models"
	"github.com/heroforce/heroforce/internal/security"
)

// Alphabet for generated passwords. Ambiguous characters (0, O, 1, l, I)
// are excluded so credentials can be read aloud without confusion.
const temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const temporaryPasswordLength = 16

// RunCreateAdminCommand bootstraps the first administrator account. It
// refuses to run when an admin already exists, so promotion of further
// admins happens through the API instead.
func RunCreateAdminCommand(databasePath string, args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: heroforce create-admin <name> <email>")
		return 2
	}

	name := strings.TrimSpace(args[0])
	email := strings.TrimSpace(args[1])
	if name == "" {
		fmt.Fprintln(os.Stderr, "create-admin: name must not be empty")
		return 2
	}
	if _, err := mail.ParseAddress(email); err != nil {
		fmt.Fprintf(os.Stderr, "create-admin: invalid email %q\n", email)
		return 2
	}

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create-admin: open database: %v\n", err)
		return 1
	}

	users := db.NewUserRepository(database)

	admins, err := users.CountByRole(models.RoleAdmin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create-admin: count admins: %v\n", err)
		return 1
	}
	if admins > 0 {
		fmt.Fprintln(os.Stderr, "create-admin: an administrator already exists")
		return 1
	}

	password, err := generateTemporaryPassword()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create-admin: generate password: %v\n", err)
		return 1
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create-admin: hash password: %v\n", err)
		return 1
	}

	admin := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Character:    "Superman",
		Role:         models.RoleAdmin,
	}
	if err := users.Create(admin); err != nil {
		if db.IsUniqueConstraintError(err) {
			fmt.Fprintf(os.Stderr, "create-admin: email %q is already registered\n", email)
			return 1
		}
		fmt.Fprintf(os.Stderr, "create-admin: create user: %v\n", err)
		return 1
	}

	fmt.Printf("Administrator created.\n\n  email:    %s\n  password: %s\n\nChange this password after the first login.\n", email, password)
	return 0
}

func generateTemporaryPassword() (string, error) {
	return security.RandomString(temporaryPasswordLength, temporaryPasswordAlphabet)
}
