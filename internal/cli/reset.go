package cli

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/fitledger/fitledger/internal/db"
	"github.com/fitledger/fitledger/internal/services"
)

// RunResetPasswordCommand generates a temporary password for the named user
// and prints it. Intended for operators with database access.
func RunResetPasswordCommand(databaseURL string, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("username is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repos := db.NewRepositories(database)
	auth := services.NewAuthService(repos.Users)

	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	if err := auth.ResetPassword(username, temporaryPassword); err != nil {
		return err
	}

	fmt.Println("Password reset successful")
	fmt.Printf("Temporary password: %s\n", temporaryPassword)

	return nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	var builder strings.Builder
	for i := 0; i < length; i++ {
		index, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", err
		}
		builder.WriteByte(alphabet[index.Int64()])
	}
	return builder.String(), nil
}
