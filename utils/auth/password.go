package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordMismatch = errors.New("password does not match")
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 10
)

// HashPassword generates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// VerifyPassword checks if the provided password matches the hash
func VerifyPassword(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return err
	}
	return nil
}

// DefaultStudentPassword derives the initial student password from the date
// of birth as DDMMYYYY (dob 2003-05-10 -> "10052003").
func DefaultStudentPassword(dob time.Time) string {
	return fmt.Sprintf("%02d%02d%04d", dob.Day(), int(dob.Month()), dob.Year())
}

// DefaultFacultyPassword derives the initial faculty password from the local
// part of the email ("mehta@univ.edu" -> "mehta").
func DefaultFacultyPassword(email string) string {
	at := strings.Index(email, "@")
	if at < 0 {
		return email
	}
	return email[:at]
}
