package helpers

import (
	"errors"
	"strings"
)

// Presence checks only. Password strength and email format are left to
// the institution's enrollment tooling upstream.
func ValidateRegisterInput(username, email, password string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("username is required")
	}
	if strings.TrimSpace(email) == "" {
		return errors.New("email is required")
	}
	if password == "" {
		return errors.New("password is required")
	}
	return nil
}

func ValidateLoginInput(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return errors.New("username and password are required")
	}
	return nil
}
