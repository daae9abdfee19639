package account

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	MinNameLen     = 3
	MinPasswordLen = 6
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validator checks registration and login input before it reaches the store.
type Validator interface {
	ValidateRegister(name, email, password string) error
	ValidateEmail(email string) error
}

type RegisterValidator struct{}

func NewRegisterValidator() *RegisterValidator {
	return &RegisterValidator{}
}

func (v *RegisterValidator) ValidateRegister(name, email, password string) error {
	if len(strings.TrimSpace(name)) < MinNameLen {
		return fmt.Errorf("name must be at least %d characters", MinNameLen)
	}

	if err := v.ValidateEmail(email); err != nil {
		return err
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	return nil
}

func (v *RegisterValidator) ValidateEmail(email string) error {
	if !emailRe.MatchString(strings.TrimSpace(email)) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
