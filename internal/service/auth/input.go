package auth

import (
	"net/mail"
	"unicode/utf8"

	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
)

const (
	minPasswordLength    = 8
	maxPasswordLength    = 72 // bcrypt input limit
	maxEmailLength       = 254
	maxDisplayNameLength = 100
)

// RegisterInput holds parameters for Register.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)

	switch n := len(i.Password); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case n < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case n > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if utf8.RuneCountInString(i.DisplayName) > maxDisplayNameLength {
		errs = append(errs, domain.FieldError{Field: "displayName", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds parameters for Login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "required"}}
	}
	if len(email) > maxEmailLength {
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return []domain.FieldError{{Field: "email", Message: "invalid format"}}
	}
	return nil
}
