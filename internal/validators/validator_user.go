package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/notes-and-tags/models"
)

const (
	FieldCredentials     = "credentials"
	FieldUsername        = "username"
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldConfirmPassword = "confirm_password"
)

const (
	MaxUsernameLength = 30
	MaxNameLength     = 50
)

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterUser:
		return v.validateRegisterUser(value, fields...)
	case *models.RegisterUser:
		return v.validateRegisterUser(*value, fields...)

	case models.Login:
		return v.validateLogin(value, fields...)
	case *models.Login:
		return v.validateLogin(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegisterUser applies the rules in the order they are reported to
// the caller: required credentials, lengths, then password confirmation.
func (v *UserValidator) validateRegisterUser(user models.RegisterUser, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCredentials, FieldUsername, FieldFirstName, FieldLastName, FieldConfirmPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldCredentials:
			if user.Username == "" || user.Password == "" {
				return ErrEmptyCredentials
			}
		case FieldUsername:
			if utf8.RuneCountInString(user.Username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldFirstName:
			if utf8.RuneCountInString(user.FirstName) > MaxNameLength {
				return ErrFirstNameTooLong
			}
		case FieldLastName:
			if utf8.RuneCountInString(user.LastName) > MaxNameLength {
				return ErrLastNameTooLong
			}
		case FieldConfirmPassword:
			if user.Password != user.ConfirmPassword {
				return ErrPasswordsDoNotMatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLogin(login models.Login, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCredentials}
	}

	for _, f := range fields {
		switch f {
		case FieldCredentials:
			if login.Username == "" || login.Password == "" {
				return ErrEmptyCredentials
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
