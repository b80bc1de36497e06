package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyNoteText       = errors.New("text cannot be empty string")
	ErrNoteTextTooLong     = errors.New("text cannot contain more than 100 characters")
	ErrInvalidPriority     = errors.New("priority must be Low, Medium or High")
	ErrEmptyTag            = errors.New("tag is required")
	ErrTagTooLong          = errors.New("tag cannot contain more than 30 characters")
	ErrInvalidNoteID       = errors.New("invalid note id")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrEmptyCredentials    = errors.New("username and password are required")
	ErrUsernameTooLong     = errors.New("maximum length of username is 30 characters")
	ErrFirstNameTooLong    = errors.New("maximum length of first name is 50 characters")
	ErrLastNameTooLong     = errors.New("maximum length of last name is 50 characters")
	ErrPasswordsDoNotMatch = errors.New("passwords must match")
)
