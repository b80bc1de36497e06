package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/notes-and-tags/models"
)

const (
	FieldNoteID   = "id"
	FieldText     = "text"
	FieldPriority = "priority"
	FieldTag      = "tag"
	FieldUserID   = "user_id"
)

const (
	MaxNoteTextLength = 100
	MaxTagLength      = 30
)

type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AddNote:
		return v.validateAddNote(value, fields...)
	case *models.AddNote:
		return v.validateAddNote(*value, fields...)

	case models.UpdateNote:
		return v.validateUpdateNote(value, fields...)
	case *models.UpdateNote:
		return v.validateUpdateNote(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateAddNote(note models.AddNote, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldPriority, FieldTag}
	}

	return validateNoteFields(note.Text, note.Priority, note.Tag, note.UserID, 0, fields)
}

func (v *NoteValidator) validateUpdateNote(note models.UpdateNote, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldPriority, FieldTag}
	}

	return validateNoteFields(note.Text, note.Priority, note.Tag, note.UserID, note.ID, fields)
}

func validateNoteFields(text string, priority models.Priority, tag models.Tag, userID, noteID int64, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if noteID <= 0 {
				return ErrInvalidNoteID
			}
		case FieldText:
			if text == "" {
				return ErrEmptyNoteText
			}
			if utf8.RuneCountInString(text) > MaxNoteTextLength {
				return ErrNoteTextTooLong
			}
		case FieldPriority:
			if !priority.IsValid() {
				return ErrInvalidPriority
			}
		case FieldTag:
			if tag == "" {
				return ErrEmptyTag
			}
			if utf8.RuneCountInString(string(tag)) > MaxTagLength {
				return ErrTagTooLong
			}
		case FieldUserID:
			if userID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
