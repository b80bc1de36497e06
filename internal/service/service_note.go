package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/notes-and-tags/internal/logger"
	"github.com/MKhiriev/notes-and-tags/internal/store"
	"github.com/MKhiriev/notes-and-tags/internal/validators"
	"github.com/MKhiriev/notes-and-tags/models"
)

type noteService struct {
	noteRepository store.NoteRepository
	userRepository store.UserRepository

	validator validators.Validator

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, userRepository store.UserRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		userRepository: userRepository,
		validator:      validators.NewNoteValidator(),
		logger:         logger,
	}
}

// AddNote validates the payload, resolves the owner and stores the note.
// The returned DTO carries the identifier assigned by the repository.
func (s *noteService) AddNote(ctx context.Context, note models.AddNote) (models.NoteDTO, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, note); err != nil {
		log.Debug().Err(err).Msg("invalid note")
		return models.NoteDTO{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	owner, err := s.resolveOwner(ctx, note.UserID)
	if err != nil {
		return models.NoteDTO{}, err
	}

	newNote := note.ToNote()
	newNote.User = &owner

	if err = s.noteRepository.Add(ctx, &newNote); err != nil {
		log.Err(err).Str("func", "noteService.AddNote").Int64("user_id", note.UserID).Msg("error saving note")
		return models.NoteDTO{}, s.storageError(err, 0, note.UserID)
	}

	return newNote.ToNoteDTO(), nil
}

func (s *noteService) GetByID(ctx context.Context, id int64) (models.NoteDTO, error) {
	note, err := s.noteRepository.GetByID(ctx, id)
	if err != nil {
		return models.NoteDTO{}, s.storageError(err, id, 0)
	}

	return note.ToNoteDTO(), nil
}

func (s *noteService) GetAllNotes(ctx context.Context) ([]models.NoteDTO, error) {
	notes, err := s.noteRepository.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteService.GetAllNotes").Msg("error loading notes")
		return nil, fmt.Errorf("error loading notes: %w", err)
	}

	return models.ToNoteDTOs(notes), nil
}

// GetAllUserNotes returns the notes owned by userID. An owner without notes,
// or an unknown owner, yields an empty slice.
func (s *noteService) GetAllUserNotes(ctx context.Context, userID int64) ([]models.NoteDTO, error) {
	notes, err := s.noteRepository.GetAllByUserID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteService.GetAllUserNotes").Int64("user_id", userID).Msg("error loading notes")
		return nil, fmt.Errorf("error loading notes of user %d: %w", userID, err)
	}

	return models.ToNoteDTOs(notes), nil
}

// UpdateNote overwrites text, priority, tag and owner of an existing note.
// An unknown note id is reported before the payload is validated.
func (s *noteService) UpdateNote(ctx context.Context, update models.UpdateNote) error {
	log := logger.FromContext(ctx)

	note, err := s.noteRepository.GetByID(ctx, update.ID)
	if err != nil {
		return s.storageError(err, update.ID, 0)
	}

	if err = s.validator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Int64("note_id", update.ID).Msg("invalid note update")
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	owner, err := s.resolveOwner(ctx, update.UserID)
	if err != nil {
		return err
	}

	update.ApplyTo(&note)
	note.User = &owner

	if err = s.noteRepository.Update(ctx, note); err != nil {
		log.Err(err).Str("func", "noteService.UpdateNote").Int64("note_id", update.ID).Msg("error updating note")
		return s.storageError(err, update.ID, update.UserID)
	}

	return nil
}

func (s *noteService) DeleteNote(ctx context.Context, id int64) error {
	note, err := s.noteRepository.GetByID(ctx, id)
	if err != nil {
		return s.storageError(err, id, 0)
	}

	if err = s.noteRepository.Delete(ctx, note); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteService.DeleteNote").Int64("note_id", id).Msg("error deleting note")
		return s.storageError(err, id, 0)
	}

	return nil
}

// resolveOwner loads the user a note is bound to. A missing user is a
// validation failure of the note, not a lookup miss.
func (s *noteService) resolveOwner(ctx context.Context, userID int64) (models.User, error) {
	owner, err := s.userRepository.GetByID(ctx, userID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.User{}, ownerNotFound(userID)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteService.resolveOwner").Int64("user_id", userID).Msg("error loading note owner")
		return models.User{}, fmt.Errorf("error loading user %d: %w", userID, err)
	}

	return owner, nil
}

// storageError maps repository sentinels to service error kinds.
func (s *noteService) storageError(err error, noteID, userID int64) error {
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		return fmt.Errorf("%w: note with id %d", ErrNotFound, noteID)
	case errors.Is(err, store.ErrOwnerNotFound):
		return ownerNotFound(userID)
	default:
		return fmt.Errorf("note storage error: %w", err)
	}
}

func ownerNotFound(userID int64) error {
	return fmt.Errorf("%w: user with id %d does not exist", ErrValidation, userID)
}
