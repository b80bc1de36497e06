package store

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/notes-and-tags/models"
)

// memoryStorage keeps users and notes in process memory. Both repositories
// built on it share one lock so that note owner checks see a consistent
// user set.
type memoryStorage struct {
	mu sync.RWMutex

	nextUserID int64
	users      map[int64]models.User
	usernames  map[string]int64

	nextNoteID int64
	notes      map[int64]models.Note

	now func() time.Time
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{
		nextUserID: 1,
		users:      make(map[int64]models.User),
		usernames:  make(map[string]int64),
		nextNoteID: 1,
		notes:      make(map[int64]models.Note),
		now:        time.Now,
	}
}

// NewMemoryStorages returns repositories backed by process memory. Records
// are lost when the process exits.
func NewMemoryStorages() *Storages {
	s := newMemoryStorage()
	return &Storages{
		UserRepository: &memoryUserRepository{s: s},
		NoteRepository: &memoryNoteRepository{s: s},
	}
}

// sortedValues returns map values ordered by identifier, which is also
// insertion order.
func sortedValues[T any](m map[int64]T) []T {
	keys := slices.Sorted(maps.Keys(m))
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

type memoryUserRepository struct {
	s *memoryStorage
}

func (r *memoryUserRepository) GetByID(_ context.Context, id int64) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return models.User{}, ErrRecordNotFound
	}
	return user, nil
}

func (r *memoryUserRepository) Add(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.usernames[user.Username]; taken {
		return ErrUsernameTaken
	}

	user.UserID = r.s.nextUserID
	r.s.nextUserID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = r.s.now().UTC()
	}

	stored := *user
	stored.Notes = nil
	r.s.users[stored.UserID] = stored
	r.s.usernames[stored.Username] = stored.UserID

	return nil
}

func (r *memoryUserRepository) Update(_ context.Context, user models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	old, ok := r.s.users[user.UserID]
	if !ok {
		return ErrRecordNotFound
	}
	if id, taken := r.s.usernames[user.Username]; taken && id != user.UserID {
		return ErrUsernameTaken
	}

	delete(r.s.usernames, old.Username)
	user.Notes = nil
	r.s.users[user.UserID] = user
	r.s.usernames[user.Username] = user.UserID

	return nil
}

// Delete removes the user together with the notes it owns.
func (r *memoryUserRepository) Delete(_ context.Context, user models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	old, ok := r.s.users[user.UserID]
	if !ok {
		return ErrRecordNotFound
	}

	delete(r.s.users, old.UserID)
	delete(r.s.usernames, old.Username)
	for id, note := range r.s.notes {
		if note.UserID == old.UserID {
			delete(r.s.notes, id)
		}
	}

	return nil
}

func (r *memoryUserRepository) GetAll(_ context.Context) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sortedValues(r.s.users), nil
}

func (r *memoryUserRepository) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.usernames[username]
	if !ok {
		return models.User{}, ErrRecordNotFound
	}
	return r.s.users[id], nil
}

func (r *memoryUserRepository) FindByCredentials(ctx context.Context, username, passwordHash string) (models.User, error) {
	user, err := r.GetUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	if user.Password != passwordHash {
		return models.User{}, ErrRecordNotFound
	}
	return user, nil
}

type memoryNoteRepository struct {
	s *memoryStorage
}

func (r *memoryNoteRepository) GetByID(_ context.Context, id int64) (models.Note, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	note, ok := r.s.notes[id]
	if !ok {
		return models.Note{}, ErrRecordNotFound
	}
	return note, nil
}

func (r *memoryNoteRepository) Add(_ context.Context, note *models.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[note.UserID]; !ok {
		return ErrOwnerNotFound
	}

	note.NoteID = r.s.nextNoteID
	r.s.nextNoteID++

	stored := *note
	stored.User = nil
	r.s.notes[stored.NoteID] = stored

	return nil
}

func (r *memoryNoteRepository) Update(_ context.Context, note models.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.notes[note.NoteID]; !ok {
		return ErrRecordNotFound
	}
	if _, ok := r.s.users[note.UserID]; !ok {
		return ErrOwnerNotFound
	}

	note.User = nil
	r.s.notes[note.NoteID] = note

	return nil
}

func (r *memoryNoteRepository) Delete(_ context.Context, note models.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.notes[note.NoteID]; !ok {
		return ErrRecordNotFound
	}
	delete(r.s.notes, note.NoteID)

	return nil
}

func (r *memoryNoteRepository) GetAll(_ context.Context) ([]models.Note, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sortedValues(r.s.notes), nil
}

func (r *memoryNoteRepository) GetAllByUserID(_ context.Context, userID int64) ([]models.Note, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	notes := make([]models.Note, 0)
	for _, note := range sortedValues(r.s.notes) {
		if note.UserID == userID {
			notes = append(notes, note)
		}
	}
	return notes, nil
}
