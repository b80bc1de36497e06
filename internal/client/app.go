package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/notes-and-tags/internal/adapter"
	"github.com/MKhiriev/notes-and-tags/internal/logger"
	"github.com/MKhiriev/notes-and-tags/internal/utils"
	"github.com/MKhiriev/notes-and-tags/models"
	"github.com/atotto/clipboard"
)

// Usage lists the supported subcommands.
const Usage = `usage: notes-client <command> [flags]

commands:
  register -u <username> -p <password> [-confirm <password>] [-first <name>] [-last <name>] [-role <role>]
  login    -u <username> -p <password> [-copy]
  logout
  notes    [-user <id>]
  get      -id <id>
  add      -text <text> -priority <low|medium|high> -tag <tag> [-user <id>]
  update   -id <id> -text <text> -priority <low|medium|high> -tag <tag> [-user <id>]
  delete   -id <id>
  version`

type command func(ctx context.Context, args []string) error

var _ Client = (*App)(nil)

type App struct {
	api      adapter.NotesAPI
	sessions *SessionStore
	out      io.Writer

	// copyToClipboard is replaced in tests.
	copyToClipboard func(string) error
	now             func() time.Time

	logger *logger.Logger
}

func NewApp(api adapter.NotesAPI, sessions *SessionStore, out io.Writer, logger *logger.Logger) *App {
	return &App{
		api:             api,
		sessions:        sessions,
		out:             out,
		copyToClipboard: clipboard.WriteAll,
		now:             time.Now,
		logger:          logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrMissingArgs, Usage)
	}

	commands := map[string]command{
		"register": a.register,
		"login":    a.login,
		"logout":   a.logout,
		"notes":    a.authenticated(a.listNotes),
		"get":      a.authenticated(a.getNote),
		"add":      a.authenticated(a.addNote),
		"update":   a.authenticated(a.updateNote),
		"delete":   a.authenticated(a.deleteNote),
		"version":  a.version,
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, args[0], Usage)
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd(ctx, args[1:])
}

// authenticated restores the saved token before running next.
func (a *App) authenticated(next command) command {
	return func(ctx context.Context, args []string) error {
		session, err := a.sessions.Load()
		if errors.Is(err, ErrSessionNotFound) {
			return ErrNotLoggedIn
		}
		if err != nil {
			return err
		}

		a.api.SetToken(session.Token)

		err = next(ctx, args)
		if errors.Is(err, adapter.ErrUnauthorized) {
			a.logger.Warn().Msg("saved session was rejected, login again")
		}
		return err
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	var user models.RegisterUser
	fs := newFlagSet("register")
	fs.StringVar(&user.Username, "u", "", "username")
	fs.StringVar(&user.Password, "p", "", "password")
	fs.StringVar(&user.ConfirmPassword, "confirm", "", "password confirmation (defaults to -p)")
	fs.StringVar(&user.FirstName, "first", "", "first name")
	fs.StringVar(&user.LastName, "last", "", "last name")
	fs.StringVar(&user.Role, "role", "User", "role")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if user.Username == "" || user.Password == "" {
		return fmt.Errorf("%w: -u and -p", ErrMissingArgs)
	}
	if user.ConfirmPassword == "" {
		user.ConfirmPassword = user.Password
	}

	created, err := a.api.Register(ctx, user)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "registered %s with id %d\n", created.Username, created.UserID)
	return err
}

func (a *App) login(ctx context.Context, args []string) error {
	var creds models.Login
	var copyToken bool
	fs := newFlagSet("login")
	fs.StringVar(&creds.Username, "u", "", "username")
	fs.StringVar(&creds.Password, "p", "", "password")
	fs.BoolVar(&copyToken, "copy", false, "copy the token to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if creds.Username == "" || creds.Password == "" {
		return fmt.Errorf("%w: -u and -p", ErrMissingArgs)
	}

	token, err := a.api.Login(ctx, creds)
	if err != nil {
		return err
	}

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return fmt.Errorf("read user id from token: %w", err)
	}

	err = a.sessions.Save(Session{UserID: userID, Username: creds.Username, Token: token, At: a.now()})
	if err != nil {
		return err
	}

	if copyToken {
		if err = a.copyToClipboard(token); err != nil {
			a.logger.Warn().Err(err).Msg("copy token to clipboard")
		} else {
			fmt.Fprintln(a.out, "token copied to clipboard")
		}
	}

	_, err = fmt.Fprintf(a.out, "logged in as %s (id %d)\n", creds.Username, userID)
	return err
}

func (a *App) logout(_ context.Context, _ []string) error {
	if err := a.sessions.Clear(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.out, "logged out")
	return err
}

func (a *App) listNotes(ctx context.Context, args []string) error {
	var userID int64
	fs := newFlagSet("notes")
	fs.Int64Var(&userID, "user", 0, "only notes of this user")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		notes []models.NoteDTO
		err   error
	)
	if userID > 0 {
		notes, err = a.api.UserNotes(ctx, userID)
	} else {
		notes, err = a.api.ListNotes(ctx)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, renderNotes(notes))
	return err
}

func (a *App) getNote(ctx context.Context, args []string) error {
	id, err := parseID("get", args)
	if err != nil {
		return err
	}

	note, err := a.api.GetNote(ctx, id)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, renderNotes([]models.NoteDTO{note}))
	return err
}

func (a *App) addNote(ctx context.Context, args []string) error {
	fields, err := parseNoteFlags("add", args, false)
	if err != nil {
		return err
	}

	created, err := a.api.AddNote(ctx, models.AddNote{
		Text:     fields.text,
		Priority: fields.priority,
		Tag:      models.Tag(fields.tag),
		UserID:   fields.userID,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, renderNotes([]models.NoteDTO{created}))
	return err
}

func (a *App) updateNote(ctx context.Context, args []string) error {
	fields, err := parseNoteFlags("update", args, true)
	if err != nil {
		return err
	}

	err = a.api.UpdateNote(ctx, models.UpdateNote{
		ID:       fields.id,
		Text:     fields.text,
		Priority: fields.priority,
		Tag:      models.Tag(fields.tag),
		UserID:   fields.userID,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "note %d updated\n", fields.id)
	return err
}

func (a *App) deleteNote(ctx context.Context, args []string) error {
	id, err := parseID("delete", args)
	if err != nil {
		return err
	}

	if err = a.api.DeleteNote(ctx, id); err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "note %d deleted\n", id)
	return err
}

func (a *App) version(ctx context.Context, _ []string) error {
	info, err := a.api.Version(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, info.String())
	return err
}

type noteFlags struct {
	id       int64
	text     string
	priority models.Priority
	tag      string
	userID   int64
}

func parseNoteFlags(name string, args []string, needID bool) (noteFlags, error) {
	var (
		fields   noteFlags
		priority string
	)

	fs := newFlagSet(name)
	if needID {
		fs.Int64Var(&fields.id, "id", 0, "note id")
	}
	fs.StringVar(&fields.text, "text", "", "note text")
	fs.StringVar(&priority, "priority", "", "low, medium or high")
	fs.StringVar(&fields.tag, "tag", "", "note tag")
	fs.Int64Var(&fields.userID, "user", 0, "owner id (defaults to the logged in user)")
	if err := fs.Parse(args); err != nil {
		return noteFlags{}, err
	}
	if needID && fields.id <= 0 {
		return noteFlags{}, fmt.Errorf("%w: -id", ErrMissingArgs)
	}

	// an empty priority is left to server-side validation
	if priority != "" {
		p, err := models.ParsePriority(priority)
		if err != nil {
			return noteFlags{}, err
		}
		fields.priority = p
	}

	return fields, nil
}

// parseID accepts either "-id N" or a bare positional "N".
func parseID(name string, args []string) (int64, error) {
	var id int64
	fs := newFlagSet(name)
	fs.Int64Var(&id, "id", 0, "note id")
	if err := fs.Parse(args); err != nil {
		return 0, err
	}

	if id == 0 && fs.NArg() > 0 {
		parsed, err := strconv.ParseInt(fs.Arg(0), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid note id %q: %w", fs.Arg(0), err)
		}
		id = parsed
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: -id", ErrMissingArgs)
	}

	return id, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
