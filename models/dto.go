package models

// AddNote is the payload for creating a note.
type AddNote struct {
	Text     string   `json:"text"`
	Priority Priority `json:"priority"`
	Tag      Tag      `json:"tag"`
	UserID   int64    `json:"userId"`
}

// UpdateNote is the payload for overwriting an existing note.
type UpdateNote struct {
	ID       int64    `json:"id"`
	Text     string   `json:"text"`
	Priority Priority `json:"priority"`
	Tag      Tag      `json:"tag"`
	UserID   int64    `json:"userId"`
}

// NoteDTO is the transport-agnostic view of a stored note.
type NoteDTO struct {
	ID       int64    `json:"id"`
	Text     string   `json:"text"`
	Priority Priority `json:"priority"`
	Tag      Tag      `json:"tag"`
	UserID   int64    `json:"userId"`
}

// Login carries the credentials for issuing a token.
type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterUser is the payload for creating an account.
type RegisterUser struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

// TokenResponse is returned by the login endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}
