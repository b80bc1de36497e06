package models

// ToNote builds a new, not yet persisted Note from the payload.
// The owner reference is set by the caller once the user is resolved.
func (a AddNote) ToNote() Note {
	return Note{
		Text:     a.Text,
		Priority: a.Priority,
		Tag:      a.Tag,
		UserID:   a.UserID,
	}
}

// ApplyTo overwrites the mutable fields of n with the payload values.
func (u UpdateNote) ApplyTo(n *Note) {
	n.Text = u.Text
	n.Priority = u.Priority
	n.Tag = u.Tag
	n.UserID = u.UserID
}

// ToNoteDTO converts a stored note to its transport view.
func (n Note) ToNoteDTO() NoteDTO {
	return NoteDTO{
		ID:       n.NoteID,
		Text:     n.Text,
		Priority: n.Priority,
		Tag:      n.Tag,
		UserID:   n.UserID,
	}
}

// ToNoteDTOs converts notes preserving their order. It never returns nil.
func ToNoteDTOs(notes []Note) []NoteDTO {
	dtos := make([]NoteDTO, 0, len(notes))
	for _, n := range notes {
		dtos = append(dtos, n.ToNoteDTO())
	}
	return dtos
}
