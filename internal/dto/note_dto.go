package dto

type CreateNoteRequest struct {
	NotesId     string `json:"notes_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// NoteChanges is a sparse patch: only fields present in the JSON body are
// applied. Absent fields stay nil and leave the stored note untouched.
type NoteChanges struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Marked      *bool   `json:"marked,omitempty"`
}

type UpdateNoteRequest struct {
	NoteId  string      `json:"note_id" validate:"required"`
	Changes NoteChanges `json:"changes"`
}

type DeleteNoteRequest struct {
	NoteId string `json:"note_id" validate:"required"`
}

type NoteResponse struct {
	NotesId     string `json:"notes_id"`
	Email       string `json:"email"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DateAdded   string `json:"date_added"`
	Marked      bool   `json:"marked"`
}
