package specification

import "gorm.io/gorm"

// ByNoteID filters by the client-generated note identifier.
type ByNoteID struct {
	NoteID string
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes_id = ?", s.NoteID)
}

// OwnedBy scopes every note query to its owner. Every read and mutation
// on notes must carry this spec; a note is never visible outside its owner.
type OwnedBy struct {
	Email string
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}
