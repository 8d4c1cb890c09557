package mapper

import (
	"notesy-be/internal/entity"
	"notesy-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	return &entity.Note{
		Id:          n.NotesId,
		Email:       n.Email,
		Title:       n.Title,
		Description: n.Description,
		DateAdded:   n.DateAdded,
		Marked:      n.Marked,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	return &model.Note{
		NotesId:     n.Id,
		Email:       n.Email,
		Title:       n.Title,
		Description: n.Description,
		DateAdded:   n.DateAdded,
		Marked:      n.Marked,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
