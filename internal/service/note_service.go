package service

import (
	"context"
	"time"

	"notesy-be/internal/dto"
	"notesy-be/internal/entity"
	"notesy-be/internal/pkg/logger"
	"notesy-be/internal/repository/contract"
	"notesy-be/internal/repository/specification"
	"notesy-be/internal/repository/unitofwork"
)

type INoteService interface {
	List(ctx context.Context, owner string) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, owner string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, owner string, req *dto.UpdateNoteRequest) error
	Delete(ctx context.Context, owner string, noteId string) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *noteService) List(ctx context.Context, owner string) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedBy{Email: owner},
	)
	if err != nil {
		s.log.Error("NoteService", "Failed to list notes", map[string]interface{}{
			"owner": owner,
			"error": err.Error(),
		})
		return nil, err
	}

	res := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		res[i] = toNoteResponse(n)
	}
	return res, nil
}

// Create persists a new note. Owner always comes from the authenticated
// session, never from the request body, so a client cannot write into another
// account. The id is client-generated; a duplicate surfaces as a store error.
func (s *noteService) Create(ctx context.Context, owner string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note := entity.Note{
		Id:          req.NotesId,
		Email:       owner,
		Title:       req.Title,
		Description: req.Description,
		DateAdded:   time.Now().UTC().Format(time.RFC3339),
		Marked:      false,
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		s.log.Error("NoteService", "Failed to create note", map[string]interface{}{
			"owner":    owner,
			"notes_id": req.NotesId,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.log.Info("NoteService", "Note created", map[string]interface{}{
		"owner":    owner,
		"notes_id": note.Id,
	})

	return toNoteResponse(&note), nil
}

// Update applies only the fields present in the sparse changes object, scoped
// by (id, owner). A missing note is a silent success: update semantics, not
// existence-asserting.
func (s *noteService) Update(ctx context.Context, owner string, req *dto.UpdateNoteRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	changes := contract.NoteChanges{
		Title:       req.Changes.Title,
		Description: req.Changes.Description,
		Marked:      req.Changes.Marked,
	}

	err := uow.NoteRepository().UpdateFields(ctx, changes,
		specification.ByNoteID{NoteID: req.NoteId},
		specification.OwnedBy{Email: owner},
	)
	if err != nil {
		s.log.Error("NoteService", "Failed to update note", map[string]interface{}{
			"owner":    owner,
			"notes_id": req.NoteId,
			"error":    err.Error(),
		})
		return err
	}
	return nil
}

// Delete removes the note scoped by (id, owner). Deleting a note that does
// not exist, or that belongs to someone else, is a silent success.
func (s *noteService) Delete(ctx context.Context, owner string, noteId string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	err := uow.NoteRepository().Delete(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.OwnedBy{Email: owner},
	)
	if err != nil {
		s.log.Error("NoteService", "Failed to delete note", map[string]interface{}{
			"owner":    owner,
			"notes_id": noteId,
			"error":    err.Error(),
		})
		return err
	}

	s.log.Info("NoteService", "Note deleted", map[string]interface{}{
		"owner":    owner,
		"notes_id": noteId,
	})
	return nil
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		NotesId:     n.Id,
		Email:       n.Email,
		Title:       n.Title,
		Description: n.Description,
		DateAdded:   n.DateAdded,
		Marked:      n.Marked,
	}
}
