package implementation

import (
	"context"
	"errors"

	"notesy-be/internal/entity"
	"notesy-be/internal/mapper"
	"notesy-be/internal/model"
	"notesy-be/internal/repository/contract"
	"notesy-be/internal/repository/scope"
	"notesy-be/internal/repository/specification"

	"gorm.io/gorm"
)

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) UpdateFields(ctx context.Context, changes contract.NoteChanges, specs ...specification.Specification) error {
	fields := map[string]interface{}{}
	if changes.Title != nil {
		fields["title"] = *changes.Title
	}
	if changes.Description != nil {
		fields["description"] = *changes.Description
	}
	if changes.Marked != nil {
		fields["marked"] = *changes.Marked
	}
	if len(fields) == 0 {
		return nil
	}

	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	// RowsAffected == 0 is a silent no-op: update semantics, not existence-asserting.
	return query.Updates(fields).Error
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, specs ...specification.Specification) error {
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	return query.Delete(&model.Note{}).Error
}

func (r *NoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByDateAddedDesc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
