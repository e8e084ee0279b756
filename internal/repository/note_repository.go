package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lumen-crm/assistant-api/internal/domain"
	"gorm.io/gorm"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *NoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	var note domain.Note
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// GetByCustomerID returns a customer's notes, most recent note date first.
func (r *NoteRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]domain.Note, error) {
	var notes []domain.Note
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("note_date DESC, created_at DESC").
		Find(&notes).Error
	return notes, err
}

// GetByCustomerAndDate returns every note a customer has on the given
// calendar day. Callers addressing a note by date must treat more than one
// result as ambiguous.
func (r *NoteRepository) GetByCustomerAndDate(ctx context.Context, customerID uuid.UUID, date time.Time) ([]domain.Note, error) {
	var notes []domain.Note
	day := date.Truncate(24 * time.Hour)
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND note_date >= ? AND note_date < ?", customerID, day, day.AddDate(0, 0, 1)).
		Order("created_at ASC").
		Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) Update(ctx context.Context, note *domain.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Note{}, "id = ?", id).Error
}

func (r *NoteRepository) CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Note{}).Where("customer_id = ?", customerID).Count(&count).Error
	return int(count), err
}
