package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"alfredoptarigan/hr-helper/internal/models"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	Save(candidate *models.Candidate) error
	FindByID(id string) (*models.Candidate, error)
	FindAll() ([]models.Candidate, error)
	FindByStatus(status models.CandidateStatus) ([]models.Candidate, error)
	UpdateStatus(id string, status models.CandidateStatus) error
	Delete(id string) error
	NextPosition() (int64, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// Save inserts the candidate or replaces the stored row with the same ID.
func (r *candidateRepository) Save(candidate *models.Candidate) error {
	if err := r.db.Save(candidate).Error; err != nil {
		return fmt.Errorf("failed to save candidate: %w", err)
	}
	return nil
}

func (r *candidateRepository) FindByID(id string) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCandidateNotFound, id)
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &candidate, nil
}

func (r *candidateRepository) FindAll() ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := r.db.Order("position ASC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepository) FindByStatus(status models.CandidateStatus) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.
		Where("status = ?", status).
		Order("position ASC").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s candidates: %w", status, err)
	}
	return candidates, nil
}

func (r *candidateRepository) UpdateStatus(id string, status models.CandidateStatus) error {
	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrCandidateNotFound, id)
	}

	return nil
}

func (r *candidateRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Candidate{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete candidate: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrCandidateNotFound, id)
	}

	return nil
}

// NextPosition returns the ingestion position for a new candidate.
func (r *candidateRepository) NextPosition() (int64, error) {
	var last int64
	err := r.db.Model(&models.Candidate{}).
		Select("COALESCE(MAX(position), 0)").
		Scan(&last).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read last position: %w", err)
	}
	return last + 1, nil
}
