package repository

import (
	"talentscout-backend/internal/models"

	"gorm.io/gorm"
)

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	GetByID(id uint) (*models.Candidate, error)
	List() ([]models.Candidate, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(candidate *models.Candidate) error {
	return r.db.Create(candidate).Error
}

func (r *candidateRepository) GetByID(id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.First(&candidate, id).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) List() ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := r.db.Order("created_at DESC").Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}
