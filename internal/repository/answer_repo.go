package repository

import (
	"talentscout-backend/internal/models"

	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(answer *models.Answer) error
	ListByCandidate(candidateID uint) ([]models.Answer, error)
	AggregateByCandidate(candidateID uint) (total int, correct int, err error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *models.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) ListByCandidate(candidateID uint) ([]models.Answer, error) {
	var answers []models.Answer
	if err := r.db.Where("candidate_id = ?", candidateID).
		Order("created_at ASC").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) AggregateByCandidate(candidateID uint) (int, int, error) {
	var result struct {
		Total   int64
		Correct int64
	}
	err := r.db.Model(&models.Answer{}).
		Select("COUNT(*) as total, COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0) as correct").
		Where("candidate_id = ?", candidateID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return int(result.Total), int(result.Correct), nil
}
