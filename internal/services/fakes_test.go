package services

import (
	"context"
	"errors"
	"time"

	"talentscout-backend/internal/models"
)

type fakeTextGenerator struct {
	available bool
	output    string
	err       error
	prompts   []string
}

func (f *fakeTextGenerator) IsAvailable() bool {
	return f.available
}

func (f *fakeTextGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

type fakeCandidateRepo struct {
	candidates []models.Candidate
	nextID     uint
}

func (f *fakeCandidateRepo) Create(candidate *models.Candidate) error {
	f.nextID++
	candidate.ID = f.nextID
	candidate.CreatedAt = time.Now()
	f.candidates = append(f.candidates, *candidate)
	return nil
}

func (f *fakeCandidateRepo) GetByID(id uint) (*models.Candidate, error) {
	for i := range f.candidates {
		if f.candidates[i].ID == id {
			return &f.candidates[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeCandidateRepo) List() ([]models.Candidate, error) {
	return f.candidates, nil
}

type fakeAnswerRepo struct {
	answers  []models.Answer
	failNext bool
}

func (f *fakeAnswerRepo) Create(answer *models.Answer) error {
	if f.failNext {
		f.failNext = false
		return errors.New("insert failed")
	}
	answer.ID = uint(len(f.answers) + 1)
	answer.CreatedAt = time.Now()
	f.answers = append(f.answers, *answer)
	return nil
}

func (f *fakeAnswerRepo) ListByCandidate(candidateID uint) ([]models.Answer, error) {
	var result []models.Answer
	for _, a := range f.answers {
		if a.CandidateID == candidateID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAnswerRepo) AggregateByCandidate(candidateID uint) (int, int, error) {
	total, correct := 0, 0
	for _, a := range f.answers {
		if a.CandidateID != candidateID {
			continue
		}
		total++
		if a.IsCorrect {
			correct++
		}
	}
	return total, correct, nil
}
