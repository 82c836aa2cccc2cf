package services

import "talentscout-backend/internal/repository"

type ScoringService struct {
	answers repository.AnswerRepository
}

func NewScoringService(answers repository.AnswerRepository) *ScoringService {
	return &ScoringService{answers: answers}
}

type Score struct {
	Total      int     `json:"total"`
	Correct    int     `json:"correct"`
	Percentage float64 `json:"percentage"`
}

// Score aggregates the persisted answers for one candidate. Pure read; the
// stored is_correct flag is authoritative, nothing is recomputed here.
func (s *ScoringService) Score(candidateID uint) (Score, error) {
	total, correct, err := s.answers.AggregateByCandidate(candidateID)
	if err != nil {
		return Score{}, err
	}

	score := Score{Total: total, Correct: correct}
	if total > 0 {
		score.Percentage = float64(correct) / float64(total) * 100
	}
	return score, nil
}
