package services

import (
	"testing"

	"talentscout-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name           string
		rows           []models.Answer
		wantTotal      int
		wantCorrect    int
		wantPercentage float64
	}{
		{
			name:           "no answers",
			rows:           nil,
			wantTotal:      0,
			wantCorrect:    0,
			wantPercentage: 0,
		},
		{
			name: "single correct answer",
			rows: []models.Answer{
				{CandidateID: 1, UserAnswer: "C", CorrectAnswer: "C", IsCorrect: true},
			},
			wantTotal:      1,
			wantCorrect:    1,
			wantPercentage: 100,
		},
		{
			name: "three of five correct",
			rows: []models.Answer{
				{CandidateID: 1, IsCorrect: true},
				{CandidateID: 1, IsCorrect: false},
				{CandidateID: 1, IsCorrect: true},
				{CandidateID: 1, IsCorrect: true},
				{CandidateID: 1, IsCorrect: false},
			},
			wantTotal:      5,
			wantCorrect:    3,
			wantPercentage: 60,
		},
		{
			name: "other candidates are excluded",
			rows: []models.Answer{
				{CandidateID: 1, IsCorrect: true},
				{CandidateID: 2, IsCorrect: true},
				{CandidateID: 2, IsCorrect: true},
			},
			wantTotal:      1,
			wantCorrect:    1,
			wantPercentage: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAnswerRepo{answers: tt.rows}
			svc := NewScoringService(repo)

			score, err := svc.Score(1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, score.Total)
			assert.Equal(t, tt.wantCorrect, score.Correct)
			assert.InDelta(t, tt.wantPercentage, score.Percentage, 0.001)
		})
	}
}
