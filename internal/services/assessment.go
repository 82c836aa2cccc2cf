package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"talentscout-backend/internal/mcq"
	"talentscout-backend/internal/models"
	"talentscout-backend/internal/repository"
	"talentscout-backend/internal/session"

	"github.com/google/uuid"
)

// QuestionGenerator is what the assessment needs from the generator side.
type QuestionGenerator interface {
	Generate(ctx context.Context, techStack string) ([]mcq.Question, error)
}

// AssessmentService drives one applicant through their run: intake creates
// the candidate and the run, each submission appends exactly one answer row
// and advances the cursor, reset discards the run and nothing else.
type AssessmentService struct {
	candidates repository.CandidateRepository
	answers    repository.AnswerRepository
	generator  QuestionGenerator
	runs       session.Store
}

func NewAssessmentService(
	candidates repository.CandidateRepository,
	answers repository.AnswerRepository,
	generator QuestionGenerator,
	runs session.Store,
) *AssessmentService {
	return &AssessmentService{
		candidates: candidates,
		answers:    answers,
		generator:  generator,
		runs:       runs,
	}
}

type IntakeInput struct {
	FullName   string
	Email      string
	Phone      string
	Experience int
	Position   string
	Location   string
	TechStack  string
}

var (
	ErrInvalidPosition = errors.New("position is not one of the offered roles")
	ErrRunNotFound     = errors.New("no assessment in progress for this token")
	ErrRunCompleted    = errors.New("assessment already completed")
	ErrRunInProgress   = errors.New("assessment still in progress")
	ErrInvalidOption   = errors.New("selected letter is not one of the options")
	ErrNoQuestions     = errors.New("could not produce a question set")
)

// StartRun persists the candidate and opens a run at question zero. The run
// only comes into existence with a non-empty question set; when generation
// is unavailable the candidate row stays (intake was valid) but no run
// starts.
func (s *AssessmentService) StartRun(ctx context.Context, input IntakeInput) (*session.Run, error) {
	if !models.ValidPosition(input.Position) {
		return nil, ErrInvalidPosition
	}

	candidate := models.Candidate{
		FullName:   input.FullName,
		Email:      input.Email,
		Phone:      input.Phone,
		Experience: input.Experience,
		Position:   input.Position,
		Location:   input.Location,
		TechStack:  input.TechStack,
	}
	if err := s.candidates.Create(&candidate); err != nil {
		return nil, err
	}

	questions, err := s.generator.Generate(ctx, input.TechStack)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	run := &session.Run{
		Token:       uuid.NewString(),
		CandidateID: candidate.ID,
		Questions:   questions,
		Index:       0,
		State:       session.StateInProgress,
		CreatedAt:   time.Now(),
	}
	if err := s.runs.Save(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// GetRun loads the run for a token.
func (s *AssessmentService) GetRun(ctx context.Context, token string) (*session.Run, error) {
	run, err := s.runs.Get(ctx, token)
	if errors.Is(err, session.ErrNotFound) {
		return nil, ErrRunNotFound
	}
	return run, err
}

type SubmitResult struct {
	Correct       bool   `json:"correct"`
	CorrectLetter string `json:"correct_letter"`
	CorrectText   string `json:"correct_text"`
	Completed     bool   `json:"completed"`
	Answered      int    `json:"answered"`
	Total         int    `json:"total"`
}

// SubmitAnswer records the letter chosen for the current question and
// advances the run. The answer row and the cursor move as one step: if the
// insert fails, the run is not re-saved and the same question can be
// retried. The cursor only ever moves forward, so a question is never
// answered twice.
func (s *AssessmentService) SubmitAnswer(ctx context.Context, token, letter string) (*SubmitResult, error) {
	run, err := s.GetRun(ctx, token)
	if err != nil {
		return nil, err
	}
	if run.State == session.StateCompleted {
		return nil, ErrRunCompleted
	}

	question, ok := run.Current()
	if !ok {
		return nil, ErrRunNotFound
	}

	letter = strings.ToUpper(strings.TrimSpace(letter))
	if _, ok := question.Options[letter]; !ok {
		return nil, ErrInvalidOption
	}

	isCorrect := letter == question.Correct
	answer := models.Answer{
		CandidateID:   run.CandidateID,
		Question:      question.Text,
		UserAnswer:    letter,
		CorrectAnswer: question.Correct,
		IsCorrect:     isCorrect,
	}
	if err := s.answers.Create(&answer); err != nil {
		return nil, err
	}

	run.Index++
	if run.Index >= len(run.Questions) {
		run.State = session.StateCompleted
	}
	if err := s.runs.Save(ctx, run); err != nil {
		return nil, err
	}

	return &SubmitResult{
		Correct:       isCorrect,
		CorrectLetter: question.Correct,
		CorrectText:   question.Options[question.Correct],
		Completed:     run.State == session.StateCompleted,
		Answered:      run.Index,
		Total:         len(run.Questions),
	}, nil
}

// Reset discards the run and its token. Candidate and answer rows are kept.
func (s *AssessmentService) Reset(ctx context.Context, token string) error {
	return s.runs.Delete(ctx, token)
}
