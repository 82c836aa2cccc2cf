package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"talentscout-backend/internal/mcq"
	"talentscout-backend/internal/middleware"
	"talentscout-backend/internal/models"
	"talentscout-backend/internal/services"
	"talentscout-backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	questions []mcq.Question
	err       error
}

func (s *stubGenerator) Generate(context.Context, string) ([]mcq.Question, error) {
	return s.questions, s.err
}

type memCandidateRepo struct {
	candidates []models.Candidate
}

func (m *memCandidateRepo) Create(c *models.Candidate) error {
	c.ID = uint(len(m.candidates) + 1)
	c.CreatedAt = time.Now()
	m.candidates = append(m.candidates, *c)
	return nil
}

func (m *memCandidateRepo) GetByID(id uint) (*models.Candidate, error) {
	for i := range m.candidates {
		if m.candidates[i].ID == id {
			return &m.candidates[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (m *memCandidateRepo) List() ([]models.Candidate, error) {
	return m.candidates, nil
}

type memAnswerRepo struct {
	answers []models.Answer
}

func (m *memAnswerRepo) Create(a *models.Answer) error {
	a.ID = uint(len(m.answers) + 1)
	a.CreatedAt = time.Now()
	m.answers = append(m.answers, *a)
	return nil
}

func (m *memAnswerRepo) ListByCandidate(candidateID uint) ([]models.Answer, error) {
	var result []models.Answer
	for _, a := range m.answers {
		if a.CandidateID == candidateID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *memAnswerRepo) AggregateByCandidate(candidateID uint) (int, int, error) {
	total, correct := 0, 0
	for _, a := range m.answers {
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

func newTestRouter(gen services.QuestionGenerator) (*gin.Engine, *memAnswerRepo) {
	gin.SetMode(gin.TestMode)

	candidateRepo := &memCandidateRepo{}
	answerRepo := &memAnswerRepo{}
	scoringService := services.NewScoringService(answerRepo)
	assessmentService := services.NewAssessmentService(candidateRepo, answerRepo, gen, session.NewMemoryStore())
	handler := NewAssessmentHandler(assessmentService, scoringService)

	r := gin.New()
	api := r.Group("/api/v1/assessment")
	api.POST("/intake", handler.Intake)

	run := api.Group("")
	run.Use(middleware.RunToken())
	run.GET("/question", handler.CurrentQuestion)
	run.POST("/answer", handler.SubmitAnswer)
	run.GET("/result", handler.Result)
	run.POST("/reset", handler.Reset)

	return r, answerRepo
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Run-Token", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func intakeBody() map[string]interface{} {
	return map[string]interface{}{
		"full_name":  "Jane Doe",
		"email":      "jane@example.com",
		"phone":      "+1 555 0100",
		"experience": 4,
		"position":   "Backend Developer",
		"location":   "Berlin",
		"tech_stack": "Python, Django",
	}
}

func TestAssessmentFlow(t *testing.T) {
	r, answerRepo := newTestRouter(&stubGenerator{questions: mcq.Fallback()})

	w := doJSON(r, http.MethodPost, "/api/v1/assessment/intake", "", intakeBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var intake IntakeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &intake))
	require.NotEmpty(t, intake.RunToken)
	assert.Equal(t, 1, intake.Question.Number)
	assert.Equal(t, 5, intake.Question.Total)
	assert.NotEmpty(t, intake.Question.Text)
	assert.Len(t, intake.Question.Options, 4)

	// Fallback bank answer key, with the last one answered wrong.
	letters := []string{"B", "C", "A", "C", "D"}
	for i, letter := range letters {
		w = doJSON(r, http.MethodPost, "/api/v1/assessment/answer", intake.RunToken, map[string]string{"answer": letter})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var result services.SubmitResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, i < 4, result.Correct)
		assert.Equal(t, i == 4, result.Completed)
	}

	w = doJSON(r, http.MethodGet, "/api/v1/assessment/result", intake.RunToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result ResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 4, result.Correct)
	assert.InDelta(t, 80.0, result.Percentage, 0.001)

	require.Len(t, answerRepo.answers, 5)

	// Reset discards the run but not the rows.
	w = doJSON(r, http.MethodPost, "/api/v1/assessment/reset", intake.RunToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/assessment/question", intake.RunToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, answerRepo.answers, 5)
}

func TestIntakeValidation(t *testing.T) {
	r, _ := newTestRouter(&stubGenerator{questions: mcq.Fallback()})

	tests := []struct {
		name   string
		mutate func(map[string]interface{})
		want   int
	}{
		{"missing name", func(b map[string]interface{}) { delete(b, "full_name") }, http.StatusBadRequest},
		{"bad email", func(b map[string]interface{}) { b["email"] = "not-an-email" }, http.StatusBadRequest},
		{"negative experience", func(b map[string]interface{}) { b["experience"] = -1 }, http.StatusBadRequest},
		{"unknown position", func(b map[string]interface{}) { b["position"] = "Wizard" }, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := intakeBody()
			tt.mutate(body)
			w := doJSON(r, http.MethodPost, "/api/v1/assessment/intake", "", body)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestIntakeGenerationUnavailable(t *testing.T) {
	r, _ := newTestRouter(&stubGenerator{err: errors.New("text generation is not configured")})

	w := doJSON(r, http.MethodPost, "/api/v1/assessment/intake", "", intakeBody())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestQuestionRequiresRunToken(t *testing.T) {
	r, _ := newTestRouter(&stubGenerator{questions: mcq.Fallback()})

	w := doJSON(r, http.MethodGet, "/api/v1/assessment/question", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestResultBeforeCompletion(t *testing.T) {
	r, _ := newTestRouter(&stubGenerator{questions: mcq.Fallback()})

	w := doJSON(r, http.MethodPost, "/api/v1/assessment/intake", "", intakeBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var intake IntakeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &intake))

	w = doJSON(r, http.MethodGet, "/api/v1/assessment/result", intake.RunToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAnswerRejectsUnknownLetter(t *testing.T) {
	r, answerRepo := newTestRouter(&stubGenerator{questions: mcq.Fallback()})

	w := doJSON(r, http.MethodPost, "/api/v1/assessment/intake", "", intakeBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var intake IntakeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &intake))

	w = doJSON(r, http.MethodPost, "/api/v1/assessment/answer", intake.RunToken, map[string]string{"answer": "E"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, answerRepo.answers)
}
