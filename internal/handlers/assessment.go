package handlers

import (
	"errors"
	"net/http"

	"talentscout-backend/internal/services"
	"talentscout-backend/internal/session"

	"github.com/gin-gonic/gin"
)

type AssessmentHandler struct {
	assessmentService *services.AssessmentService
	scoringService    *services.ScoringService
}

func NewAssessmentHandler(assessmentService *services.AssessmentService, scoringService *services.ScoringService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
		scoringService:    scoringService,
	}
}

type IntakeRequest struct {
	FullName   string `json:"full_name" binding:"required" example:"Jane Doe"`
	Email      string `json:"email" binding:"required,email" example:"jane@example.com"`
	Phone      string `json:"phone" binding:"required" example:"+1 555 0100"`
	Experience int    `json:"experience" binding:"gte=0" example:"4"`
	Position   string `json:"position" binding:"required" example:"Backend Developer"`
	Location   string `json:"location" binding:"required" example:"Berlin"`
	TechStack  string `json:"tech_stack" binding:"required" example:"Python, Django, PostgreSQL"`
}

type QuestionResponse struct {
	Number  int               `json:"number"`
	Total   int               `json:"total"`
	Text    string            `json:"text"`
	Options map[string]string `json:"options"`
}

type IntakeResponse struct {
	RunToken string           `json:"run_token"`
	Question QuestionResponse `json:"question"`
}

type AnswerRequest struct {
	Answer string `json:"answer" binding:"required,len=1" example:"C"`
}

// questionResponse shapes the run's current question for the applicant.
// The correct letter stays server-side until the answer is submitted.
func questionResponse(run *session.Run) (QuestionResponse, bool) {
	q, ok := run.Current()
	if !ok {
		return QuestionResponse{}, false
	}
	return QuestionResponse{
		Number:  run.Index + 1,
		Total:   len(run.Questions),
		Text:    q.Text,
		Options: q.Options,
	}, true
}

// Intake godoc
// @Summary      Submit the intake form and start an assessment
// @Description  Persists the candidate, generates the question set and opens a run
// @Tags         assessment
// @Accept       json
// @Produce      json
// @Param        request body IntakeRequest true "Candidate details"
// @Success      201 {object} IntakeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /api/v1/assessment/intake [post]
func (h *AssessmentHandler) Intake(c *gin.Context) {
	var req IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	run, err := h.assessmentService.StartRun(c.Request.Context(), services.IntakeInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Experience: req.Experience,
		Position:   req.Position,
		Location:   req.Location,
		TechStack:  req.TechStack,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidPosition) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "could not start assessment: " + err.Error()})
		return
	}

	question, _ := questionResponse(run)
	c.JSON(http.StatusCreated, IntakeResponse{RunToken: run.Token, Question: question})
}

// CurrentQuestion godoc
// @Summary      Get the current question of the run
// @Tags         assessment
// @Produce      json
// @Param        X-Run-Token header string true "Run token"
// @Success      200 {object} QuestionResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/assessment/question [get]
func (h *AssessmentHandler) CurrentQuestion(c *gin.Context) {
	run, err := h.assessmentService.GetRun(c.Request.Context(), c.GetString("run_token"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	question, ok := questionResponse(run)
	if !ok {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "assessment already completed"})
		return
	}
	c.JSON(http.StatusOK, question)
}

// SubmitAnswer godoc
// @Summary      Submit the answer to the current question
// @Description  Records one answer row and advances the run by one question
// @Tags         assessment
// @Accept       json
// @Produce      json
// @Param        X-Run-Token header string true "Run token"
// @Param        request body AnswerRequest true "Selected option letter"
// @Success      200 {object} services.SubmitResult
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/assessment/answer [post]
func (h *AssessmentHandler) SubmitAnswer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.assessmentService.SubmitAnswer(c.Request.Context(), c.GetString("run_token"), req.Answer)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, result)
	case errors.Is(err, services.ErrRunNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrRunCompleted):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidOption):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not record answer: " + err.Error()})
	}
}

type ResultResponse struct {
	Total      int     `json:"total"`
	Correct    int     `json:"correct"`
	Percentage float64 `json:"percentage"`
}

// Result godoc
// @Summary      Get the score summary for a completed run
// @Tags         assessment
// @Produce      json
// @Param        X-Run-Token header string true "Run token"
// @Success      200 {object} ResultResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/assessment/result [get]
func (h *AssessmentHandler) Result(c *gin.Context) {
	run, err := h.assessmentService.GetRun(c.Request.Context(), c.GetString("run_token"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	if run.State != session.StateCompleted {
		c.JSON(http.StatusConflict, ErrorResponse{Error: services.ErrRunInProgress.Error()})
		return
	}

	score, err := h.scoringService.Score(run.CandidateID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, ResultResponse(score))
}

// Reset godoc
// @Summary      Discard the run
// @Description  Clears the transient run state; candidate and answer rows are kept
// @Tags         assessment
// @Produce      json
// @Param        X-Run-Token header string true "Run token"
// @Success      200 {object} MessageResponse
// @Router       /api/v1/assessment/reset [post]
func (h *AssessmentHandler) Reset(c *gin.Context) {
	if err := h.assessmentService.Reset(c.Request.Context(), c.GetString("run_token")); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "assessment reset"})
}
