package handlers

import (
	"net/http"
	"strconv"

	"talentscout-backend/internal/models"
	"talentscout-backend/internal/repository"
	"talentscout-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidates     repository.CandidateRepository
	answers        repository.AnswerRepository
	scoringService *services.ScoringService
}

func NewCandidateHandler(
	candidates repository.CandidateRepository,
	answers repository.AnswerRepository,
	scoringService *services.ScoringService,
) *CandidateHandler {
	return &CandidateHandler{
		candidates:     candidates,
		answers:        answers,
		scoringService: scoringService,
	}
}

// List godoc
// @Summary      List candidates
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Candidate
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidates.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, candidates)
}

type CandidateReport struct {
	Candidate models.Candidate `json:"candidate"`
	Score     services.Score   `json:"score"`
	Answers   []models.Answer  `json:"answers"`
}

// Report godoc
// @Summary      Candidate assessment report
// @Description  Candidate record with score summary and every recorded answer
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Candidate ID"
// @Success      200 {object} CandidateReport
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/candidates/{id}/report [get]
func (h *CandidateHandler) Report(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid candidate id"})
		return
	}

	candidate, err := h.candidates.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "candidate not found"})
		return
	}

	score, err := h.scoringService.Score(candidate.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	answers, err := h.answers.ListByCandidate(candidate.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, CandidateReport{
		Candidate: *candidate,
		Score:     score,
		Answers:   answers,
	})
}
