package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/K-Mohan-coder/QuizAppz/internal/middleware"
	"github.com/K-Mohan-coder/QuizAppz/internal/services"

	"github.com/gin-gonic/gin"
)

type ParticipantHandler struct {
	quizService       *services.QuizService
	submissionService *services.SubmissionService
}

func NewParticipantHandler(quizService *services.QuizService, submissionService *services.SubmissionService) *ParticipantHandler {
	return &ParticipantHandler{quizService: quizService, submissionService: submissionService}
}

type TakeQuizResponse struct {
	Quiz      Quiz       `json:"quiz"`
	Questions []Question `json:"questions"`
}

// Dashboard godoc
// @Summary      Participant dashboard
// @Description  List the quizzes available to take
// @Tags         participant
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Quiz
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/participant/dashboard [get]
func (h *ParticipantHandler) Dashboard(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "unable to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

// TakeQuiz godoc
// @Summary      Start a quiz
// @Description  Get a quiz with its questions for taking
// @Tags         participant
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} TakeQuizResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/participant/quizzes/{id} [get]
func (h *ParticipantHandler) TakeQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	quiz, questions, err := h.submissionService.QuizForAttempt(uint(quizID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuizNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "quiz not found", Redirect: participantDashboard})
		case errors.Is(err, services.ErrNoQuestions):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no questions available for this quiz", Redirect: participantDashboard})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "unable to load quiz", Redirect: participantDashboard})
		}
		return
	}

	c.JSON(http.StatusOK, TakeQuizResponse{Quiz: *quiz, Questions: questions})
}

// SubmitQuiz godoc
// @Summary      Submit quiz answers
// @Description  Score the submitted answers and record the attempt. The body
// @Description  is a flat field map; only keys shaped like question_<id> are
// @Description  read, everything else is ignored.
// @Tags         participant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Param        request body map[string]string true "Raw answer fields"
// @Success      200 {object} services.Result
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/participant/quizzes/{id}/submit [post]
func (h *ParticipantHandler) SubmitQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	var raw map[string]string
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	principal := middleware.GetPrincipal(c)
	result, err := h.submissionService.Submit(uint(quizID), raw, principal)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuizNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "quiz not found", Redirect: participantDashboard})
		case errors.Is(err, services.ErrNoQuestions):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no questions available to score", Redirect: participantDashboard})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "unable to process quiz submission", Redirect: participantDashboard})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// History godoc
// @Summary      List own submissions
// @Description  Past attempts of the authenticated participant, newest first
// @Tags         participant
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Submission
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/participant/submissions [get]
func (h *ParticipantHandler) History(c *gin.Context) {
	principal := middleware.GetPrincipal(c)

	submissions, err := h.submissionService.History(principal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "unable to load submissions"})
		return
	}

	c.JSON(http.StatusOK, submissions)
}
