package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/K-Mohan-coder/QuizAppz/internal/models"
	"github.com/K-Mohan-coder/QuizAppz/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	quizService *services.QuizService
}

func NewAdminHandler(quizService *services.QuizService) *AdminHandler {
	return &AdminHandler{quizService: quizService}
}

type SaveQuizRequest struct {
	ID          uint   `json:"id" example:"0"`
	Title       string `json:"title" binding:"required,min=1,max=255" example:"General Knowledge"`
	Description string `json:"description" example:"Ten questions, no time limit"`
}

type SaveQuestionRequest struct {
	ID            uint     `json:"id" example:"0"`
	QuizID        uint     `json:"quiz_id" binding:"required" example:"1"`
	Text          string   `json:"text" binding:"required" example:"What is the capital of France?"`
	Options       []string `json:"options" example:"Paris,London,Berlin,Madrid"`
	CorrectAnswer string   `json:"correct_answer" example:"Paris"`
}

type ManageQuestionsResponse struct {
	Quiz      Quiz       `json:"quiz"`
	Questions []Question `json:"questions"`
}

// Dashboard godoc
// @Summary      Admin dashboard
// @Description  List all quizzes for authoring
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Quiz
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "unable to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

// SaveQuiz godoc
// @Summary      Save a quiz
// @Description  Create a quiz, or overwrite it in place when an id is supplied
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SaveQuizRequest true "Quiz data"
// @Success      201 {object} Quiz
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/admin/quizzes [post]
func (h *AdminHandler) SaveQuiz(c *gin.Context) {
	var req SaveQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quiz := models.Quiz{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.quizService.SaveQuiz(&quiz); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save quiz", Redirect: adminDashboard})
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

// ManageQuestions godoc
// @Summary      Manage a quiz's questions
// @Description  Get a quiz with its question list for editing
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} ManageQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/quizzes/{id}/questions [get]
func (h *AdminHandler) ManageQuestions(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	quiz, err := h.quizService.GetQuiz(uint(quizID))
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "the requested quiz could not be found", Redirect: adminDashboard})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "unable to load questions", Redirect: adminDashboard})
		return
	}

	questions, err := h.quizService.QuestionsForQuiz(uint(quizID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "unable to load questions", Redirect: adminDashboard})
		return
	}

	c.JSON(http.StatusOK, ManageQuestionsResponse{Quiz: *quiz, Questions: questions})
}

// SaveQuestion godoc
// @Summary      Save a question
// @Description  Create or overwrite a question; its quiz must already exist
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SaveQuestionRequest true "Question data"
// @Success      201 {object} Question
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/questions [post]
func (h *AdminHandler) SaveQuestion(c *gin.Context) {
	var req SaveQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question := models.Question{
		ID:            req.ID,
		QuizID:        req.QuizID,
		Text:          req.Text,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
	}
	if err := h.quizService.SaveQuestion(&question); err != nil {
		switch {
		case errors.Is(err, services.ErrMissingQuizID):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quiz id is missing", Redirect: adminDashboard})
		case errors.Is(err, services.ErrQuizNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "the associated quiz could not be found", Redirect: adminDashboard})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save question", Redirect: adminDashboard})
		}
		return
	}

	c.JSON(http.StatusCreated, question)
}
