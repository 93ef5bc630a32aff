package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/K-Mohan-coder/QuizAppz/internal/middleware"
	"github.com/K-Mohan-coder/QuizAppz/internal/models"
	"github.com/K-Mohan-coder/QuizAppz/internal/repository"
	"github.com/K-Mohan-coder/QuizAppz/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testAPI struct {
	router *gin.Engine
	auth   *services.AuthService
	db     *gorm.DB
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Named in-memory database so every pooled connection sees the same
	// tables, isolated per test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Quiz{}, &models.Question{}, &models.Submission{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	quizRepo := repository.NewQuizRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	userRepo := repository.NewUserRepository(db)

	authService := services.NewAuthService(userRepo, "test-secret")
	quizService := services.NewQuizService(quizRepo, questionRepo)
	submissionService := services.NewSubmissionService(quizRepo, questionRepo, submissionRepo, userRepo)

	authHandler := NewAuthHandler(authService)
	adminHandler := NewAdminHandler(quizService)
	participantHandler := NewParticipantHandler(quizService, submissionService)

	r := gin.New()
	r.Use(middleware.RequestID())

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		api.GET("/dashboard", middleware.JWTAuth(authService), authHandler.Dashboard)

		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth(authService), middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.POST("/quizzes", adminHandler.SaveQuiz)
			admin.GET("/quizzes/:id/questions", adminHandler.ManageQuestions)
			admin.POST("/questions", adminHandler.SaveQuestion)
		}

		participant := api.Group("/participant")
		participant.Use(middleware.JWTAuth(authService), middleware.RequireRole(models.RoleParticipant))
		{
			participant.GET("/dashboard", participantHandler.Dashboard)
			participant.GET("/quizzes/:id", participantHandler.TakeQuiz)
			participant.POST("/quizzes/:id/submit", participantHandler.SubmitQuiz)
			participant.GET("/submissions", participantHandler.History)
		}
	}

	return &testAPI{router: r, auth: authService, db: db}
}

func (a *testAPI) token(t *testing.T, username string, role models.Role) string {
	t.Helper()
	if _, err := a.auth.Register(username, "password123", string(role)); err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	token, _, err := a.auth.Login(username, "password123")
	if err != nil {
		t.Fatalf("login %s: %v", username, err)
	}
	return token
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestRoleGuards(t *testing.T) {
	api := newTestAPI(t)
	adminToken := api.token(t, "root", models.RoleAdmin)
	participantToken := api.token(t, "alice", models.RoleParticipant)

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"no token", "/api/v1/admin/dashboard", "", http.StatusUnauthorized},
		{"participant on admin route", "/api/v1/admin/dashboard", participantToken, http.StatusForbidden},
		{"admin on admin route", "/api/v1/admin/dashboard", adminToken, http.StatusOK},
		{"admin on participant route", "/api/v1/participant/dashboard", adminToken, http.StatusForbidden},
		{"participant on participant route", "/api/v1/participant/dashboard", participantToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(t, http.MethodGet, tt.path, tt.token, nil)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.status, w.Body.String())
			}
		})
	}
}

func TestLoginReturnsRoleDestination(t *testing.T) {
	api := newTestAPI(t)
	api.token(t, "root", models.RoleAdmin)

	w := api.do(t, http.MethodPost, "/api/v1/auth/login", "", LoginRequest{Username: "root", Password: "password123"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Redirect != "/admin/dashboard" {
		t.Errorf("redirect = %q, want /admin/dashboard", resp.Redirect)
	}
	if resp.Token == "" {
		t.Error("token is empty")
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/auth/register", "", RegisterRequest{
		Username: "bob",
		Password: "password123",
		Role:     "superuser",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestAuthoringAndSubmissionFlow(t *testing.T) {
	api := newTestAPI(t)
	adminToken := api.token(t, "root", models.RoleAdmin)
	participantToken := api.token(t, "alice", models.RoleParticipant)

	w := api.do(t, http.MethodPost, "/api/v1/admin/quizzes", adminToken, SaveQuizRequest{
		Title:       "Capitals",
		Description: "Two questions",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("save quiz status = %d, body %s", w.Code, w.Body.String())
	}
	var quiz models.Quiz
	if err := json.Unmarshal(w.Body.Bytes(), &quiz); err != nil {
		t.Fatalf("decode quiz: %v", err)
	}

	var questionIDs []uint
	for _, q := range []SaveQuestionRequest{
		{QuizID: quiz.ID, Text: "Capital of France?", Options: []string{"Paris", "London"}, CorrectAnswer: "Paris"},
		{QuizID: quiz.ID, Text: "Capital of Japan?", Options: []string{"Tokyo", "Kyoto"}, CorrectAnswer: "Tokyo"},
	} {
		w := api.do(t, http.MethodPost, "/api/v1/admin/questions", adminToken, q)
		if w.Code != http.StatusCreated {
			t.Fatalf("save question status = %d, body %s", w.Code, w.Body.String())
		}
		var saved models.Question
		if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
			t.Fatalf("decode question: %v", err)
		}
		questionIDs = append(questionIDs, saved.ID)
	}

	raw := map[string]string{
		fmt.Sprintf("question_%d", questionIDs[0]): "Paris",
		fmt.Sprintf("question_%d", questionIDs[1]): "Kyoto",
		"question_9999": "X",
		"csrf":          "token",
	}
	w = api.do(t, http.MethodPost, fmt.Sprintf("/api/v1/participant/quizzes/%d/submit", quiz.ID), participantToken, raw)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d, body %s", w.Code, w.Body.String())
	}

	var result services.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Score != 1 || result.TotalQuestions != 2 {
		t.Errorf("score = %d/%d, want 1/2", result.Score, result.TotalQuestions)
	}
	if len(result.Answers) != 2 {
		t.Errorf("accepted answers = %v, want the two real questions", result.Answers)
	}

	w = api.do(t, http.MethodGet, "/api/v1/participant/submissions", participantToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("history status = %d", w.Code)
	}
	var history []models.Submission
	if err := json.Unmarshal(w.Body.Bytes(), &history); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history has %d entries, want 1", len(history))
	}
	if history[0].Score != 1 {
		t.Errorf("recorded score = %d, want 1", history[0].Score)
	}
}

func TestSubmitMissingQuizRedirects(t *testing.T) {
	api := newTestAPI(t)
	participantToken := api.token(t, "alice", models.RoleParticipant)

	w := api.do(t, http.MethodPost, "/api/v1/participant/quizzes/42/submit", participantToken, map[string]string{})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 (body %s)", w.Code, w.Body.String())
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Redirect != participantDashboard {
		t.Errorf("redirect = %q, want %q", resp.Redirect, participantDashboard)
	}

	var count int64
	api.db.Model(&models.Submission{}).Count(&count)
	if count != 0 {
		t.Errorf("submissions written = %d, want 0", count)
	}
}

func TestSaveQuestionWithoutQuiz(t *testing.T) {
	api := newTestAPI(t)
	adminToken := api.token(t, "root", models.RoleAdmin)

	w := api.do(t, http.MethodPost, "/api/v1/admin/questions", adminToken, SaveQuestionRequest{
		QuizID:        42,
		Text:          "dangling",
		CorrectAnswer: "A",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 (body %s)", w.Code, w.Body.String())
	}

	var count int64
	api.db.Model(&models.Question{}).Count(&count)
	if count != 0 {
		t.Errorf("questions written = %d, want 0", count)
	}
}

func TestTakeQuizWithoutQuestions(t *testing.T) {
	api := newTestAPI(t)
	adminToken := api.token(t, "root", models.RoleAdmin)
	participantToken := api.token(t, "alice", models.RoleParticipant)

	w := api.do(t, http.MethodPost, "/api/v1/admin/quizzes", adminToken, SaveQuizRequest{Title: "Empty"})
	if w.Code != http.StatusCreated {
		t.Fatalf("save quiz status = %d", w.Code)
	}
	var quiz models.Quiz
	if err := json.Unmarshal(w.Body.Bytes(), &quiz); err != nil {
		t.Fatalf("decode quiz: %v", err)
	}

	w = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/participant/quizzes/%d", quiz.ID), participantToken, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
	}
}

func TestDashboardDestination(t *testing.T) {
	api := newTestAPI(t)
	participantToken := api.token(t, "alice", models.RoleParticipant)

	w := api.do(t, http.MethodGet, "/api/v1/dashboard", participantToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp MessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Redirect != participantDashboard {
		t.Errorf("redirect = %q, want %q", resp.Redirect, participantDashboard)
	}
}
