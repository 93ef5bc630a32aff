package handlers

import "github.com/K-Mohan-coder/QuizAppz/internal/models"

const (
	adminDashboard       = "/admin/dashboard"
	participantDashboard = "/participant/dashboard"
)

// ErrorResponse carries the user-facing message plus the dashboard route
// the server-rendered UI bounces to on failure.
type ErrorResponse struct {
	Error    string `json:"error" example:"something went wrong"`
	Redirect string `json:"redirect,omitempty" example:"/participant/dashboard"`
}

type MessageResponse struct {
	Message  string `json:"message" example:"operation successful"`
	Redirect string `json:"redirect,omitempty" example:"/login"`
}

// Type aliases so swag can resolve models in annotations.
type Quiz = models.Quiz
type Question = models.Question
type Submission = models.Submission
