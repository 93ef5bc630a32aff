package repository

import "github.com/K-Mohan-coder/QuizAppz/internal/models"

// Per-entity store contracts. Find* methods surface gorm.ErrRecordNotFound
// when the row is absent; callers map that to their own sentinels.

type QuizRepository interface {
	FindByID(id uint) (*models.Quiz, error)
	FindAll() ([]models.Quiz, error)
	ExistsByID(id uint) (bool, error)
	// Save upserts: a zero ID inserts and assigns identity, a set ID
	// overwrites the existing row in place.
	Save(quiz *models.Quiz) error
}

type QuestionRepository interface {
	FindByID(id uint) (*models.Question, error)
	FindByQuizID(quizID uint) ([]models.Question, error)
	ExistsByID(id uint) (bool, error)
	Save(question *models.Question) error
}

type SubmissionRepository interface {
	Save(submission *models.Submission) error
	FindAll() ([]models.Submission, error)
	FindByUserID(userID uint) ([]models.Submission, error)
}

type UserRepository interface {
	FindByUsername(username string) (*models.User, error)
	ExistsByUsername(username string) (bool, error)
	Save(user *models.User) error
}
