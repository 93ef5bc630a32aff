package repository

import (
	"github.com/K-Mohan-coder/QuizAppz/internal/models"

	"gorm.io/gorm"
)

type gormQuizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &gormQuizRepository{db: db}
}

func (r *gormQuizRepository) FindByID(id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *gormQuizRepository) FindAll() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := r.db.Order("created_at DESC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *gormQuizRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Quiz{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormQuizRepository) Save(quiz *models.Quiz) error {
	return r.db.Save(quiz).Error
}

type gormQuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &gormQuestionRepository{db: db}
}

func (r *gormQuestionRepository) FindByID(id uint) (*models.Question, error) {
	var question models.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *gormQuestionRepository) FindByQuizID(quizID uint) ([]models.Question, error) {
	var questions []models.Question
	if err := r.db.Where("quiz_id = ?", quizID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *gormQuestionRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Question{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormQuestionRepository) Save(question *models.Question) error {
	return r.db.Save(question).Error
}

type gormSubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &gormSubmissionRepository{db: db}
}

func (r *gormSubmissionRepository) Save(submission *models.Submission) error {
	return r.db.Create(submission).Error
}

func (r *gormSubmissionRepository) FindAll() ([]models.Submission, error) {
	var submissions []models.Submission
	if err := r.db.Order("attempt_time DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *gormSubmissionRepository) FindByUserID(userID uint) ([]models.Submission, error) {
	var submissions []models.Submission
	if err := r.db.Where("user_id = ?", userID).Order("attempt_time DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

type gormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormUserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}
