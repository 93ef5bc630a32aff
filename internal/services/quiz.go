package services

import (
	"errors"

	"github.com/K-Mohan-coder/QuizAppz/internal/models"
	"github.com/K-Mohan-coder/QuizAppz/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrQuizNotFound  = errors.New("quiz not found")
	ErrMissingQuizID = errors.New("question has no quiz id")
)

// QuizService covers admin authoring: quiz and question upserts plus the
// reads backing the dashboards. Question content is accepted as-is; there
// is no check that the correct answer appears among the options.
type QuizService struct {
	quizzes   repository.QuizRepository
	questions repository.QuestionRepository
}

func NewQuizService(quizzes repository.QuizRepository, questions repository.QuestionRepository) *QuizService {
	return &QuizService{quizzes: quizzes, questions: questions}
}

func (s *QuizService) SaveQuiz(quiz *models.Quiz) error {
	return s.quizzes.Save(quiz)
}

func (s *QuizService) SaveQuestion(question *models.Question) error {
	if question.QuizID == 0 {
		return ErrMissingQuizID
	}

	exists, err := s.quizzes.ExistsByID(question.QuizID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrQuizNotFound
	}

	return s.questions.Save(question)
}

func (s *QuizService) ListQuizzes() ([]models.Quiz, error) {
	return s.quizzes.FindAll()
}

func (s *QuizService) GetQuiz(id uint) (*models.Quiz, error) {
	quiz, err := s.quizzes.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) QuestionsForQuiz(quizID uint) ([]models.Question, error) {
	return s.questions.FindByQuizID(quizID)
}
