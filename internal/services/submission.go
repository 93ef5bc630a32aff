package services

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/K-Mohan-coder/QuizAppz/internal/models"
	"github.com/K-Mohan-coder/QuizAppz/internal/repository"

	"gorm.io/gorm"
)

var ErrNoQuestions = errors.New("no questions available for this quiz")

// answerKeyPrefix marks the form fields that carry answers. Anything not
// shaped like question_<id> is ignored.
const answerKeyPrefix = "question_"

// Result is everything the result view needs after a successful submit.
type Result struct {
	Quiz           *models.Quiz      `json:"quiz"`
	Questions      []models.Question `json:"questions"`
	Answers        map[uint]string   `json:"answers"`
	Score          int               `json:"score"`
	TotalQuestions int               `json:"total_questions"`
}

type SubmissionService struct {
	quizzes     repository.QuizRepository
	questions   repository.QuestionRepository
	submissions repository.SubmissionRepository
	users       repository.UserRepository
}

func NewSubmissionService(
	quizzes repository.QuizRepository,
	questions repository.QuestionRepository,
	submissions repository.SubmissionRepository,
	users repository.UserRepository,
) *SubmissionService {
	return &SubmissionService{
		quizzes:     quizzes,
		questions:   questions,
		submissions: submissions,
		users:       users,
	}
}

// QuizForAttempt loads a quiz and its questions for a participant about to
// take it. A quiz with no questions cannot be attempted.
func (s *SubmissionService) QuizForAttempt(quizID uint) (*models.Quiz, []models.Question, error) {
	quiz, err := s.quizzes.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrQuizNotFound
		}
		return nil, nil, err
	}

	questions, err := s.questions.FindByQuizID(quizID)
	if err != nil {
		return nil, nil, err
	}
	if len(questions) == 0 {
		return nil, nil, ErrNoQuestions
	}

	return quiz, questions, nil
}

// Submit validates the quiz, extracts well-formed answers from the raw
// field map, scores them against the quiz's questions and appends exactly
// one Submission. Malformed or unknown answer keys are dropped without
// failing the whole submission; a failed save aborts and no result is
// returned.
func (s *SubmissionService) Submit(quizID uint, raw map[string]string, principal Principal) (*Result, error) {
	quiz, err := s.quizzes.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	answers := s.ExtractAnswers(raw)

	questions, err := s.questions.FindByQuizID(quizID)
	if err != nil {
		return nil, fmt.Errorf("load questions for quiz %d: %w", quizID, err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	score := 0
	for _, question := range questions {
		answer, ok := answers[question.ID]
		if ok && answer == question.CorrectAnswer {
			score++
		}
	}

	submission := &models.Submission{
		QuizID:      quizID,
		UserID:      s.resolveUserID(principal),
		Score:       score,
		Answers:     serializeAnswers(answers),
		AttemptTime: time.Now(),
	}
	if err := s.submissions.Save(submission); err != nil {
		return nil, fmt.Errorf("save submission for quiz %d: %w", quizID, err)
	}

	return &Result{
		Quiz:           quiz,
		Questions:      questions,
		Answers:        answers,
		Score:          score,
		TotalQuestions: len(questions),
	}, nil
}

// ExtractAnswers folds the raw field map into a validated question-id →
// answer map before any scoring happens. Keys that do not parse or that
// reference an unknown question are dropped and logged, never fatal.
func (s *SubmissionService) ExtractAnswers(raw map[string]string) map[uint]string {
	answers := make(map[uint]string)
	for key, value := range raw {
		if !strings.HasPrefix(key, answerKeyPrefix) {
			continue
		}

		id, err := strconv.ParseUint(strings.TrimPrefix(key, answerKeyPrefix), 10, 64)
		if err != nil {
			log.Printf("dropping answer with invalid question id key %q: %v", key, err)
			continue
		}

		exists, err := s.questions.ExistsByID(uint(id))
		if err != nil || !exists {
			log.Printf("dropping answer for unknown question id %d", id)
			continue
		}

		answers[uint(id)] = value
	}
	return answers
}

// History lists the principal's past submissions, newest first.
func (s *SubmissionService) History(principal Principal) ([]models.Submission, error) {
	return s.submissions.FindByUserID(s.resolveUserID(principal))
}

// resolveUserID attributes the submission to the authenticated user. If the
// principal is absent or the user row is gone mid-session, fall back to 0
// rather than blocking the submission.
func (s *SubmissionService) resolveUserID(principal Principal) uint {
	if !principal.Authenticated {
		return 0
	}
	user, err := s.users.FindByUsername(principal.Username)
	if err != nil {
		log.Printf("could not resolve user %q for submission: %v", principal.Username, err)
		return 0
	}
	return user.ID
}

// serializeAnswers renders the accepted answers as a stable human-readable
// snapshot, ordered by question id. Not meant to be parsed back.
func serializeAnswers(answers map[uint]string) string {
	ids := make([]uint, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	b.WriteString("{")
	for i, id := range ids {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d=%s", id, answers[id])
	}
	b.WriteString("}")
	return b.String()
}
