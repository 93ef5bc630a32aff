package models

import "time"

// Submission is an append-only record of one attempt at one quiz. It is
// created exactly once per submit and never updated. Answers holds a
// human-readable snapshot of the accepted answers, not a parseable format.
type Submission struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	QuizID      uint      `gorm:"not null;index" json:"quiz_id"`
	Score       int       `gorm:"not null" json:"score"`
	Answers     string    `gorm:"type:text" json:"answers"`
	AttemptTime time.Time `gorm:"not null" json:"attempt_time"`
}
