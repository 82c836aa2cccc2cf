// Package mcq turns free-form model output into validated multiple-choice
// questions and carries the static fallback set used when generation yields
// too little.
package mcq

import "errors"

// MaxQuestions caps a question set; anything past the first five accepted
// questions is dropped.
const MaxQuestions = 5

// MinQuestions is the floor below which a generated set is discarded
// wholesale in favor of the fallback bank.
const MinQuestions = 3

// Question is one multiple-choice item. Options maps an uppercase letter
// (A-D) to its text; Correct must be a key of Options.
type Question struct {
	Text    string            `json:"text"`
	Options map[string]string `json:"options"`
	Correct string            `json:"correct"`
}

var (
	ErrEmptyText      = errors.New("question text is empty")
	ErrTooFewOptions  = errors.New("question needs at least two options")
	ErrCorrectMissing = errors.New("correct letter is not among the options")
)

// Validate checks the structural invariants every question must satisfy
// before it may be presented.
func (q Question) Validate() error {
	if q.Text == "" {
		return ErrEmptyText
	}
	if len(q.Options) < 2 {
		return ErrTooFewOptions
	}
	if _, ok := q.Options[q.Correct]; !ok {
		return ErrCorrectMissing
	}
	return nil
}
