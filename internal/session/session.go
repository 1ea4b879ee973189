// Package session implements the quiz progression state machine for one
// authenticated user's run through the question bank. It is a pure state
// machine: the presentation layer translates input events into method calls
// and renders the returned view data, so the machine itself never touches a
// terminal.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lfreitas/quizdeck/internal/quizbank"
)

// Phase is the current state of a running session.
type Phase int

const (
	// PhaseSelecting offers the remaining question titles for choice.
	PhaseSelecting Phase = iota
	// PhaseExplanation shows the focused question's explanatory text.
	PhaseExplanation
	// PhaseOptions shows the focused question's text and options.
	PhaseOptions
	// PhaseFinished is terminal: remaining is empty and the result row
	// has been written.
	PhaseFinished
)

var (
	ErrFinished = errors.New("session already finished")
	ErrNoFocus  = errors.New("no question selected")
)

// AnswerWriter receives one record per submitted answer.
type AnswerWriter interface {
	Append(ctx context.Context, username, question, chosenText string, correct bool) error
}

// ResultWriter receives exactly one record when the session completes.
type ResultWriter interface {
	Append(ctx context.Context, username string, total, score int) error
}

// State is the in-memory state of one quiz run. It exclusively owns its
// remaining-question list and score; nothing here is persisted directly.
type State struct {
	ID       string
	Username string

	total     int
	remaining []quizbank.Question
	score     int
	focus     int // index into remaining; -1 when nothing is focused
	phase     Phase

	answers AnswerWriter
	results ResultWriter
}

// Outcome is the view data returned after an answer is evaluated.
type Outcome struct {
	Correct     bool
	CorrectText string // literal text of the right option
	Score       int
	Total       int
	Finished    bool
}

// New creates a session for username over the given question list. An empty
// list completes immediately: the result row (total 0, score 0) is written
// and the session starts in PhaseFinished.
func New(ctx context.Context, username string, questions []quizbank.Question, answers AnswerWriter, results ResultWriter) (*State, error) {
	s := &State{
		ID:        uuid.NewString(),
		Username:  username,
		total:     len(questions),
		remaining: make([]quizbank.Question, len(questions)),
		focus:     -1,
		phase:     PhaseSelecting,
		answers:   answers,
		results:   results,
	}
	copy(s.remaining, questions)

	if len(s.remaining) == 0 {
		if err := s.finish(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	return s.phase
}

// Score returns the running score.
func (s *State) Score() int {
	return s.score
}

// Total returns the original question count.
func (s *State) Total() int {
	return s.total
}

// Titles lists the not-yet-answered question titles in their current order:
// original bank order minus removed items, never re-sorted.
func (s *State) Titles() []string {
	titles := make([]string, len(s.remaining))
	for i, q := range s.remaining {
		titles[i] = q.Titulo
	}
	return titles
}

// Select focuses the question at position i in the remaining list and moves
// to PhaseExplanation, returning the question for display. Selecting again
// before an option is chosen just moves the focus; nothing is committed
// until Answer.
func (s *State) Select(i int) (quizbank.Question, error) {
	if s.phase == PhaseFinished {
		return quizbank.Question{}, ErrFinished
	}
	if i < 0 || i >= len(s.remaining) {
		return quizbank.Question{}, fmt.Errorf("question index %d out of range [0,%d)", i, len(s.remaining))
	}
	s.focus = i
	s.phase = PhaseExplanation
	return s.remaining[i], nil
}

// ShowOptions moves from the explanation to the answer options of the
// focused question.
func (s *State) ShowOptions() (quizbank.Question, error) {
	if s.phase == PhaseFinished {
		return quizbank.Question{}, ErrFinished
	}
	if s.focus < 0 {
		return quizbank.Question{}, ErrNoFocus
	}
	s.phase = PhaseOptions
	return s.remaining[s.focus], nil
}

// Answer evaluates the chosen option, identified by its 1-based position and
// literal text. The answer record is appended, the score updated, and the
// question removed from the remaining list; it cannot be asked again. When
// the last question is answered the result row is written and the session
// finishes.
func (s *State) Answer(ctx context.Context, pos1 int, chosenText string) (Outcome, error) {
	if s.phase == PhaseFinished {
		return Outcome{}, ErrFinished
	}
	if s.focus < 0 || s.phase != PhaseOptions {
		return Outcome{}, ErrNoFocus
	}

	q := s.remaining[s.focus]
	if pos1 < 1 || pos1 > len(q.Opcoes) {
		return Outcome{}, fmt.Errorf("option %d out of range [1,%d]", pos1, len(q.Opcoes))
	}

	correct := pos1 == q.Resposta
	if err := s.answers.Append(ctx, s.Username, q.Pergunta, chosenText, correct); err != nil {
		return Outcome{}, err
	}
	if correct {
		s.score++
	}

	s.remaining = append(s.remaining[:s.focus], s.remaining[s.focus+1:]...)
	s.focus = -1
	s.phase = PhaseSelecting

	out := Outcome{
		Correct:     correct,
		CorrectText: q.Opcoes[q.Resposta-1],
		Score:       s.score,
		Total:       s.total,
	}

	if len(s.remaining) == 0 {
		if err := s.finish(ctx); err != nil {
			return out, err
		}
		out.Finished = true
	}
	return out, nil
}

// finish writes the single result row and enters the terminal phase.
func (s *State) finish(ctx context.Context) error {
	if err := s.results.Append(ctx, s.Username, s.total, s.score); err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	s.phase = PhaseFinished
	return nil
}
