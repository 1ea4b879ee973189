package session

import (
	"context"
	"testing"

	"github.com/lfreitas/quizdeck/internal/quizbank"
)

type recordedAnswer struct {
	Username string
	Question string
	Chosen   string
	Correct  bool
}

type recordedResult struct {
	Username string
	Total    int
	Score    int
}

// fakeLedger captures ledger writes in memory.
type fakeLedger struct {
	answers []recordedAnswer
	results []recordedResult
}

func (f *fakeLedger) Append(ctx context.Context, username, question, chosenText string, correct bool) error {
	f.answers = append(f.answers, recordedAnswer{username, question, chosenText, correct})
	return nil
}

func (f *fakeLedger) AppendResult(ctx context.Context, username string, total, score int) error {
	f.results = append(f.results, recordedResult{username, total, score})
	return nil
}

// resultWriter adapts fakeLedger to the ResultWriter interface.
type resultWriter struct{ l *fakeLedger }

func (w resultWriter) Append(ctx context.Context, username string, total, score int) error {
	return w.l.AppendResult(ctx, username, total, score)
}

func twoQuestions() []quizbank.Question {
	return []quizbank.Question{
		{
			Titulo:   "Capitais",
			Pergunta: "Qual é a capital da França?",
			Opcoes:   []string{"Paris", "Londres", "Roma"},
			Resposta: 1,
		},
		{
			Titulo:   "Matemática",
			Pergunta: "Quanto é 2 + 2?",
			Opcoes:   []string{"3", "4"},
			Resposta: 2,
		},
	}
}

func newTestSession(t *testing.T, questions []quizbank.Question) (*State, *fakeLedger) {
	t.Helper()
	ledger := &fakeLedger{}
	s, err := New(context.Background(), "ana", questions, ledger, resultWriter{ledger})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s, ledger
}

// answerFocused drives one question from selection to answer.
func answerFocused(t *testing.T, s *State, selectIdx, pos1 int) Outcome {
	t.Helper()
	if _, err := s.Select(selectIdx); err != nil {
		t.Fatalf("select: %v", err)
	}
	q, err := s.ShowOptions()
	if err != nil {
		t.Fatalf("show options: %v", err)
	}
	out, err := s.Answer(context.Background(), pos1, q.Opcoes[pos1-1])
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	return out
}

func TestFullRunProducesNAnswersAndOneResult(t *testing.T) {
	s, ledger := newTestSession(t, twoQuestions())

	out := answerFocused(t, s, 0, 1) // correct
	if !out.Correct {
		t.Error("first answer should be correct")
	}
	if out.Finished {
		t.Error("session should not finish with one question left")
	}

	out = answerFocused(t, s, 0, 1) // wrong (correct is 2)
	if out.Correct {
		t.Error("second answer should be wrong")
	}
	if out.CorrectText != "4" {
		t.Errorf("correct text = %q, want \"4\"", out.CorrectText)
	}
	if !out.Finished {
		t.Error("session should finish after the last question")
	}

	if len(ledger.answers) != 2 {
		t.Fatalf("expected 2 answer records, got %d", len(ledger.answers))
	}
	if !ledger.answers[0].Correct || ledger.answers[1].Correct {
		t.Errorf("correctness flags = %v, %v; want true, false",
			ledger.answers[0].Correct, ledger.answers[1].Correct)
	}

	if len(ledger.results) != 1 {
		t.Fatalf("expected exactly 1 result record, got %d", len(ledger.results))
	}
	r := ledger.results[0]
	if r.Username != "ana" || r.Total != 2 || r.Score != 1 {
		t.Errorf("result = %+v, want {ana 2 1}", r)
	}

	if s.Phase() != PhaseFinished {
		t.Errorf("phase = %v, want PhaseFinished", s.Phase())
	}
}

func TestAnsweredQuestionNeverReappears(t *testing.T) {
	s, _ := newTestSession(t, twoQuestions())

	answerFocused(t, s, 0, 1)

	titles := s.Titles()
	if len(titles) != 1 {
		t.Fatalf("expected 1 remaining title, got %d", len(titles))
	}
	if titles[0] != "Matemática" {
		t.Errorf("remaining = %q, want Matemática", titles[0])
	}
}

func TestRemainingOrderIsBankOrderMinusRemoved(t *testing.T) {
	questions := []quizbank.Question{
		{Titulo: "A", Pergunta: "a?", Opcoes: []string{"x"}, Resposta: 1},
		{Titulo: "B", Pergunta: "b?", Opcoes: []string{"x"}, Resposta: 1},
		{Titulo: "C", Pergunta: "c?", Opcoes: []string{"x"}, Resposta: 1},
	}
	s, _ := newTestSession(t, questions)

	// Answer the middle question; A and C keep their relative order.
	answerFocused(t, s, 1, 1)

	titles := s.Titles()
	if len(titles) != 2 || titles[0] != "A" || titles[1] != "C" {
		t.Errorf("titles = %v, want [A C]", titles)
	}
}

func TestReSelectionBeforeAnswerHasNoSideEffect(t *testing.T) {
	s, ledger := newTestSession(t, twoQuestions())

	if _, err := s.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	// Change of mind: focus moves, nothing is recorded.
	q, err := s.Select(1)
	if err != nil {
		t.Fatalf("re-select: %v", err)
	}
	if q.Titulo != "Matemática" {
		t.Errorf("focused = %q, want Matemática", q.Titulo)
	}
	if len(ledger.answers) != 0 {
		t.Errorf("re-selection must not record anything, got %d answers", len(ledger.answers))
	}
	if len(s.Titles()) != 2 {
		t.Errorf("remaining must be untouched, got %d titles", len(s.Titles()))
	}
}

func TestEmptyQuestionSetFinishesImmediately(t *testing.T) {
	s, ledger := newTestSession(t, nil)

	if s.Phase() != PhaseFinished {
		t.Fatalf("phase = %v, want PhaseFinished", s.Phase())
	}
	if len(ledger.results) != 1 {
		t.Fatalf("expected 1 result record, got %d", len(ledger.results))
	}
	if r := ledger.results[0]; r.Total != 0 || r.Score != 0 {
		t.Errorf("result = %+v, want total 0 score 0", r)
	}
}

func TestAnswerRequiresOptionsPhase(t *testing.T) {
	s, _ := newTestSession(t, twoQuestions())

	if _, err := s.Answer(context.Background(), 1, "Paris"); err != ErrNoFocus {
		t.Errorf("answer before select: err = %v, want ErrNoFocus", err)
	}

	if _, err := s.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	// Still in the explanation; an option cannot be chosen yet.
	if _, err := s.Answer(context.Background(), 1, "Paris"); err != ErrNoFocus {
		t.Errorf("answer during explanation: err = %v, want ErrNoFocus", err)
	}
}

func TestOutOfRangeInputs(t *testing.T) {
	s, _ := newTestSession(t, twoQuestions())

	if _, err := s.Select(5); err == nil {
		t.Error("expected error selecting past the remaining list")
	}
	if _, err := s.Select(-1); err == nil {
		t.Error("expected error for negative index")
	}

	if _, err := s.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := s.ShowOptions(); err != nil {
		t.Fatalf("show options: %v", err)
	}
	if _, err := s.Answer(context.Background(), 0, ""); err == nil {
		t.Error("expected error for option position 0")
	}
	if _, err := s.Answer(context.Background(), 4, ""); err == nil {
		t.Error("expected error for option position past the list")
	}
}

func TestFinishedSessionRejectsFurtherCalls(t *testing.T) {
	s, ledger := newTestSession(t, nil)

	if _, err := s.Select(0); err != ErrFinished {
		t.Errorf("select after finish: err = %v, want ErrFinished", err)
	}
	if _, err := s.ShowOptions(); err != ErrFinished {
		t.Errorf("show options after finish: err = %v, want ErrFinished", err)
	}
	if _, err := s.Answer(context.Background(), 1, "x"); err != ErrFinished {
		t.Errorf("answer after finish: err = %v, want ErrFinished", err)
	}
	if len(ledger.results) != 1 {
		t.Errorf("finish must happen exactly once, got %d results", len(ledger.results))
	}
}

func TestSessionsGetDistinctIDs(t *testing.T) {
	a, _ := newTestSession(t, twoQuestions())
	b, _ := newTestSession(t, twoQuestions())
	if a.ID == b.ID {
		t.Error("two sessions should not share an ID")
	}
}
