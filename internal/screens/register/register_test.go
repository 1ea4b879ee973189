package register

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/lfreitas/quizdeck/internal/router"
)

func TestEscReturnsToLogin(t *testing.T) {
	s := New(nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should produce a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("esc command = %T, want router.PopScreenMsg", cmd())
	}
}

func TestAnyKeyLeavesAfterSuccess(t *testing.T) {
	s := New(nil)

	s.Update(registerResultMsg{ok: true})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("key after successful registration should produce a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("command = %T, want router.PopScreenMsg", cmd())
	}
}
