package flashcard

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/seiyeolo/park-golf-master/internal/filter"
	"github.com/seiyeolo/park-golf-master/internal/router"
	"github.com/seiyeolo/park-golf-master/internal/screens/unlock"
	"github.com/seiyeolo/park-golf-master/internal/study"
	"github.com/seiyeolo/park-golf-master/internal/study/studytest"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newScreen(t *testing.T, delay time.Duration) (*FlashcardScreen, *study.Service) {
	t.Helper()
	svc := studytest.New(t, studytest.Bank(t, 20), "kim")
	s := New(svc, delay)
	s.Init()
	return s, svc
}

func TestInit_ShowsFirstCard(t *testing.T) {
	s, _ := newScreen(t, 0)
	if s.card.Question.ID != 1 {
		t.Errorf("card = Q%d, want Q1", s.card.Question.ID)
	}
	if s.flipped {
		t.Error("card starts flipped")
	}
	if s.Title() != "Study" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestFlip(t *testing.T) {
	s, _ := newScreen(t, 0)
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if !s.flipped {
		t.Fatal("space did not flip the card")
	}
	if view := s.View(80, 30); !contains(view, "Answer number 1.") {
		t.Error("flipped view does not show the answer")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.flipped {
		t.Error("enter did not flip back")
	}
}

func TestNext_WithoutDelay(t *testing.T) {
	s, _ := newScreen(t, 0)
	s.flipped = true
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if cmd != nil {
		t.Error("no command expected without a delay")
	}
	if s.card.Question.ID != 2 || s.flipped {
		t.Errorf("card = Q%d flipped=%v, want Q2 front", s.card.Question.ID, s.flipped)
	}
}

func TestNext_WithDelayRefreshesOnTick(t *testing.T) {
	s, svc := newScreen(t, 200*time.Millisecond)
	_, cmd := s.Update(key('n'))
	if cmd == nil {
		t.Fatal("expected a tick command")
	}
	if !s.moving {
		t.Error("screen should show the transition")
	}
	ctl, _ := svc.Controller()
	if ctl.Index() != 1 {
		t.Errorf("controller index = %d, want 1 (committed before the delay)", ctl.Index())
	}

	s.Update(refreshMsg{})
	if s.moving || s.card.Question.ID != 2 {
		t.Errorf("after refresh: moving=%v card=Q%d", s.moving, s.card.Question.ID)
	}

	// A late duplicate is a flat re-read.
	s.Update(refreshMsg{})
	if s.card.Question.ID != 2 {
		t.Errorf("duplicate refresh moved to Q%d", s.card.Question.ID)
	}
}

func TestPrevAtStart_NoTransition(t *testing.T) {
	s, _ := newScreen(t, 200*time.Millisecond)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if cmd != nil || s.moving {
		t.Error("Prev at the first card should not animate")
	}
}

func TestEvaluateAndFavorite(t *testing.T) {
	s, svc := newScreen(t, 0)

	s.Update(key('f'))
	if !s.card.Favorite {
		t.Error("favorite not shown")
	}
	s.Update(key('2'))
	if s.card.Question.ID != 2 {
		t.Errorf("after evaluation card = Q%d, want Q2", s.card.Question.ID)
	}
	eval, _ := svc.SelfEval()
	if !eval.IsUnknown(1) {
		t.Error("Q1 not marked unknown")
	}
	favs, _ := svc.Favorites()
	if !favs.Has(1) {
		t.Error("Q1 not a favorite")
	}
}

func TestDeniedNextPushesUnlock(t *testing.T) {
	s, svc := newScreen(t, 0)
	ctl, _ := svc.Controller()
	if err := ctl.SelectByID(t.Context(), 10); err != nil {
		t.Fatal(err)
	}
	s.Resume()

	_, cmd := s.Update(key('n'))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*unlock.UnlockScreen); !ok {
		t.Errorf("pushed %T, want unlock screen", msg.Screen)
	}
	if s.card.Question.ID != 10 {
		t.Errorf("card moved to Q%d", s.card.Question.ID)
	}
}

func TestLockedCard_HidesQuestion(t *testing.T) {
	s, svc := newScreen(t, 0)
	ctl, _ := svc.Controller()
	if err := ctl.SelectFilter(t.Context(), filter.Category("Rules")); err != nil {
		t.Fatal(err)
	}
	s.Resume()

	if !s.card.Locked {
		t.Fatal("first Rules card should be locked")
	}
	view := s.View(80, 30)
	if contains(view, "Question number 11?") {
		t.Error("locked card leaks its question")
	}
	s.Update(key('f'))
	if s.card.Favorite {
		t.Error("locked card accepted a favorite")
	}
}

func TestEmptyReview_ViewAll(t *testing.T) {
	s, svc := newScreen(t, 0)
	ctl, _ := svc.Controller()
	if err := ctl.SelectFilter(t.Context(), filter.Review()); err != nil {
		t.Fatal(err)
	}
	s.Resume()
	if !s.empty {
		t.Fatal("review with nothing unknown should be empty")
	}
	if !contains(s.View(80, 30), "Nothing left to review") {
		t.Error("empty review message missing")
	}

	s.Update(key('a'))
	if s.empty || ctl.Filter() != filter.All() {
		t.Errorf("A did not switch to all: empty=%v filter=%v", s.empty, ctl.Filter())
	}
}

func TestCategoriesKeyPushesPicker(t *testing.T) {
	s, _ := newScreen(t, 0)
	_, cmd := s.Update(key('c'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg, got %T", cmd())
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
