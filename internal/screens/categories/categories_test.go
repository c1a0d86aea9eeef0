package categories

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/seiyeolo/park-golf-master/internal/filter"
	"github.com/seiyeolo/park-golf-master/internal/selfeval"
	"github.com/seiyeolo/park-golf-master/internal/study/studytest"
)

type doneMsg struct{}

func done() tea.Cmd { return func() tea.Msg { return doneMsg{} } }

func TestMenu_ListsReviewOnlyWithUnknowns(t *testing.T) {
	svc := studytest.New(t, studytest.Bank(t, 20), "kim")

	c := New(svc, done)
	c.Init()
	if len(c.menu.Items) != 3 {
		t.Errorf("items = %d, want 3 (all + 2 categories)", len(c.menu.Items))
	}

	eval, _ := svc.SelfEval()
	if err := eval.Mark(context.Background(), 3, selfeval.Unknown); err != nil {
		t.Fatal(err)
	}
	c = New(svc, done)
	c.Init()
	if len(c.menu.Items) != 4 {
		t.Fatalf("items = %d, want 4", len(c.menu.Items))
	}
	if c.menu.Items[1].Label != "Review unknowns" || c.menu.Items[1].Detail != "1" {
		t.Errorf("second item = %+v", c.menu.Items[1])
	}
}

func TestSelectCategory(t *testing.T) {
	svc := studytest.New(t, studytest.Bank(t, 20), "kim")
	c := New(svc, done)
	c.Init()

	c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected done command")
	}
	if _, ok := cmd().(doneMsg); !ok {
		t.Errorf("expected doneMsg, got %T", cmd())
	}

	ctl, _ := svc.Controller()
	if ctl.Filter() != filter.Category("Rules") {
		t.Errorf("filter = %v, want Rules", ctl.Filter())
	}
	if ctl.Index() != 0 {
		t.Errorf("index = %d, want 0", ctl.Index())
	}
}

func TestPreselectsCurrentFilter(t *testing.T) {
	svc := studytest.New(t, studytest.Bank(t, 20), "kim")
	ctl, _ := svc.Controller()
	if err := ctl.SelectFilter(context.Background(), filter.Category("Basics")); err != nil {
		t.Fatal(err)
	}
	c := New(svc, done)
	c.Init()
	if c.menu.Selected != 1 {
		t.Errorf("Selected = %d, want 1", c.menu.Selected)
	}
}
