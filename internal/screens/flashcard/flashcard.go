package flashcard

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/seiyeolo/park-golf-master/internal/filter"
	"github.com/seiyeolo/park-golf-master/internal/router"
	"github.com/seiyeolo/park-golf-master/internal/screen"
	"github.com/seiyeolo/park-golf-master/internal/screens/categories"
	"github.com/seiyeolo/park-golf-master/internal/screens/search"
	"github.com/seiyeolo/park-golf-master/internal/screens/unlock"
	"github.com/seiyeolo/park-golf-master/internal/selfeval"
	"github.com/seiyeolo/park-golf-master/internal/session"
	"github.com/seiyeolo/park-golf-master/internal/study"
	"github.com/seiyeolo/park-golf-master/internal/ui/layout"
)

// FlashcardScreen shows one card at a time and routes study intents to the
// session controller.
type FlashcardScreen struct {
	svc   *study.Service
	ctl   *session.Controller
	delay time.Duration

	card    session.Card
	empty   bool
	flipped bool
	moving  bool
	notice  string
	errMsg  string
}

var _ screen.Screen = (*FlashcardScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardScreen)(nil)
var _ screen.Resumer = (*FlashcardScreen)(nil)

// New creates a FlashcardScreen. delay is how long the card transition
// plays before the next card is shown.
func New(svc *study.Service, delay time.Duration) *FlashcardScreen {
	return &FlashcardScreen{svc: svc, delay: delay}
}

func (s *FlashcardScreen) Init() tea.Cmd {
	ctl, err := s.svc.Controller()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.ctl = ctl
	s.reload()
	return nil
}

func (s *FlashcardScreen) Title() string {
	if s.ctl == nil {
		return "Study"
	}
	switch f := s.ctl.Filter(); f.Kind() {
	case filter.KindCategory:
		return "Study · " + f.CategoryName()
	case filter.KindReview:
		return "Study · Review"
	}
	return "Study"
}

// Resume re-reads the card after a screen above (categories, search,
// unlock) may have changed the controller.
func (s *FlashcardScreen) Resume() tea.Cmd {
	if s.ctl != nil {
		s.flipped = false
		s.reload()
	}
	return nil
}

func (s *FlashcardScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.empty:
		return []layout.KeyHint{
			{Key: "A", Description: "View all"},
			{Key: "C", Description: "Categories"},
			{Key: "Esc", Description: "Back"},
		}
	case s.card.Locked:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Unlock"},
			{Key: "←", Description: "Prev"},
			{Key: "C", Description: "Categories"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "R", Description: "Random"},
		{Key: "1/2", Description: "Known/Unknown"},
		{Key: "F", Description: "Favorite"},
		{Key: "C", Description: "Categories"},
		{Key: "/", Description: "Search"},
	}
}

func (s *FlashcardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		s.moving = false
		s.reload()
		return s, nil
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *FlashcardScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, router.Pop()
	}
	if s.ctl == nil {
		return s, nil
	}
	ctx := context.Background()
	s.notice = ""

	switch msg.String() {
	case "c":
		return s, router.Push(categories.New(s.svc, router.Pop))
	case "/":
		return s, router.Push(search.New(s.svc, router.Pop))
	}

	if s.empty {
		if msg.String() == "a" {
			return s.move(s.ctl.SelectFilter(ctx, filter.All()))
		}
		return s, nil
	}

	switch msg.String() {
	case "space", " ", "enter":
		if s.card.Locked {
			return s, router.Push(unlock.New(s.svc))
		}
		if !s.moving {
			s.flipped = !s.flipped
		}
		return s, nil
	case "right", "l", "n":
		return s.move(s.ctl.Next(ctx))
	case "left", "h", "p":
		return s.move(s.ctl.Prev(ctx))
	case "r":
		return s.move(s.ctl.Random(ctx))
	}

	if s.card.Locked {
		return s, nil
	}

	switch msg.String() {
	case "f":
		on, err := s.ctl.ToggleFavorite(ctx, s.card.Question.ID)
		if err != nil {
			s.logError(err, "toggle favorite")
		}
		s.card.Favorite = on
		return s, nil
	case "1", "k":
		return s.move(s.ctl.Evaluate(ctx, s.card.Question.ID, selfeval.Known))
	case "2", "u":
		return s.move(s.ctl.Evaluate(ctx, s.card.Question.ID, selfeval.Unknown))
	}
	return s, nil
}

// move reacts to a controller transition. The controller has already
// committed; the screen shows the transition and re-reads after the delay.
func (s *FlashcardScreen) move(err error) (screen.Screen, tea.Cmd) {
	if errors.Is(err, session.ErrGateDenied) {
		s.notice = "This question needs the access code."
		return s, router.Push(unlock.New(s.svc))
	}
	if errors.Is(err, filter.ErrEmptyWorkingSet) {
		s.reload()
		return s, nil
	}
	if err != nil {
		// The move itself is committed in memory; only the save failed.
		s.logError(err, "save progress")
	}

	before := s.card
	s.flipped = false
	if s.delay <= 0 {
		s.reload()
		return s, nil
	}
	if next, cardErr := s.ctl.Card(); cardErr == nil && next.Question.ID == before.Question.ID && next.Position == before.Position {
		s.reload()
		return s, nil
	}
	s.moving = true
	return s, tea.Tick(s.delay, func(time.Time) tea.Msg { return refreshMsg{} })
}

func (s *FlashcardScreen) reload() {
	card, err := s.ctl.Card()
	switch {
	case errors.Is(err, filter.ErrEmptyWorkingSet):
		s.empty = true
		s.card = card
	case err != nil:
		s.errMsg = err.Error()
	default:
		s.empty = false
		s.card = card
	}
}

func (s *FlashcardScreen) logError(err error, action string) {
	log := s.svc.Logger()
	log.Error().Err(err).Str("action", action).Msg("study action failed")
	s.notice = "Could not save: " + err.Error()
}
