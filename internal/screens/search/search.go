package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/seiyeolo/park-golf-master/internal/bank"
	"github.com/seiyeolo/park-golf-master/internal/gate"
	"github.com/seiyeolo/park-golf-master/internal/screen"
	"github.com/seiyeolo/park-golf-master/internal/session"
	"github.com/seiyeolo/park-golf-master/internal/study"
	"github.com/seiyeolo/park-golf-master/internal/ui/components"
	"github.com/seiyeolo/park-golf-master/internal/ui/layout"
	"github.com/seiyeolo/park-golf-master/internal/ui/theme"
)

// maxResults bounds the result list drawn on screen.
const maxResults = 8

// SearchScreen finds questions by text or number and jumps to one.
type SearchScreen struct {
	svc      *study.Service
	done     func() tea.Cmd
	input    components.TextInput
	results  []bank.Question
	selected int
}

var _ screen.Screen = (*SearchScreen)(nil)
var _ screen.KeyHintProvider = (*SearchScreen)(nil)

// New creates a SearchScreen. done runs after a successful jump.
func New(svc *study.Service, done func() tea.Cmd) *SearchScreen {
	return &SearchScreen{
		svc:   svc,
		done:  done,
		input: components.NewTextInput("Search", "words from a question or answer, or its number", 80),
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return s.input.Focus()
}

func (s *SearchScreen) Title() string {
	return "Search"
}

func (s *SearchScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Go to question"},
		{Key: "Esc", Description: "Back"},
	}
}

// Results returns the current matches.
func (s *SearchScreen) Results() []bank.Question {
	return s.results
}

func (s *SearchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down":
			if s.selected < len(s.visible())-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			return s.jump()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.results = s.svc.Bank().Search(s.input.Value())
	if s.selected >= len(s.visible()) {
		s.selected = 0
	}
	return s, cmd
}

func (s *SearchScreen) visible() []bank.Question {
	if len(s.results) > maxResults {
		return s.results[:maxResults]
	}
	return s.results
}

func (s *SearchScreen) jump() (screen.Screen, tea.Cmd) {
	vis := s.visible()
	if len(vis) == 0 {
		return s, nil
	}
	ctl, err := s.svc.Controller()
	if err != nil {
		s.input.SetError(err.Error())
		return s, nil
	}
	q := vis[s.selected]
	err = ctl.SelectByID(context.Background(), q.ID)
	switch {
	case errors.Is(err, session.ErrGateDenied):
		s.input.SetError(fmt.Sprintf("Q%d is locked. Only the first %d questions are free.", q.ID, gate.FreeLimit))
		return s, nil
	case err != nil && !errors.Is(err, session.ErrQuestionNotFound):
		log := s.svc.Logger()
		log.Error().Err(err).Int("question", q.ID).Msg("save progress failed")
	}
	return s, s.done()
}

func (s *SearchScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	var b strings.Builder
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	switch {
	case strings.TrimSpace(s.input.Value()) == "":
		b.WriteString(theme.Hint.Render("Type to search."))
	case len(s.results) == 0:
		b.WriteString(theme.Hint.Render("No matching questions."))
	default:
		g := s.svc.Gate()
		for i, q := range s.visible() {
			line := fmt.Sprintf("Q%-4d %s", q.ID, q.Question)
			if gi, ok := s.svc.Bank().GlobalIndexOf(q.ID); ok && !g.Allows(gi) {
				line += "  🔒"
			}
			style := theme.Unselected
			prefix := "    "
			if i == s.selected {
				style = theme.Selected
				prefix = "  ▸ "
			}
			b.WriteString(style.Width(cw).MaxHeight(1).Render(prefix + line))
			b.WriteString("\n")
		}
		if more := len(s.results) - maxResults; more > 0 {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("    …and %d more", more)))
		}
	}
	return layout.Center(b.String(), width, height)
}
