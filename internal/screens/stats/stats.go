package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/seiyeolo/park-golf-master/internal/filter"
	"github.com/seiyeolo/park-golf-master/internal/screen"
	"github.com/seiyeolo/park-golf-master/internal/stats"
	"github.com/seiyeolo/park-golf-master/internal/study"
	"github.com/seiyeolo/park-golf-master/internal/ui/components"
	"github.com/seiyeolo/park-golf-master/internal/ui/layout"
	"github.com/seiyeolo/park-golf-master/internal/ui/theme"
)

// StatsScreen shows overall and per-category progress, with shortcuts to
// review unknowns and to reset the marks.
type StatsScreen struct {
	svc        *study.Service
	openReview func() tea.Cmd

	summary    stats.Summary
	confirming bool
	errMsg     string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen. openReview runs after the review filter is
// applied.
func New(svc *study.Service, openReview func() tea.Cmd) *StatsScreen {
	return &StatsScreen{svc: svc, openReview: openReview}
}

func (s *StatsScreen) Init() tea.Cmd {
	s.refresh()
	return nil
}

func (s *StatsScreen) refresh() {
	sum, err := s.svc.Stats()
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.summary = sum
}

// Summary returns the figures on display.
func (s *StatsScreen) Summary() stats.Summary {
	return s.summary
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset all marks"},
			{Key: "N", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{}
	if s.summary.Unknown > 0 {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Review unknowns"})
	}
	return append(hints,
		layout.KeyHint{Key: "X", Description: "Reset"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || s.errMsg != "" {
		return s, nil
	}
	ctx := context.Background()

	if s.confirming {
		switch key.String() {
		case "y", "Y":
			s.confirming = false
			ctl, err := s.svc.Controller()
			if err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			if err := ctl.ResetSelfEval(ctx); err != nil {
				log := s.svc.Logger()
				log.Error().Err(err).Msg("reset self-assessment failed")
			}
			s.refresh()
		case "n", "N", "esc":
			s.confirming = false
		}
		return s, nil
	}

	switch key.String() {
	case "r":
		if s.summary.Unknown == 0 {
			return s, nil
		}
		ctl, err := s.svc.Controller()
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		if err := ctl.SelectFilter(ctx, filter.Review()); err != nil {
			log := s.svc.Logger()
			log.Error().Err(err).Msg("save progress failed")
		}
		return s, s.openReview()
	case "x":
		s.confirming = true
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Center(theme.ErrorText.Render(s.errMsg), width, height)
	}
	cw := layout.ContentWidth(width)
	sum := s.summary

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Your progress"))
	b.WriteString("\n\n")
	b.WriteString(components.NewProgressBar("Studied", sum.StudiedPercent, true, cw).View())
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("%d of %d questions studied", sum.Studied, sum.Total)))
	b.WriteString("\n")
	b.WriteString(theme.Known.Render(fmt.Sprintf("✓ known %d (%d%%)", sum.Known, sum.KnownPercent)))
	b.WriteString("   ")
	b.WriteString(theme.Unknown.Render(fmt.Sprintf("✗ unknown %d (%d%%)", sum.Unknown, sum.UnknownPercent)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("By category"))
	b.WriteString("\n")
	labelWidth := 0
	for _, c := range sum.Categories {
		if w := lipgloss.Width(c.Name); w > labelWidth {
			labelWidth = w
		}
	}
	for _, c := range sum.Categories {
		label := c.Name + strings.Repeat(" ", labelWidth-lipgloss.Width(c.Name))
		b.WriteString(components.NewProgressBar(label, c.Percent, true, cw-12).View())
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %d/%d", c.Studied, c.Total)))
		b.WriteString("\n")
	}

	if s.confirming {
		b.WriteString("\n")
		b.WriteString(theme.ErrorText.Render("Reset every known/unknown mark? Favorites are kept. (y/n)"))
	}
	return layout.Center(b.String(), width, height)
}
