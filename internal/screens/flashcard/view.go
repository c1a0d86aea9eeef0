package flashcard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/seiyeolo/park-golf-master/internal/filter"
	"github.com/seiyeolo/park-golf-master/internal/gate"
	"github.com/seiyeolo/park-golf-master/internal/selfeval"
	"github.com/seiyeolo/park-golf-master/internal/ui/layout"
	"github.com/seiyeolo/park-golf-master/internal/ui/theme"
)

func (s *FlashcardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Center(theme.ErrorText.Render(s.errMsg), width, height)
	}
	if s.ctl == nil {
		return ""
	}
	if s.empty {
		return layout.Center(s.renderEmpty(), width, height)
	}

	cw := layout.ContentWidth(width)
	var sections []string
	sections = append(sections, s.renderInfoLine(cw))
	sections = append(sections, s.renderCard(cw))
	if s.notice != "" {
		sections = append(sections, theme.Hint.Render(s.notice))
	}
	return layout.Center(strings.Join(sections, "\n\n"), width, height)
}

func (s *FlashcardScreen) renderEmpty() string {
	msg := "No questions here."
	if s.ctl.Filter().Kind() == filter.KindReview {
		msg = "Nothing left to review. Everything is marked known."
	}
	return theme.Body.Render(msg) + "\n\n" + theme.Hint.Render("Press A to view all questions.")
}

// renderInfoLine shows position, question id and the card's marks.
func (s *FlashcardScreen) renderInfoLine(width int) string {
	c := s.card
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("%d / %d", c.Position+1, c.Total))

	var marks []string
	marks = append(marks, lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("Q%d", c.Question.ID)))
	if c.Favorite {
		marks = append(marks, theme.Favorite.Render("★"))
	}
	if c.Marked {
		switch c.Status {
		case selfeval.Known:
			marks = append(marks, theme.Known.Render("✓ known"))
		case selfeval.Unknown:
			marks = append(marks, theme.Unknown.Render("✗ unknown"))
		}
	}
	right := strings.Join(marks, "  ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

func (s *FlashcardScreen) renderCard(width int) string {
	c := s.card
	inner := width - 8

	if c.Locked {
		body := theme.ErrorText.Render("Locked") + "\n\n" +
			theme.Body.Render(fmt.Sprintf("The first %d questions are free.", gate.FreeLimit)) + "\n" +
			theme.Hint.Render("Press Enter to enter the access code.")
		return theme.CardLocked.Width(width).Render(lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Render(body))
	}

	if s.moving {
		return theme.CardFront.Width(width).
			BorderForeground(theme.Border).
			Render(lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Foreground(theme.TextDim).Render("· · ·"))
	}

	category := lipgloss.NewStyle().Foreground(theme.TextDim).Render(c.Question.Category)
	if !s.flipped {
		q := lipgloss.NewStyle().Width(inner).Bold(true).Foreground(theme.Text).Render("Q. " + c.Question.Question)
		return theme.CardFront.Width(width).Render(category + "\n\n" + q + "\n\n" + theme.Hint.Render("Space to see the answer"))
	}

	q := lipgloss.NewStyle().Width(inner).Foreground(theme.TextDim).Render("Q. " + c.Question.Question)
	a := lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Render(c.Question.Answer)
	prompt := theme.Hint.Render("Did you know it?  1 known · 2 unknown")
	return theme.CardBack.Width(width).Render(category + "\n\n" + q + "\n\n" + a + "\n\n" + prompt)
}
