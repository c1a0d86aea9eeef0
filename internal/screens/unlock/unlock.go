package unlock

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/seiyeolo/park-golf-master/internal/gate"
	"github.com/seiyeolo/park-golf-master/internal/router"
	"github.com/seiyeolo/park-golf-master/internal/screen"
	"github.com/seiyeolo/park-golf-master/internal/study"
	"github.com/seiyeolo/park-golf-master/internal/ui/components"
	"github.com/seiyeolo/park-golf-master/internal/ui/layout"
	"github.com/seiyeolo/park-golf-master/internal/ui/theme"
)

// UnlockScreen asks for the access code. It pops itself once the gate opens.
type UnlockScreen struct {
	svc   *study.Service
	input components.TextInput
}

var _ screen.Screen = (*UnlockScreen)(nil)
var _ screen.KeyHintProvider = (*UnlockScreen)(nil)

// New creates an UnlockScreen.
func New(svc *study.Service) *UnlockScreen {
	return &UnlockScreen{
		svc:   svc,
		input: components.NewTextInput("Access code", "enter the code from your book", 64),
	}
}

func (u *UnlockScreen) Init() tea.Cmd {
	return u.input.Focus()
}

func (u *UnlockScreen) Title() string {
	return "Unlock"
}

func (u *UnlockScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Unlock"},
		{Key: "Esc", Description: "Back"},
	}
}

func (u *UnlockScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "enter" {
		return u.submit()
	}
	var cmd tea.Cmd
	u.input, cmd = u.input.Update(msg)
	return u, cmd
}

func (u *UnlockScreen) submit() (screen.Screen, tea.Cmd) {
	g := u.svc.Gate()
	if strings.TrimSpace(u.input.Value()) == "" {
		u.input.SetError("Enter a code.")
		return u, nil
	}
	err := g.Authenticate(context.Background(), u.input.Value())
	switch {
	case errors.Is(err, gate.ErrInvalidCode):
		u.input.SetError("That code is not right. Try again.")
		u.input.SetValue("")
		return u, nil
	case err != nil:
		// Unlocked for this run; the flag just was not saved.
		log := u.svc.Logger()
		log.Error().Err(err).Msg("persist unlock failed")
	}
	return u, router.Pop()
}

func (u *UnlockScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("Unlock every question"))
	sections = append(sections, theme.Subtitle.Width(cw).Render(
		fmt.Sprintf("The first %d questions are free. The full bank needs the access code.", gate.FreeLimit)))
	sections = append(sections, u.input.View())
	return layout.Center(strings.Join(sections, "\n\n"), width, height)
}
