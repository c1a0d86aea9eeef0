package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/seiyeolo/park-golf-master/internal/profile"
	"github.com/seiyeolo/park-golf-master/internal/router"
	"github.com/seiyeolo/park-golf-master/internal/screen"
	profilescreen "github.com/seiyeolo/park-golf-master/internal/screens/profile"
	"github.com/seiyeolo/park-golf-master/internal/screens/welcome"
	"github.com/seiyeolo/park-golf-master/internal/study"
	"github.com/seiyeolo/park-golf-master/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Service   *study.Service
	CardDelay time.Duration
	Now       func() time.Time
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	svc    *study.Service
	now    func() time.Time
	width  int
	height int
}

// newAppModel starts on the welcome screen, or on the profile form when no
// learner has been set up yet.
func newAppModel(opts Options) AppModel {
	now := opts.Now
	if now == nil {
		now = opts.Service.Now
	}
	home := func() screen.Screen { return welcome.New(opts.Service, opts.CardDelay) }

	var first screen.Screen
	if opts.Service.State() == profile.NoProfile {
		first = profilescreen.New(opts.Service, func() tea.Cmd { return router.Reset(home()) })
	} else {
		first = home()
	}
	return AppModel{
		router: router.New(first),
		svc:    opts.Service,
		now:    now,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// status is the header's right side: learner name and exam countdown.
func (m AppModel) status() string {
	p, ok := m.svc.Profile()
	if !ok {
		return ""
	}
	if dday := p.DDay(m.now()); dday != "" {
		return fmt.Sprintf("%s · %s  ", p.Name, dday)
	}
	return p.Name + "  "
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if len(footerHints) == 0 {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Service == nil {
		return fmt.Errorf("app: study service is required")
	}
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
