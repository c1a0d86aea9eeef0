package welcome

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/seiyeolo/park-golf-master/internal/gate"
	"github.com/seiyeolo/park-golf-master/internal/profile"
	"github.com/seiyeolo/park-golf-master/internal/router"
	"github.com/seiyeolo/park-golf-master/internal/screen"
	"github.com/seiyeolo/park-golf-master/internal/screens/categories"
	"github.com/seiyeolo/park-golf-master/internal/screens/flashcard"
	profilescreen "github.com/seiyeolo/park-golf-master/internal/screens/profile"
	"github.com/seiyeolo/park-golf-master/internal/screens/search"
	statsscreen "github.com/seiyeolo/park-golf-master/internal/screens/stats"
	"github.com/seiyeolo/park-golf-master/internal/screens/unlock"
	"github.com/seiyeolo/park-golf-master/internal/stats"
	"github.com/seiyeolo/park-golf-master/internal/study"
	"github.com/seiyeolo/park-golf-master/internal/ui/components"
	"github.com/seiyeolo/park-golf-master/internal/ui/layout"
	"github.com/seiyeolo/park-golf-master/internal/ui/theme"
)

// WelcomeScreen is the hub: greeting, exam countdown, progress and the
// main menu.
type WelcomeScreen struct {
	svc       *study.Service
	cardDelay time.Duration
	now       func() time.Time

	profile     profile.Profile
	summary     stats.Summary
	favorites   int
	lastStudied time.Time
	menu        components.Menu
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.Resumer = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. cardDelay is handed to the study screen.
func New(svc *study.Service, cardDelay time.Duration) *WelcomeScreen {
	return &WelcomeScreen{svc: svc, cardDelay: cardDelay, now: svc.Now}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	w.refresh()
	return nil
}

// Resume picks up changes made on the screens above: new marks, a new
// profile, an unlocked gate.
func (w *WelcomeScreen) Resume() tea.Cmd {
	w.refresh()
	return nil
}

func (w *WelcomeScreen) Title() string {
	return "Home"
}

func (w *WelcomeScreen) refresh() {
	w.profile, _ = w.svc.Profile()
	if sum, err := w.svc.Stats(); err == nil {
		w.summary = sum
	}
	w.favorites, w.lastStudied = 0, time.Time{}
	if favs, err := w.svc.Favorites(); err == nil {
		w.favorites = favs.Len()
	}
	if ctl, err := w.svc.Controller(); err == nil {
		if t, ok := ctl.LastStudied(context.Background()); ok {
			w.lastStudied = t
		}
	}
	w.menu = components.NewMenu(w.menuItems())
}

func (w *WelcomeScreen) openStudy() tea.Cmd {
	return router.Push(flashcard.New(w.svc, w.cardDelay))
}

// replaceWithStudy swaps the screen that called it for the study screen,
// so Esc from study comes straight back here.
func (w *WelcomeScreen) replaceWithStudy() tea.Cmd {
	return router.Replace(flashcard.New(w.svc, w.cardDelay))
}

func (w *WelcomeScreen) menuItems() []components.MenuItem {
	items := []components.MenuItem{
		{Label: "Study", Detail: w.resumeDetail(), Action: w.openStudy},
		{Label: "Categories", Action: func() tea.Cmd {
			return router.Push(categories.New(w.svc, w.replaceWithStudy))
		}},
		{Label: "Search", Action: func() tea.Cmd {
			return router.Push(search.New(w.svc, w.replaceWithStudy))
		}},
		{Label: "Statistics", Detail: fmt.Sprintf("%d%%", w.summary.StudiedPercent), Action: func() tea.Cmd {
			return router.Push(statsscreen.New(w.svc, w.replaceWithStudy))
		}},
		{Label: "Profile", Detail: w.profile.Name, Action: func() tea.Cmd {
			return router.Push(profilescreen.New(w.svc, router.Pop))
		}},
	}
	if !w.svc.Gate().Authenticated() {
		items = append(items, components.MenuItem{
			Label:  "Unlock",
			Detail: fmt.Sprintf("%d free", gate.FreeLimit),
			Action: func() tea.Cmd { return router.Push(unlock.New(w.svc)) },
		})
	}
	return append(items, components.MenuItem{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }})
}

func (w *WelcomeScreen) resumeDetail() string {
	ctl, err := w.svc.Controller()
	if err != nil {
		return ""
	}
	card, err := ctl.Card()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d/%d", card.Position+1, card.Total)
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	w.menu, cmd = w.menu.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	compact := height < 28

	var sections []string
	if !compact {
		sections = append(sections, RenderBanner(width))
	}

	greeting := "Welcome"
	if w.profile.Name != "" {
		greeting = fmt.Sprintf("Welcome back, %s!", w.profile.Name)
	}
	head := theme.Title.Width(cw).Render(greeting)
	if w.profile.Objective != "" {
		head += "\n" + theme.Subtitle.Width(cw).Render(w.profile.Objective)
	}
	if dday := w.profile.DDay(w.now()); dday != "" {
		head += "\n" + lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("%s  ·  exam %s", dday, w.profile.ExamDate))
	}
	sections = append(sections, head)

	sum := w.summary
	progress := components.NewProgressBar("Studied", sum.StudiedPercent, true, cw).View() + "\n" +
		theme.Known.Render(fmt.Sprintf("✓ %d known", sum.Known)) + "   " +
		theme.Unknown.Render(fmt.Sprintf("✗ %d to review", sum.Unknown)) + "   " +
		theme.Hint.Render(fmt.Sprintf("%d questions", sum.Total))
	if w.favorites > 0 {
		progress += "   " + theme.Favorite.Render(fmt.Sprintf("★ %d", w.favorites))
	}
	if !w.lastStudied.IsZero() {
		progress += "\n" + theme.Hint.Render("Last studied "+w.lastStudied.In(time.Local).Format("2006-01-02 15:04"))
	}
	sections = append(sections, progress)

	sections = append(sections, w.menu.View(cw))

	return layout.Center(strings.Join(sections, "\n\n"), width, height)
}
