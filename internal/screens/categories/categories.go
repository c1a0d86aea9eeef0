package categories

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/seiyeolo/park-golf-master/internal/filter"
	"github.com/seiyeolo/park-golf-master/internal/screen"
	"github.com/seiyeolo/park-golf-master/internal/study"
	"github.com/seiyeolo/park-golf-master/internal/ui/components"
	"github.com/seiyeolo/park-golf-master/internal/ui/layout"
	"github.com/seiyeolo/park-golf-master/internal/ui/theme"
)

// CategoriesScreen lets the learner pick the filter the study screen walks.
type CategoriesScreen struct {
	svc    *study.Service
	done   func() tea.Cmd
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*CategoriesScreen)(nil)

// New creates a CategoriesScreen. done runs after a filter is applied.
func New(svc *study.Service, done func() tea.Cmd) *CategoriesScreen {
	return &CategoriesScreen{svc: svc, done: done}
}

func (c *CategoriesScreen) Init() tea.Cmd {
	ctl, err := c.svc.Controller()
	if err != nil {
		c.errMsg = err.Error()
		return nil
	}
	eval, err := c.svc.SelfEval()
	if err != nil {
		c.errMsg = err.Error()
		return nil
	}

	current := ctl.Filter()
	opts := filter.Options(c.svc.Bank(), eval.UnknownCount())
	items := make([]components.MenuItem, 0, len(opts))
	selected := 0
	for i, opt := range opts {
		if opt.Filter == current {
			selected = i
		}
		items = append(items, components.MenuItem{
			Label:  opt.Label,
			Detail: fmt.Sprintf("%d", opt.Count),
			Action: c.choose(opt.Filter),
		})
	}
	c.menu = components.NewMenu(items)
	c.menu.Selected = selected
	return nil
}

func (c *CategoriesScreen) choose(f filter.Filter) func() tea.Cmd {
	return func() tea.Cmd {
		ctl, err := c.svc.Controller()
		if err != nil {
			c.errMsg = err.Error()
			return nil
		}
		if err := ctl.SelectFilter(context.Background(), f); err != nil {
			log := c.svc.Logger()
			log.Error().Err(err).Stringer("filter", f).Msg("save progress failed")
		}
		return c.done()
	}
}

func (c *CategoriesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *CategoriesScreen) View(width, height int) string {
	if c.errMsg != "" {
		return layout.Center(theme.ErrorText.Render(c.errMsg), width, height)
	}
	cw := layout.ContentWidth(width)
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Choose what to study"))
	b.WriteString("\n\n")
	b.WriteString(c.menu.View(cw))
	return layout.Center(b.String(), width, height)
}

func (c *CategoriesScreen) Title() string {
	return "Categories"
}
