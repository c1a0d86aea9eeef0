package profile

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/seiyeolo/park-golf-master/internal/profile"
	"github.com/seiyeolo/park-golf-master/internal/screen"
	"github.com/seiyeolo/park-golf-master/internal/study"
	"github.com/seiyeolo/park-golf-master/internal/ui/components"
	"github.com/seiyeolo/park-golf-master/internal/ui/layout"
	"github.com/seiyeolo/park-golf-master/internal/ui/theme"
)

const (
	fieldName = iota
	fieldObjective
	fieldExamDate
	fieldCount
)

// ProfileScreen creates, edits or switches the learner profile.
type ProfileScreen struct {
	svc    *study.Service
	done   func() tea.Cmd
	fields [fieldCount]components.TextInput
	focus  int
	others []string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a ProfileScreen prefilled with the active profile. done runs
// after a successful save.
func New(svc *study.Service, done func() tea.Cmd) *ProfileScreen {
	p := &ProfileScreen{svc: svc, done: done}
	p.fields[fieldName] = components.NewTextInput("Name", "your name", profile.MaxNameLength)
	p.fields[fieldObjective] = components.NewTextInput("Goal", "e.g. pass the instructor exam", 120)
	p.fields[fieldExamDate] = components.NewTextInput("Exam date", "YYYY-MM-DD (optional)", len(profile.DateLayout))

	if cur, ok := svc.Profile(); ok {
		p.fields[fieldName].SetValue(cur.Name)
		p.fields[fieldObjective].SetValue(cur.Objective)
		p.fields[fieldExamDate].SetValue(cur.ExamDate)
	}
	return p
}

func (p *ProfileScreen) Init() tea.Cmd {
	names, err := p.svc.Profiles(context.Background())
	if err == nil {
		p.others = names
	}
	return p.fields[p.focus].Focus()
}

func (p *ProfileScreen) Title() string {
	return "Profile"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab", "down":
			return p, p.setFocus((p.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return p, p.setFocus((p.focus + fieldCount - 1) % fieldCount)
		case "enter":
			return p.save()
		}
	}
	var cmd tea.Cmd
	p.fields[p.focus], cmd = p.fields[p.focus].Update(msg)
	return p, cmd
}

func (p *ProfileScreen) setFocus(i int) tea.Cmd {
	p.fields[p.focus].Blur()
	p.focus = i
	return p.fields[p.focus].Focus()
}

// save validates every field before anything is written, so a bad date
// never leaves a half-switched profile behind.
func (p *ProfileScreen) save() (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	name, err := profile.NormalizeName(p.fields[fieldName].Value())
	if err != nil {
		p.fields[fieldName].SetError(nameError(err))
		return p, p.setFocus(fieldName)
	}
	examDate := strings.TrimSpace(p.fields[fieldExamDate].Value())
	if err := profile.ValidateExamDate(examDate); err != nil {
		p.fields[fieldExamDate].SetError("Use the form YYYY-MM-DD.")
		return p, p.setFocus(fieldExamDate)
	}

	if cur, ok := p.svc.Profile(); !ok || cur.Name != name {
		if _, err := p.svc.UseProfile(ctx, name); err != nil {
			p.fields[fieldName].SetError(err.Error())
			return p, nil
		}
	}
	if _, err := p.svc.EditProfile(ctx, strings.TrimSpace(p.fields[fieldObjective].Value()), examDate); err != nil {
		p.fields[fieldObjective].SetError(err.Error())
		return p, nil
	}
	return p, p.done()
}

func nameError(err error) string {
	if errors.Is(err, profile.ErrInvalidName) {
		return "Enter a name of 1 to 20 characters."
	}
	return err.Error()
}

func (p *ProfileScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	var sections []string
	if _, ok := p.svc.Profile(); ok {
		sections = append(sections, theme.Title.Width(cw).Render("Your profile"))
	} else {
		sections = append(sections, theme.Title.Width(cw).Render("Welcome! Who is studying?"))
	}
	for i := range p.fields {
		sections = append(sections, p.fields[i].View())
	}
	if len(p.others) > 0 {
		sections = append(sections, theme.Hint.Render("Saved profiles: "+strings.Join(p.others, ", ")+". Type a name to switch."))
	}
	return layout.Center(strings.Join(sections, "\n\n"), width, height)
}
