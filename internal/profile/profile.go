package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxNameLength is the longest accepted user name, in characters.
const MaxNameLength = 20

// DateLayout is the calendar-date format of ExamDate.
const DateLayout = "2006-01-02"

var (
	// ErrNoProfile is returned by operations that need an active user.
	ErrNoProfile = errors.New("no active profile")

	// ErrInvalidName is returned for blank or overlong names.
	ErrInvalidName = errors.New("invalid profile name")

	// ErrInvalidDate is returned for exam dates not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid exam date")
)

// State is the profile lifecycle state.
type State int

const (
	NoProfile  State = iota // No current-user pointer persisted
	ProfileSet              // A user is active and their namespace is loaded
)

func (s State) String() string {
	if s == ProfileSet {
		return "profile-set"
	}
	return "no-profile"
}

// Profile is one user. Name doubles as the persistence namespace.
type Profile struct {
	Name      string `json:"name"`
	Objective string `json:"objective"`
	ExamDate  string `json:"examDate"`
}

// NormalizeName trims name and validates its length.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return "", fmt.Errorf("%w: %d characters, max %d", ErrInvalidName, n, MaxNameLength)
	}
	return name, nil
}

// ValidateExamDate accepts "" (unset) or a YYYY-MM-DD date.
func ValidateExamDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// DaysUntilExam returns whole days from now's local calendar day to the exam
// day. It is negative once the exam has passed and ok is false when no valid
// date is set.
func (p Profile) DaysUntilExam(now time.Time) (days int, ok bool) {
	if p.ExamDate == "" {
		return 0, false
	}
	exam, err := time.Parse(DateLayout, p.ExamDate)
	if err != nil {
		return 0, false
	}
	// Compare calendar days in UTC so DST shifts never cost a day.
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	diff := exam.Sub(today)
	return int(diff.Hours() / 24), true
}

// DDay formats the countdown the way the welcome screen shows it.
func (p Profile) DDay(now time.Time) string {
	days, ok := p.DaysUntilExam(now)
	switch {
	case !ok:
		return ""
	case days < 0:
		return "Exam done"
	case days == 0:
		return "D-Day!"
	default:
		return fmt.Sprintf("D-%d", days)
	}
}
