// Package stats derives progress figures from the bank and the
// self-assessment sets.
package stats

import (
	"math"

	"github.com/seiyeolo/park-golf-master/internal/bank"
)

// Marks is the read side of the self-assessment tracker.
type Marks interface {
	IsKnown(id int) bool
	IsUnknown(id int) bool
}

// CategoryStats are the figures for one category.
type CategoryStats struct {
	Name    string
	Total   int
	Studied int
	Known   int
	Unknown int
	// Percent is Studied over Total.
	Percent int
}

// Summary are the overall figures.
type Summary struct {
	Total   int
	Studied int
	Known   int
	Unknown int

	// StudiedPercent is of Total; KnownPercent and UnknownPercent are of
	// Studied.
	StudiedPercent int
	KnownPercent   int
	UnknownPercent int

	Categories []CategoryStats
}

// Percent returns round(100*part/whole), or 0 when whole is 0.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}

// Compute walks the bank once. Marks for ids outside the bank are ignored.
func Compute(b *bank.Bank, m Marks) Summary {
	var s Summary
	byName := make(map[string]*CategoryStats)
	for _, c := range b.Categories() {
		s.Categories = append(s.Categories, CategoryStats{Name: c.Name})
	}
	for i := range s.Categories {
		byName[s.Categories[i].Name] = &s.Categories[i]
	}

	for _, q := range b.All() {
		cs := byName[q.Category]
		cs.Total++
		s.Total++
		switch {
		case m.IsKnown(q.ID):
			cs.Known++
			s.Known++
		case m.IsUnknown(q.ID):
			cs.Unknown++
			s.Unknown++
		}
	}

	s.Studied = s.Known + s.Unknown
	s.StudiedPercent = Percent(s.Studied, s.Total)
	s.KnownPercent = Percent(s.Known, s.Studied)
	s.UnknownPercent = Percent(s.Unknown, s.Studied)
	for i := range s.Categories {
		cs := &s.Categories[i]
		cs.Studied = cs.Known + cs.Unknown
		cs.Percent = Percent(cs.Studied, cs.Total)
	}
	return s
}
