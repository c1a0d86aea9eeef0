// Package studytest builds study services over an in-memory store for tests.
package studytest

import (
	"context"
	"fmt"
	"testing"
	"time"


	"github.com/seiyeolo/park-golf-master/internal/bank"
	"github.com/seiyeolo/park-golf-master/internal/store"
	"github.com/seiyeolo/park-golf-master/internal/study"
)

// AccessCode is the code services built here accept.
const AccessCode = "parkgolf"

// Now is the fixed clock services built here use.
var Now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// Bank returns n questions with ids 1..n. The first half is category
// "Basics", the rest "Rules".
func Bank(t testing.TB, n int) *bank.Bank {
	t.Helper()
	qs := make([]bank.Question, 0, n)
	for id := 1; id <= n; id++ {
		cat := "Basics"
		if id > n/2 {
			cat = "Rules"
		}
		qs = append(qs, bank.Question{
			ID:       id,
			Category: cat,
			Question: fmt.Sprintf("Question number %d?", id),
			Answer:   fmt.Sprintf("Answer number %d.", id),
		})
	}
	b, err := bank.New(qs)
	if err != nil {
		t.Fatalf("bank.New: %v", err)
	}
	return b
}

// fixedRand always draws the first slot.
type fixedRand struct{}

func (fixedRand) IntN(int) int { return 0 }

// New returns a service over b. A non-empty user is made the active profile.
func New(t testing.TB, b *bank.Bank, user string) *study.Service {
	t.Helper()
	ctx := context.Background()
	svc, err := study.New(ctx, study.Options{
		Bank:       b,
		KV:         store.NewMemory(),
		AccessCode: AccessCode,
		Now:        func() time.Time { return Now },
		Rand:       fixedRand{},
	})
	if err != nil {
		t.Fatalf("study.New: %v", err)
	}
	if user != "" {
		if _, err := svc.UseProfile(ctx, user); err != nil {
			t.Fatalf("UseProfile: %v", err)
		}
	}
	return svc
}
