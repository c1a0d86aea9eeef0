package filter

import (
	"errors"
	"testing"

	"github.com/seiyeolo/park-golf-master/internal/bank"
)

type unknownIDs map[int]bool

func (u unknownIDs) IsUnknown(id int) bool { return u[id] }

func testBank(t *testing.T) *bank.Bank {
	t.Helper()
	b, err := bank.New([]bank.Question{
		{ID: 1, Category: "A", Question: "q1"},
		{ID: 2, Category: "A", Question: "q2"},
		{ID: 3, Category: "B", Question: "q3"},
		{ID: 4, Category: "A", Question: "q4"},
		{ID: 5, Category: "B", Question: "q5"},
	})
	if err != nil {
		t.Fatalf("bank.New: %v", err)
	}
	return b
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDerive(t *testing.T) {
	b := testBank(t)
	unknown := unknownIDs{4: true, 2: true}

	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{"all", All(), []int{1, 2, 3, 4, 5}},
		{"category keeps bank order", Category("B"), []int{3, 5}},
		{"review in bank order", Review(), []int{2, 4}},
		{"unknown category is empty", Category("Z"), []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(b, tt.filter, unknown).IDs()
			if !equalInts(got, tt.want) {
				t.Errorf("Derive(%v) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestDerive_ReviewShrinksWhenMarkedKnown(t *testing.T) {
	b := testBank(t)
	unknown := unknownIDs{2: true, 4: true}

	if got := Derive(b, Review(), unknown).IDs(); !equalInts(got, []int{2, 4}) {
		t.Fatalf("review = %v, want [2 4]", got)
	}
	delete(unknown, 2)
	if got := Derive(b, Review(), unknown).IDs(); !equalInts(got, []int{4}) {
		t.Errorf("review after marking 2 known = %v, want [4]", got)
	}
}

func TestWorkingSet_At(t *testing.T) {
	b := testBank(t)

	empty := Derive(b, Review(), unknownIDs{})
	if _, err := empty.At(0); !errors.Is(err, ErrEmptyWorkingSet) {
		t.Errorf("At on empty set err = %v, want ErrEmptyWorkingSet", err)
	}

	ws := Derive(b, Category("B"), nil)
	q, err := ws.At(1)
	if err != nil {
		t.Fatalf("At(1): %v", err)
	}
	if q.ID != 5 {
		t.Errorf("At(1).ID = %d, want 5", q.ID)
	}
	if _, err := ws.At(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("At(2) err = %v, want ErrOutOfRange", err)
	}
	if gi, _ := ws.GlobalIndex(1); gi != 4 {
		t.Errorf("GlobalIndex(1) = %d, want 4", gi)
	}
}

func TestWorkingSet_PositionOf(t *testing.T) {
	ws := Derive(testBank(t), Category("A"), nil)

	if pos, ok := ws.PositionOf(4); !ok || pos != 2 {
		t.Errorf("PositionOf(4) = %d, %v, want 2, true", pos, ok)
	}
	if _, ok := ws.PositionOf(3); ok {
		t.Error("PositionOf(3) found a question outside the category")
	}
	if _, ok := ws.PositionOf(99); ok {
		t.Error("PositionOf(99) found a missing question")
	}
}

func TestSelectionRoundTrip(t *testing.T) {
	b := testBank(t)
	str := func(s string) *string { return &s }

	tests := []struct {
		name string
		sel  *string
		want Filter
	}{
		{"null is all", nil, All()},
		{"unknown is review", str("unknown"), Review()},
		{"category", str("B"), Category("B")},
		{"stale category falls back", str("gone"), All()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromSelection(b, tt.sel)
			if got != tt.want {
				t.Errorf("FromSelection = %v, want %v", got, tt.want)
			}
		})
	}

	if All().Selection() != nil {
		t.Error("All().Selection() should be nil")
	}
	if s := Category("A").Selection(); s == nil || *s != "A" {
		t.Errorf("Category(A).Selection() = %v", s)
	}
}

func TestOptions(t *testing.T) {
	b := testBank(t)

	opts := Options(b, 0)
	if len(opts) != 3 {
		t.Fatalf("len(Options) = %d, want 3", len(opts))
	}
	if opts[0].Filter != All() || opts[0].Count != 5 {
		t.Errorf("first option = %+v, want All/5", opts[0])
	}

	opts = Options(b, 2)
	if len(opts) != 4 {
		t.Fatalf("len(Options) with unknowns = %d, want 4", len(opts))
	}
	if opts[1].Filter != Review() || opts[1].Count != 2 {
		t.Errorf("second option = %+v, want Review/2", opts[1])
	}
	if opts[2].Label != "A" || opts[2].Count != 3 {
		t.Errorf("third option = %+v, want A/3", opts[2])
	}
}
