package letters

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty", "", "", false},
		{"single", "x", "x", false},
		{"duplicates", "aabba", "ab", false},
		{"mixed case", "AbC", "abc", false},
		{"unordered", "zya", "ayz", false},
		{"digit", "a1", "", true},
		{"space", "a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidLetter) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidLetter", tt.input, err)
				}
				return
			}
			if got.String() != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFullSet(t *testing.T) {
	full := Full()
	if full.Len() != 26 {
		t.Errorf("Full().Len() = %d, want 26", full.Len())
	}
	if full.String() != Alphabet {
		t.Errorf("Full() = %q", full)
	}
	for _, c := range []byte("aZm") {
		if !full.Contains(c) {
			t.Errorf("Full() does not contain %q", c)
		}
	}
	if full.Contains('?') || full.Contains('1') {
		t.Error("Full() contains a non-letter")
	}
}

func TestPositions(t *testing.T) {
	p := NewPositions(5)

	tests := []struct {
		name  string
		op    func() error
		pos   int
		want  string
		errIs error
	}{
		{"remove one", func() error { return p.Remove(0, "a") }, 0, "bcdefghijklmnopqrstuvwxyz", nil},
		{"remove absent", func() error { return p.Remove(0, "a") }, 0, "bcdefghijklmnopqrstuvwxyz", nil},
		{"add back", func() error { return p.Add(0, "aa") }, 0, Alphabet, nil},
		{"replace", func() error { return p.Replace(2, "e") }, 2, "e", nil},
		{"add to pinned", func() error { return p.Add(2, "E") }, 2, "e", nil},
		{"invalid letters untouched", func() error { return p.Remove(2, "e!") }, 2, "e", ErrInvalidLetter},
		{"position too high", func() error { return p.Add(5, "a") }, 2, "e", ErrPosition},
		{"position negative", func() error { return p.Remove(-1, "a") }, 2, "e", ErrPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op()
			if tt.errIs == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.errIs != nil && !errors.Is(err, tt.errIs) {
				t.Fatalf("error = %v, want %v", err, tt.errIs)
			}
			got, err := p.Get(tt.pos)
			if err != nil {
				t.Fatalf("Get(%d) error = %v", tt.pos, err)
			}
			if got.String() != tt.want {
				t.Errorf("set[%d] = %q, want %q", tt.pos, got, tt.want)
			}
		})
	}

	if !p.Contains(2, 'E') || p.Contains(2, 'a') {
		t.Error("Contains on pinned position is wrong")
	}
	if p.Contains(9, 'a') {
		t.Error("Contains on out of range position returned true")
	}

	p.ResetAll()
	for i, s := range p.Snapshot() {
		if s != Full() {
			t.Errorf("position %d = %q after ResetAll", i, s)
		}
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	p := NewPositions(3)
	snap := p.Snapshot()
	snap[0] = 0
	if got, _ := p.Get(0); got != Full() {
		t.Error("modifying a snapshot changed the positions")
	}
}

func TestEliminateRestoreAll(t *testing.T) {
	p := NewPositions(5)
	if err := p.EliminateAll("xyz"); err != nil {
		t.Fatalf("EliminateAll error = %v", err)
	}
	for i := 0; i < p.Width(); i++ {
		for _, c := range []byte("xyz") {
			if p.Contains(i, c) {
				t.Errorf("position %d still contains %q", i, c)
			}
		}
	}
	if err := p.RestoreAll("y"); err != nil {
		t.Fatalf("RestoreAll error = %v", err)
	}
	for i := 0; i < p.Width(); i++ {
		if !p.Contains(i, 'y') || p.Contains(i, 'x') {
			t.Errorf("position %d = %q after restore", i, p.Snapshot()[i])
		}
	}
	if err := p.EliminateAll("7"); !errors.Is(err, ErrInvalidLetter) {
		t.Errorf("EliminateAll(\"7\") error = %v", err)
	}
}

func TestRequired(t *testing.T) {
	tests := []struct {
		name     string
		required string
		repeats  bool
		word     string
		want     bool
	}{
		{"empty requires nothing", "", false, "apple", true},
		{"single present", "p", false, "apple", true},
		{"single absent", "z", false, "apple", false},
		{"all present", "lpa", false, "apple", true},
		{"one missing", "lpz", false, "apple", false},
		{"set semantics collapse", "ee", false, "crane", true},
		{"multiset needs two", "ee", true, "crane", false},
		{"multiset satisfied", "pp", true, "apple", true},
		{"case insensitive", "AP", false, "apple", true},
		{"non letters skipped", "a, p", false, "apple", true},
		{"word non letters skipped", "ab", false, "a-b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseRequired(tt.required, tt.repeats)
			if got := r.SatisfiedBy(tt.word); got != tt.want {
				t.Errorf("ParseRequired(%q, %v).SatisfiedBy(%q) = %v, want %v",
					tt.required, tt.repeats, tt.word, got, tt.want)
			}
		})
	}
}

func TestRequiredReusable(t *testing.T) {
	r := ParseRequired("ap", false)
	if !r.SatisfiedBy("apple") {
		t.Fatal("first scan failed")
	}
	if !r.SatisfiedBy("paste") {
		t.Error("requirement consumed by previous scan")
	}
	if r.String() != "ap" {
		t.Errorf("String() = %q, want %q", r.String(), "ap")
	}
	if (Required{}).String() != "" || !(Required{}).Empty() {
		t.Error("zero Required is not empty")
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		c    byte
		want int
		ok   bool
	}{
		{'a', 0, true},
		{'A', 0, true},
		{'z', 25, true},
		{'Z', 25, true},
		{'?', 0, false},
		{'@', 0, false},
		{'[', 0, false},
		{'`', 0, false},
		{'{', 0, false},
	}
	for _, tt := range tests {
		if got, ok := Index(tt.c); got != tt.want || ok != tt.ok {
			t.Errorf("Index(%q) = %d, %v; want %d, %v", tt.c, got, ok, tt.want, tt.ok)
		}
	}
}
