package match

import (
	"errors"
	"reflect"
	"testing"

	"github.com/bastiangx/wordsolve/pkg/critbit"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var fruit = []string{"peach", "stone", "apple", "mango", "grape"}

func newEngine(t *testing.T, opts Options, words ...string) *Engine {
	t.Helper()
	e, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, w := range words {
		if err := e.Insert(w); err != nil {
			t.Fatalf("Insert(%q) error = %v", w, err)
		}
	}
	return e
}

func mustQuery(t *testing.T, e *Engine, pattern, required string) Result {
	t.Helper()
	res, err := e.Query(pattern, required)
	if err != nil {
		t.Fatalf("Query(%q, %q) error = %v", pattern, required, err)
	}
	if res.Count != len(res.Words) {
		t.Fatalf("Query(%q, %q) count = %d, words = %d", pattern, required, res.Count, len(res.Words))
	}
	return res
}

// walks through a short solving session on a five word corpus
func TestScenario(t *testing.T) {
	e := newEngine(t, DefaultOptions(), fruit...)

	if w, ok, err := e.Find("grape"); err != nil || !ok || w != "grape" {
		t.Fatalf("Find(grape) = %q, %v, %v", w, ok, err)
	}

	steps := []struct {
		name     string
		setup    func() error
		pattern  string
		required string
		want     []string
	}{
		{
			name:    "everything",
			pattern: "?????",
			want:    []string{"apple", "grape", "mango", "peach", "stone"},
		},
		{
			name:    "partial literal",
			pattern: "?t?ne",
			want:    []string{"stone"},
		},
		{
			name:    "remove a from first position",
			setup:   func() error { return e.Letters().Remove(0, "a") },
			pattern: "?????",
			want:    []string{"grape", "mango", "peach", "stone"},
		},
		{
			name:    "restore a to first position",
			setup:   func() error { return e.Letters().Add(0, "a") },
			pattern: "?????",
			want:    []string{"apple", "grape", "mango", "peach", "stone"},
		},
		{
			name:    "pin first position to a",
			setup:   func() error { return e.Letters().Replace(0, "a") },
			pattern: "?????",
			want:    []string{"apple"},
		},
		{
			name:    "reset",
			setup:   func() error { e.Letters().ResetAll(); return nil },
			pattern: "?????",
			want:    []string{"apple", "grape", "mango", "peach", "stone"},
		},
		{
			name:     "required letter nobody has",
			pattern:  "?????",
			required: "z",
			want:     []string{},
		},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			if step.setup != nil {
				if err := step.setup(); err != nil {
					t.Fatalf("setup error = %v", err)
				}
			}
			res := mustQuery(t, e, step.pattern, step.required)
			if !reflect.DeepEqual(res.Words, step.want) {
				t.Errorf("Query(%q, %q) = %v, want %v", step.pattern, step.required, res.Words, step.want)
			}
		})
	}
}

// pinning a after removing it brings back only apple; the other words
// need their first letters added back explicitly.
func TestReplaceRestoresLetter(t *testing.T) {
	e := newEngine(t, DefaultOptions(), fruit...)
	if err := e.Letters().Remove(0, "a"); err != nil {
		t.Fatal(err)
	}
	if res := mustQuery(t, e, "", ""); res.Count != 4 {
		t.Fatalf("count after remove = %d, want 4", res.Count)
	}
	if err := e.Letters().Replace(0, "a"); err != nil {
		t.Fatal(err)
	}
	if res := mustQuery(t, e, "", ""); !reflect.DeepEqual(res.Words, []string{"apple"}) {
		t.Fatalf("words after replace = %v, want [apple]", res.Words)
	}
	if err := e.Letters().Add(0, "gmps"); err != nil {
		t.Fatal(err)
	}
	if res := mustQuery(t, e, "", ""); res.Count != 5 {
		t.Errorf("count after add = %d, want 5", res.Count)
	}
}

func TestLiteralPattern(t *testing.T) {
	e := newEngine(t, DefaultOptions(), fruit...)

	tests := []struct {
		pattern string
		want    []string
	}{
		{"grape", []string{"grape"}},
		{"GRAPE", []string{"grape"}},
		{"gRaPe", []string{"grape"}},
		{"grapf", []string{}},
		{"GR?PE", []string{"grape"}},
		{"gr@pe", []string{}},
		{"", []string{"apple", "grape", "mango", "peach", "stone"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			res := mustQuery(t, e, tt.pattern, "")
			if !reflect.DeepEqual(res.Words, tt.want) {
				t.Errorf("Query(%q) = %v, want %v", tt.pattern, res.Words, tt.want)
			}
		})
	}
}

func TestPatternLengthMismatch(t *testing.T) {
	e := newEngine(t, DefaultOptions(), fruit...)
	for _, p := range []string{"????", "??????", "app"} {
		res, err := e.Query(p, "")
		if err != nil {
			t.Fatalf("Query(%q) error = %v, want nil", p, err)
		}
		if res.Count != 0 || len(res.Words) != 0 {
			t.Errorf("Query(%q) matched %v", p, res.Words)
		}
		if !errors.Is(res.Mismatch, ErrPatternLength) {
			t.Errorf("Query(%q) mismatch = %v, want ErrPatternLength", p, res.Mismatch)
		}
	}
}

func TestPositionalFilter(t *testing.T) {
	words := []string{"xenon", "axles", "boxer", "relax", "sixty", "crane", "toxic"}
	e := newEngine(t, DefaultOptions(), words...)

	for pos := 0; pos < critbit.WordLen; pos++ {
		if err := e.Letters().Remove(pos, "x"); err != nil {
			t.Fatal(err)
		}
		res := mustQuery(t, e, "", "")
		for _, w := range res.Words {
			if w[pos] == 'x' {
				t.Errorf("after remove(%d, x) result has %q", pos, w)
			}
		}
	}
	if res := mustQuery(t, e, "", ""); !reflect.DeepEqual(res.Words, []string{"crane"}) {
		t.Errorf("with x removed everywhere got %v", res.Words)
	}

	e.Letters().ResetAll()
	if res := mustQuery(t, e, "", ""); res.Count != len(words) {
		t.Errorf("after ResetAll count = %d, want %d", res.Count, len(words))
	}
}

func TestRequiredLetters(t *testing.T) {
	words := []string{"crane", "eerie", "geese", "melee", "stone"}

	tests := []struct {
		name     string
		opts     Options
		required string
		want     []string
	}{
		{"none", DefaultOptions(), "", words},
		{"single", DefaultOptions(), "s", []string{"geese", "stone"}},
		{"several", DefaultOptions(), "rc", []string{"crane"}},
		{"set semantics", DefaultOptions(), "eee", words},
		{"multiset", Options{CountRepeats: true}, "eee", []string{"eerie", "geese", "melee"}},
		{"missing", DefaultOptions(), "q", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, tt.opts, words...)
			res := mustQuery(t, e, "", tt.required)
			if !reflect.DeepEqual(res.Words, tt.want) {
				t.Errorf("required %q = %v, want %v", tt.required, res.Words, tt.want)
			}
		})
	}
}

func TestExclusions(t *testing.T) {
	opts := DefaultOptions()
	opts.Exclusions = []string{"", "", "", "", "e"}
	e := newEngine(t, opts, fruit...)

	res := mustQuery(t, e, "", "")
	want := []string{"mango", "peach"}
	if !reflect.DeepEqual(res.Words, want) {
		t.Errorf("with last-position exclusion got %v, want %v", res.Words, want)
	}

	if _, err := New(Options{Exclusions: make([]string, 6)}); err == nil {
		t.Error("New accepted too many exclusion entries")
	}
	if _, err := New(Options{Exclusions: []string{"1"}}); err == nil {
		t.Error("New accepted a non-letter exclusion")
	}
}

func TestCustomWildcard(t *testing.T) {
	e := newEngine(t, Options{Wildcard: '.'}, fruit...)
	res := mustQuery(t, e, ".t.ne", "")
	if !reflect.DeepEqual(res.Words, []string{"stone"}) {
		t.Errorf("Query(.t.ne) = %v", res.Words)
	}
	if res := mustQuery(t, e, "", ""); res.Count != len(fruit) {
		t.Errorf("empty pattern with '.' wildcard count = %d", res.Count)
	}
	if _, err := New(Options{Wildcard: 'a'}); err == nil {
		t.Error("New accepted a letter as wildcard")
	}
}

func TestQueryLimit(t *testing.T) {
	e := newEngine(t, DefaultOptions(), fruit...)
	res, err := e.QueryLimit("", "", 2)
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 5 {
		t.Errorf("Count = %d, want 5", res.Count)
	}
	if !reflect.DeepEqual(res.Words, []string{"apple", "grape"}) {
		t.Errorf("Words = %v", res.Words)
	}
}

func TestDuplicateInsert(t *testing.T) {
	e := newEngine(t, DefaultOptions(), fruit...)
	if err := e.Insert("apple"); !errors.Is(err, critbit.ErrDuplicateKey) {
		t.Errorf("Insert duplicate error = %v", err)
	}
	if e.Len() != len(fruit) {
		t.Errorf("Len() = %d, want %d", e.Len(), len(fruit))
	}
}

func TestClose(t *testing.T) {
	e := newEngine(t, DefaultOptions(), fruit...)
	if err := e.Letters().Remove(1, "t"); err != nil {
		t.Fatal(err)
	}
	e.Close()
	if e.Len() != 0 {
		t.Errorf("Len() after Close = %d", e.Len())
	}
	if res := mustQuery(t, e, "", ""); res.Count != 0 {
		t.Errorf("query after Close matched %v", res.Words)
	}
	if e.Letters().Contains(1, 't') {
		t.Error("Close reset the letter sets")
	}
}

func BenchmarkQuery(b *testing.B) {
	e, _ := New(DefaultOptions())
	for i := 0; i < 26*26*4; i++ {
		w := []byte("aaaaa")
		w[0] = byte('a' + i%26)
		w[2] = byte('a' + (i/26)%26)
		w[4] = byte('a' + i/(26*26))
		_ = e.Insert(string(w))
	}
	_ = e.Letters().Remove(0, "aeiou")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Query("??a??", "bc")
	}
}
