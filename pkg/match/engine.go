/*
Package match evaluates literal/wildcard patterns and required letters against
every word of a crit-bit index.

An Engine owns the index and the positional letter sets that wildcard
positions resolve against. Queries always scan the whole corpus in index
order: wildcard and required-letter constraints do not map to a contiguous key
range, and a full scan over a few thousand words is cheap.

	e, _ := match.New(match.DefaultOptions())
	_ = e.Insert("stone")
	_ = e.Letters().Remove(0, "a")
	res, err := e.Query("?t?ne", "")

An Engine is not safe for concurrent use.
*/
package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bastiangx/wordsolve/pkg/critbit"
	"github.com/bastiangx/wordsolve/pkg/letters"
	"github.com/charmbracelet/log"
)

// DefaultWildcard marks a pattern position resolved by the letter sets.
const DefaultWildcard = '?'

// ErrPatternLength reports a pattern that cannot match any stored word.
var ErrPatternLength = errors.New("pattern length mismatch")

// Options configures matching behaviour.
type Options struct {
	// Wildcard is the pattern byte that defers to the positional sets.
	Wildcard byte
	// CountRepeats makes a required letter listed n times need n occurrences.
	CountRepeats bool
	// Exclusions lists letters never allowed at a position, on top of the
	// positional sets. Index i applies to position i.
	Exclusions []string
}

// DefaultOptions returns set semantics for required letters, '?' wildcards
// and no structural exclusions.
func DefaultOptions() Options {
	return Options{Wildcard: DefaultWildcard}
}

// Result holds the words a query matched, in index order.
type Result struct {
	Words []string
	// Count is the total number of matches, even when Words was limited.
	Count int
	// Mismatch is set when the pattern could not match anything.
	Mismatch error
}

// Solver is the query surface the command line and IPC front ends drive.
type Solver interface {
	QueryLimit(pattern, required string, limit int) (Result, error)
	Find(word string) (string, bool, error)
	Letters() *letters.Positions
	Options() Options
	Len() int
}

// Engine owns a word index and the letter sets queries resolve against.
type Engine struct {
	tree     *critbit.Tree
	sets     *letters.Positions
	excluded []letters.Set
	opts     Options
}

// New returns an empty engine.
func New(opts Options) (*Engine, error) {
	if opts.Wildcard == 0 {
		opts.Wildcard = DefaultWildcard
	}
	if _, ok := letters.Index(opts.Wildcard); ok {
		return nil, fmt.Errorf("wildcard %q is a letter", opts.Wildcard)
	}
	if len(opts.Exclusions) > critbit.WordLen {
		return nil, fmt.Errorf("%d exclusion entries for %d positions", len(opts.Exclusions), critbit.WordLen)
	}

	excluded := make([]letters.Set, critbit.WordLen)
	for i, s := range opts.Exclusions {
		set, err := letters.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("exclusions for position %d: %w", i+1, err)
		}
		excluded[i] = set
	}

	return &Engine{
		tree:     critbit.New(),
		sets:     letters.NewPositions(critbit.WordLen),
		excluded: excluded,
		opts:     opts,
	}, nil
}

// Insert adds a validated word to the index.
func (e *Engine) Insert(word string) error {
	return e.tree.Insert(word)
}

// Find looks up an exact word. Errors come from a broken index.
func (e *Engine) Find(word string) (string, bool, error) {
	found, ok, err := e.tree.Find(word)
	if err != nil {
		return "", false, fmt.Errorf("find %q: %w", word, err)
	}
	return found, ok, nil
}

// Len returns the number of indexed words.
func (e *Engine) Len() int {
	return e.tree.Len()
}

// Letters returns the positional letter sets consulted by wildcards.
func (e *Engine) Letters() *letters.Positions {
	return e.sets
}

// Options returns the options the engine was built with.
func (e *Engine) Options() Options {
	return e.opts
}

// Close releases the index. Letter sets are kept.
func (e *Engine) Close() {
	e.tree.Close()
}

// Query returns every indexed word matching pattern that also contains all
// required letters. An empty pattern matches like all wildcards and an
// empty required string requires nothing.
func (e *Engine) Query(pattern, required string) (Result, error) {
	return e.QueryLimit(pattern, required, 0)
}

// QueryLimit is Query keeping at most limit words in the result.
// Result.Count still reports every match. limit <= 0 keeps all words.
func (e *Engine) QueryLimit(pattern, required string, limit int) (Result, error) {
	if pattern == "" {
		pattern = strings.Repeat(string(e.opts.Wildcard), critbit.WordLen)
	}
	if len(pattern) != critbit.WordLen {
		err := fmt.Errorf("%w: %q has %d letters, want %d", ErrPatternLength, pattern, len(pattern), critbit.WordLen)
		log.Warn("No words can match", "err", err)
		return Result{Mismatch: err}, nil
	}

	req := letters.ParseRequired(required, e.opts.CountRepeats)
	res := Result{Words: []string{}}

	err := e.tree.Walk(func(word string) error {
		if !e.matchPattern(word, pattern) || !req.SatisfiedBy(word) {
			return nil
		}
		res.Count++
		if limit <= 0 || len(res.Words) < limit {
			res.Words = append(res.Words, word)
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("query %q: %w", pattern, err)
	}

	log.Debugf("Query pattern=%q required=%q matched %d of %d", pattern, req, res.Count, e.tree.Len())
	return res, nil
}

// matchPattern checks word against pattern position by position.
func (e *Engine) matchPattern(word, pattern string) bool {
	if len(word) != len(pattern) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		c := word[i]
		if e.excluded[i].Contains(c) {
			return false
		}
		if pattern[i] == e.opts.Wildcard {
			if !e.sets.Contains(i, c) {
				return false
			}
			continue
		}
		if !sameLetter(c, pattern[i]) {
			return false
		}
	}
	return true
}

// sameLetter compares two letters ignoring case. Non-letters never match.
func sameLetter(a, b byte) bool {
	ia, ok := letters.Index(a)
	if !ok {
		return false
	}
	ib, ok := letters.Index(b)
	return ok && ia == ib
}
