/*
Package dictionary reads newline-delimited word lists and feeds the words that
fit the puzzle into an index.

A line is accepted when it is exactly the word length and made only of
lowercase ASCII letters; everything else (proper nouns, plurals with
apostrophes, longer words) is skipped. Words the index already holds are
counted as duplicates and logged with the line they first appeared on.
*/
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/wordsolve/pkg/critbit"
	"github.com/charmbracelet/log"
)

// DefaultPath is the system word list most unix systems ship.
const DefaultPath = "/usr/share/dict/words"

// Inserter is the index a Loader feeds.
type Inserter interface {
	Insert(word string) error
}

// Stats counts what happened to each line of a source.
type Stats struct {
	Lines      int
	Accepted   int
	Rejected   int
	Duplicates int
}

// Loader filters a word source and inserts accepted words.
type Loader struct {
	wordLen int
	lexicon *Lexicon
	stats   Stats
}

// NewLoader returns a loader accepting words of wordLen letters.
func NewLoader(wordLen int) *Loader {
	return &Loader{
		wordLen: wordLen,
		lexicon: NewLexicon(),
	}
}

// Lexicon returns the words accepted so far with their source lines.
func (l *Loader) Lexicon() *Lexicon {
	return l.lexicon
}

// Stats returns the counters accumulated over every load.
func (l *Loader) Stats() Stats {
	return l.stats
}

// Load reads the word list at path into dst.
func (l *Loader) Load(path string, dst Inserter) (Stats, error) {
	if err := ValidateTextFile(path); err != nil {
		return Stats{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	stats, err := l.LoadReader(file, dst)
	if err != nil {
		return stats, fmt.Errorf("failed to load dictionary %s: %w", path, err)
	}
	log.Debugf("Dictionary %s: %d lines, %d accepted, %d rejected, %d duplicates",
		path, stats.Lines, stats.Accepted, stats.Rejected, stats.Duplicates)
	return stats, nil
}

// LoadReader reads newline-delimited words from r into dst. The returned
// Stats cover this call only. Any insert error other than a duplicate key
// stops the load.
func (l *Loader) LoadReader(r io.Reader, dst Inserter) (Stats, error) {
	var stats Stats
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		stats.Lines++
		word := strings.TrimRight(scanner.Text(), "\r")
		if !l.Accepts(word) {
			stats.Rejected++
			continue
		}

		err := dst.Insert(word)
		switch {
		case err == nil:
			l.lexicon.Add(word, stats.Lines)
			stats.Accepted++
		case errors.Is(err, critbit.ErrDuplicateKey):
			stats.Duplicates++
			if first, ok := l.lexicon.FirstSeen(word); ok {
				log.Debugf("Duplicate word %q at line %d (first seen at line %d)", word, stats.Lines, first)
			} else {
				log.Debugf("Duplicate word %q at line %d", word, stats.Lines)
			}
		default:
			l.add(stats)
			return stats, fmt.Errorf("line %d: %w", stats.Lines, err)
		}
	}
	l.add(stats)

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read words: %w", err)
	}
	return stats, nil
}

func (l *Loader) add(s Stats) {
	l.stats.Lines += s.Lines
	l.stats.Accepted += s.Accepted
	l.stats.Rejected += s.Rejected
	l.stats.Duplicates += s.Duplicates
}

// Accepts reports whether word has the right length and only lowercase
// ASCII letters.
func (l *Loader) Accepts(word string) bool {
	if len(word) != l.wordLen {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}
