package dictionary

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Lexicon remembers where each accepted word first appeared in the
// dictionary source and answers prefix listings for the CLI.
type Lexicon struct {
	trie  *patricia.Trie
	words int
}

// NewLexicon returns an empty lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{trie: patricia.NewTrie()}
}

// Add records word as first seen at line. It returns false if the word was
// already recorded, keeping the earlier line.
func (l *Lexicon) Add(word string, line int) bool {
	if !l.trie.Insert(patricia.Prefix(word), line) {
		return false
	}
	l.words++
	return true
}

// FirstSeen returns the source line word was first read from.
func (l *Lexicon) FirstSeen(word string) (int, bool) {
	item := l.trie.Get(patricia.Prefix(word))
	if item == nil {
		return 0, false
	}
	line, ok := item.(int)
	if !ok {
		log.Errorf("Unknown item type: %T for word %s", item, word)
		return 0, false
	}
	return line, true
}

// WithPrefix returns up to limit recorded words starting with prefix, sorted.
// limit <= 0 returns all of them.
func (l *Lexicon) WithPrefix(prefix string, limit int) []string {
	var words []string
	// sparse child lists are not visited in key order
	err := l.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		words = append(words, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting lexicon subtree: %v", err)
		return nil
	}
	sort.Strings(words)
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}

// Len returns the number of recorded words.
func (l *Lexicon) Len() int {
	return l.words
}
