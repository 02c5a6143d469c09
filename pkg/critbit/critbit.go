/*
Package critbit implements an ordered set of fixed-length words stored in a
binary crit-bit trie.

Each internal node branches on the most significant bit in which the two key
groups below it differ. Along any root-to-leaf path the branch bits are ordered
by byte offset and then by decreasing significance, so the shape of the tree
only depends on the set of stored words and never on the order they were
inserted in. A pre-order walk yields the words in byte-wise sorted order.

	t := critbit.New()
	_ = t.Insert("stone")
	word, ok, err := t.Find("stone")

The tree has no delete and no internal locking: callers serialize access.
*/
package critbit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// WordLen is the length of every word the solver stores.
const WordLen = 5

// Tree is a crit-bit trie over words. The zero value is an empty tree.
type Tree struct {
	root node
	size int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of stored words.
func (t *Tree) Len() int {
	return t.size
}

// Empty reports whether the tree holds no words.
func (t *Tree) Empty() bool {
	return t.root == nil
}

// nearest walks to the leaf sharing the longest bit prefix with key.
func (t *Tree) nearest(op, key string) (*leaf, error) {
	n := t.root
	for {
		switch v := n.(type) {
		case *leaf:
			return v, nil
		case *inner:
			n = v.child[v.direction(key)]
		default:
			return nil, badNode(op, n)
		}
	}
}

// Insert adds word to the tree. It returns ErrDuplicateKey if the word is
// already stored, in which case the tree is left unchanged.
// Word length and charset are the caller's responsibility.
func (t *Tree) Insert(word string) error {
	if t.root == nil {
		t.root = &leaf{key: strings.Clone(word)}
		t.size++
		return nil
	}

	near, err := t.nearest("insert", word)
	if err != nil {
		return err
	}
	if near.key == word {
		return ErrDuplicateKey
	}

	offset, otherBits := critical(word, near.key)
	dir := direction(keyByte(word, offset), otherBits)

	where := &t.root
	for {
		n, ok := (*where).(*inner)
		if !ok {
			break
		}
		if n.after(offset, otherBits) {
			break
		}
		where = &n.child[n.direction(word)]
	}
	if *where == nil {
		return badNode("insert", *where)
	}

	split := &inner{offset: offset, otherBits: otherBits}
	split.child[dir] = &leaf{key: strings.Clone(word)}
	split.child[1-dir] = *where
	*where = split
	t.size++

	log.Debugf("critbit: inserted %q at %s", word, split.discriminator())
	return nil
}

// Find returns the stored word equal to word. A broken tree is reported
// as an *InvariantError, never as a miss.
func (t *Tree) Find(word string) (string, bool, error) {
	if t.root == nil {
		return "", false, nil
	}
	near, err := t.nearest("find", word)
	if err != nil {
		return "", false, err
	}
	// reaching a leaf only means a shared bit prefix
	if near.key != word {
		return "", false, nil
	}
	return near.key, true, nil
}

// Walk calls fn for every stored word in increasing byte order.
// Returning ErrStopWalk from fn ends the walk with a nil error; any other
// error ends it and is returned.
func (t *Tree) Walk(fn func(word string) error) error {
	if t.root == nil {
		return nil
	}
	err := walk(t.root, fn)
	if errors.Is(err, ErrStopWalk) {
		return nil
	}
	return err
}

func walk(n node, fn func(string) error) error {
	switch v := n.(type) {
	case *leaf:
		return fn(v.key)
	case *inner:
		for dir := 0; dir < 2; dir++ {
			if err := walk(v.child[dir], fn); err != nil {
				return err
			}
		}
		return nil
	default:
		return badNode("walk", n)
	}
}

// Words returns a sorted copy of every stored word.
func (t *Tree) Words() ([]string, error) {
	words := make([]string, 0, t.size)
	err := t.Walk(func(word string) error {
		words = append(words, word)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// Check verifies that branch bits are strictly ordered along every path
// and that each leaf sits on the side its key selects.
func (t *Tree) Check() error {
	if t.root == nil {
		return nil
	}
	_, err := check(t.root, nil)
	return err
}

func check(n node, parent *Discriminator) ([]string, error) {
	switch v := n.(type) {
	case *leaf:
		return []string{v.key}, nil
	case *inner:
		d := v.discriminator()
		if parent != nil && !parent.Less(d) {
			return nil, &InvariantError{
				Op:     "check",
				Detail: fmt.Sprintf("discriminator %s below %s", d, parent),
			}
		}
		var keys []string
		for dir := 0; dir < 2; dir++ {
			sub, err := check(v.child[dir], &d)
			if err != nil {
				return nil, err
			}
			for _, k := range sub {
				if v.direction(k) != dir {
					return nil, &InvariantError{
						Op:     "check",
						Detail: fmt.Sprintf("key %q on side %d of %s", k, dir, d),
					}
				}
			}
			keys = append(keys, sub...)
		}
		return keys, nil
	default:
		return nil, badNode("check", n)
	}
}

// Shape renders the tree structure as nested "(offset.bit left right)"
// groups. Two trees holding the same words render identically.
func (t *Tree) Shape() string {
	var b strings.Builder
	shape(&b, t.root)
	return b.String()
}

func shape(b *strings.Builder, n node) {
	switch v := n.(type) {
	case nil:
		b.WriteString("()")
	case *leaf:
		b.WriteString(v.key)
	case *inner:
		b.WriteString("(")
		b.WriteString(v.discriminator().String())
		b.WriteString(" ")
		shape(b, v.child[0])
		b.WriteString(" ")
		shape(b, v.child[1])
		b.WriteString(")")
	}
}

// Close drops every node. The tree is empty and reusable afterwards.
func (t *Tree) Close() {
	t.root = nil
	t.size = 0
}
