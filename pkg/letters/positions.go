package letters

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Positions holds one allowed-letter Set per word position.
// Every position starts out holding the full alphabet.
type Positions struct {
	sets []Set
}

// NewPositions returns width positions, each reset to the full alphabet.
func NewPositions(width int) *Positions {
	p := &Positions{sets: make([]Set, width)}
	p.ResetAll()
	return p
}

// Width returns the number of positions.
func (p *Positions) Width() int {
	return len(p.sets)
}

// ResetAll sets every position back to the full alphabet.
func (p *Positions) ResetAll() {
	for i := range p.sets {
		p.sets[i] = Full()
	}
	log.Debug("letter sets reset")
}

func (p *Positions) checkPos(pos int) error {
	if pos < 0 || pos >= len(p.sets) {
		return fmt.Errorf("%w: %d (width %d)", ErrPosition, pos, len(p.sets))
	}
	return nil
}

// update parses letters and applies fn to the set at pos.
// Nothing changes when letters or pos are invalid.
func (p *Positions) update(pos int, letters string, fn func(cur, arg Set) Set) error {
	if err := p.checkPos(pos); err != nil {
		return err
	}
	arg, err := Parse(letters)
	if err != nil {
		return err
	}
	p.sets[pos] = fn(p.sets[pos], arg)
	return nil
}

// Add puts letters into the set at pos. Letters already present are ignored.
func (p *Positions) Add(pos int, letters string) error {
	return p.update(pos, letters, Set.Union)
}

// Remove takes letters out of the set at pos. Absent letters are ignored.
func (p *Positions) Remove(pos int, letters string) error {
	return p.update(pos, letters, Set.Without)
}

// Replace makes the set at pos hold exactly letters.
func (p *Positions) Replace(pos int, letters string) error {
	return p.update(pos, letters, func(_, arg Set) Set { return arg })
}

// Contains reports whether letter is allowed at pos. Out of range positions
// allow nothing.
func (p *Positions) Contains(pos int, letter byte) bool {
	if p.checkPos(pos) != nil {
		return false
	}
	return p.sets[pos].Contains(letter)
}

// Get returns a copy of the set at pos.
func (p *Positions) Get(pos int) (Set, error) {
	if err := p.checkPos(pos); err != nil {
		return 0, err
	}
	return p.sets[pos], nil
}

// Snapshot returns a copy of every position's set.
func (p *Positions) Snapshot() []Set {
	out := make([]Set, len(p.sets))
	copy(out, p.sets)
	return out
}

// EliminateAll removes letters from every position.
func (p *Positions) EliminateAll(letters string) error {
	set, err := Parse(letters)
	if err != nil {
		return err
	}
	for i := range p.sets {
		p.sets[i] = p.sets[i].Without(set)
	}
	return nil
}

// RestoreAll adds letters back to every position.
func (p *Positions) RestoreAll(letters string) error {
	set, err := Parse(letters)
	if err != nil {
		return err
	}
	for i := range p.sets {
		p.sets[i] = p.sets[i].Union(set)
	}
	return nil
}
