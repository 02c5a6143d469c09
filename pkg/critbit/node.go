package critbit

import "fmt"

type nodeKind int

const (
	kindInner nodeKind = iota
	kindLeaf
)

// node is either a *leaf or an *inner.
type node interface {
	kind() nodeKind
}

// leaf owns one stored word.
type leaf struct {
	key string
}

func (*leaf) kind() nodeKind { return kindLeaf }

// inner branches on a single bit of the key.
// otherBits has every bit set except the critical one, so a smaller
// otherBits means a more significant critical bit.
type inner struct {
	child     [2]node
	offset    int
	otherBits byte
}

func (*inner) kind() nodeKind { return kindInner }

func (n *inner) direction(key string) int {
	return direction(keyByte(key, n.offset), n.otherBits)
}

func (n *inner) discriminator() Discriminator {
	return Discriminator{Offset: n.offset, Bit: bitPosition(n.otherBits)}
}

// after reports whether n sorts after the discriminator (offset, otherBits)
// in path order.
func (n *inner) after(offset int, otherBits byte) bool {
	if n.offset != offset {
		return n.offset > offset
	}
	return n.otherBits > otherBits
}

// Discriminator identifies the bit an internal node branches on.
// Bit 7 is the most significant bit of the byte.
type Discriminator struct {
	Offset int
	Bit    uint8
}

// Less reports whether d must appear above o on any root-to-leaf path.
func (d Discriminator) Less(o Discriminator) bool {
	if d.Offset != o.Offset {
		return d.Offset < o.Offset
	}
	return d.Bit > o.Bit
}

func (d Discriminator) String() string {
	return fmt.Sprintf("%d.%d", d.Offset, d.Bit)
}

// keyByte returns the byte at i, or the implicit terminator past the end.
func keyByte(key string, i int) byte {
	if i < len(key) {
		return key[i]
	}
	return 0
}

// direction is 1 when the critical bit of c is set.
func direction(c, otherBits byte) int {
	return (1 + int(otherBits|c)) >> 8
}

// critical finds the first differing byte of a and b and the mask of the
// most significant differing bit in it. a and b must differ.
func critical(a, b string) (int, byte) {
	offset := 0
	for keyByte(a, offset) == keyByte(b, offset) {
		offset++
	}

	diff := keyByte(a, offset) ^ keyByte(b, offset)
	diff |= diff >> 1
	diff |= diff >> 2
	diff |= diff >> 4
	diff &^= diff >> 1

	return offset, diff ^ 0xFF
}

func bitPosition(otherBits byte) uint8 {
	mask := ^otherBits
	var pos uint8
	for mask > 1 {
		mask >>= 1
		pos++
	}
	return pos
}
