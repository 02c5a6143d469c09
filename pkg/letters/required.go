package letters

// Required is a position-unaware set of letters that must each appear
// somewhere in a word. The zero value requires nothing.
type Required struct {
	counts    [len(Alphabet)]uint8
	remaining int
}

// ParseRequired builds a requirement from s, skipping anything that is not a
// letter. By default a letter listed twice is still a single requirement;
// with repeats set, each listing needs its own occurrence in the word.
func ParseRequired(s string, repeats bool) Required {
	var r Required
	for i := 0; i < len(s); i++ {
		idx, ok := Index(s[i])
		if !ok {
			continue
		}
		if r.counts[idx] > 0 && !repeats {
			continue
		}
		if r.counts[idx] == 255 {
			continue
		}
		r.counts[idx]++
		r.remaining++
	}
	return r
}

// Empty reports whether nothing is required.
func (r Required) Empty() bool {
	return r.remaining == 0
}

// SatisfiedBy scans word left to right, crossing off one required
// occurrence per matching letter.
func (r Required) SatisfiedBy(word string) bool {
	if r.remaining == 0 {
		return true
	}
	// r is a copy
	for i := 0; i < len(word) && r.remaining > 0; i++ {
		idx, ok := Index(word[i])
		if !ok || r.counts[idx] == 0 {
			continue
		}
		r.counts[idx]--
		r.remaining--
	}
	return r.remaining == 0
}

// String lists the required letters, repeated as many times as needed.
func (r Required) String() string {
	b := make([]byte, 0, r.remaining)
	for i, n := range r.counts {
		for j := uint8(0); j < n; j++ {
			b = append(b, Alphabet[i])
		}
	}
	return string(b)
}
