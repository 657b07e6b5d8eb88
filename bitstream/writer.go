package bitstream

type Writer struct {
	words []uint32
	cursor
}

// Creates a writer positioned at the start of the given words.
// Existing content is preserved except for the bits written.
func NewWriter(words []uint32) *Writer {
	return &Writer{ words: words }
}

// Returns the underlying words.
func (self *Writer) Words() []uint32 { return self.words }

// Returns the cursor position in bits from the start.
func (self *Writer) Tell() int { return self.cursor.Tell() }

// Sets the cursor position, in bits from the start.
func (self *Writer) Seek(offset int) { self.cursor.Seek(offset) }

func (self *Writer) WriteBit(bit bool) {
	mask := uint32(1) << uint(self.bit)
	if bit {
		self.words[self.word] |= mask
	} else {
		self.words[self.word] &= ^mask
	}
	self.advance(1)
}

// Writes the n lowest bits of value, LSB first. Fields crossing a
// word boundary are split: the first (32 - bitInWord) bits go to the
// current word, the rest to the next one. Bits outside the field are
// preserved.
func (self *Writer) WriteBits(value uint32, n int) {
	checkFieldSize(n)
	if n == 0 { return }
	value &= lowMask(n)

	firstSize := wordBits - self.bit
	if n <= firstSize {
		mask := lowMask(n) << uint(self.bit)
		self.words[self.word] = (self.words[self.word] & ^mask) | (value << uint(self.bit))
	} else {
		// current word takes the top firstSize bits
		mask := lowMask(firstSize) << uint(self.bit)
		self.words[self.word] = (self.words[self.word] & ^mask) | (value << uint(self.bit))

		// carry the rest into the next word
		restMask := lowMask(n - firstSize)
		self.words[self.word + 1] = (self.words[self.word + 1] & ^restMask) | (value >> uint(firstSize))
	}
	self.advance(n)
}
