package bitstream

type Reader struct {
	words []uint32
	cursor
}

func NewReader(words []uint32) *Reader {
	return &Reader{ words: words }
}

func (self *Reader) Tell() int { return self.cursor.Tell() }
func (self *Reader) Seek(offset int) { self.cursor.Seek(offset) }

// Number of bits between the cursor and the end of the words.
func (self *Reader) Remaining() int {
	return len(self.words)*wordBits - self.Tell()
}

func (self *Reader) ReadBit() bool {
	bit := (self.words[self.word] >> uint(self.bit)) & 1
	self.advance(1)
	return bit != 0
}

// Reads an n bit field written by [Writer.WriteBits].
func (self *Reader) ReadBits(n int) uint32 {
	checkFieldSize(n)
	if n == 0 { return 0 }

	value := self.words[self.word] >> uint(self.bit)
	firstSize := wordBits - self.bit
	if n > firstSize {
		value |= self.words[self.word + 1] << uint(firstSize)
	}
	self.advance(n)
	return value & lowMask(n)
}
