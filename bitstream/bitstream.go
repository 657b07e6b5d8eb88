// Package bitstream packs and unpacks arbitrary width bit fields
// over flat slices of 32-bit words.
//
// Bits are stored LSB first: bit offset 0 is the least significant
// bit of the first word, offset 31 its most significant bit, offset
// 32 the least significant bit of the second word and so on. Multi
// bit fields are also written LSB first, so a field can straddle
// two words.
//
// Neither [Writer] nor [Reader] perform capacity checks beyond the
// natural slice bounds. Callers are expected to size the word slice
// and check positions with Tell() before writing.
package bitstream

const wordBits = 32

// Returns a mask with the n lowest bits set, for n in [0, 32].
func lowMask(n int) uint32 {
	return uint32((uint64(1) << uint(n)) - 1)
}

func checkFieldSize(n int) {
	if n < 0 || n > wordBits { panic("bitstream: field size must be in [0, 32]") }
}

// A cursor splits a bit offset into word index and bit within the word.
type cursor struct {
	word int
	bit int // [0, 31]
}

func (self *cursor) Tell() int {
	return (self.word << 5) + self.bit
}

func (self *cursor) Seek(offset int) {
	if offset < 0 { panic("bitstream: negative offset") }
	self.word = offset >> 5
	self.bit  = offset & 0x1F
}

func (self *cursor) advance(n int) {
	self.bit += n
	if self.bit >= wordBits {
		self.word += self.bit >> 5
		self.bit &= 0x1F
	}
}
