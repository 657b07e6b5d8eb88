package internal

func GrowSliceByN[T any](buffer []T, increase int) []T {
	newSize := len(buffer) + increase
	if cap(buffer) >= newSize {
		return buffer[ : newSize]
	} else {
		newBuffer := make([]T, newSize)
		copy(newBuffer, buffer)
		return newBuffer
	}
}

// Number of bits required to represent the given value. Zero
// requires zero bits.
func BitLen(value uint32) uint8 {
	var bits uint8
	for value != 0 {
		value >>= 1
		bits += 1
	}
	return bits
}

func CeilWords(bits int) int {
	return (bits + 31) >> 5
}

func CodeToIndex(code byte) (int, bool) {
	if code < FirstCode { return 0, false }
	return int(code - FirstCode), true
}

func IndexToCode(index int) byte {
	if index < 0 || index >= NumCodes { panic("index out of range") }
	return byte(index + FirstCode)
}

// LE stands for "little endian"

func DecodeUint16LE(buffer []byte) uint16 {
	if len(buffer) < 2 { panic(len(buffer)) }
	return uint16(buffer[0]) | (uint16(buffer[1]) << 8)
}

func DecodeUint32LE(buffer []byte) uint32 {
	if len(buffer) < 4 { panic(len(buffer)) }
	return (uint32(buffer[0]) <<  0) | (uint32(buffer[1]) <<  8) |
	       (uint32(buffer[2]) << 16) | (uint32(buffer[3]) << 24)
}

func AppendUint16LE(buffer []byte, value uint16) []byte {
	return append(buffer, byte(value), byte(value >> 8))
}

func AppendUint32LE(buffer []byte, value uint32) []byte {
	return append(buffer, byte(value), byte(value >> 8), byte(value >> 16), byte(value >> 24))
}

const hexDigits = "0123456789ABCDEF"

// Appends "0xNN" for the given byte.
func AppendHexByte(str []byte, value byte) []byte {
	return append(str, '0', 'x', hexDigits[value >> 4], hexDigits[value & 0x0F])
}
