package builder

import "slices"

import "github.com/tinne26/microfont"
import "github.com/tinne26/microfont/internal"

const invalidInternalState = "invalid internal state"

// Serializes the header, the index and the payload into the final
// resource. The resource size is always HeaderSize + IndexSize plus
// four bytes per payload word.
func Assemble(layout Layout, encoding *Encoding) *microfont.Font {
	size := ResourceSize(encoding.Bits)
	if len(encoding.Payload) != internal.CeilWords(encoding.Bits) { panic(invalidInternalState) }

	var data []byte = make([]byte, 0, size)

	// --- header ---
	data = internal.AppendUint16LE(data, microfont.Magic)
	data = append(data, layout.Height, layout.WidthBits)

	// --- index ---
	for _, offset := range encoding.Index {
		data = internal.AppendUint16LE(data, offset)
	}

	// --- payload ---
	for _, word := range encoding.Payload {
		data = internal.AppendUint32LE(data, word)
	}
	if len(data) != size { panic(invalidInternalState) }

	font := microfont.Font(internal.Font{ Data: data, Payload: slices.Clone(encoding.Payload) })
	return &font
}

// Size in bytes of a resource with the given number of payload bits.
func ResourceSize(payloadBits int) int {
	return microfont.HeaderSize + microfont.IndexSize + internal.CeilWords(payloadBits)*4
}
