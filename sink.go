package microfont

// Destination of a compiled font resource. The font is always
// handed over in a single WriteBytes() call, so implementations
// can wrap the whole content (compression, source code literals).
//
// See the sink package for common implementations.
type Sink interface {
	WriteBytes(data []byte) error
}

// Adapter to use ordinary functions as [Sink].
type SinkFunc func(data []byte) error

func (self SinkFunc) WriteBytes(data []byte) error { return self(data) }
