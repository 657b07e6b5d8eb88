package internal

type Font struct {
	Data []byte // complete microfont resource, header first

	// payload words decoded from Data (Data[HeaderSize + IndexSize : ]),
	// kept separately so bit readers can work on them directly
	Payload []uint32
}
