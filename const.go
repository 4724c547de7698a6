package dpx

const (
	magicBig    = "SDPX"
	magicLittle = "XPDS"
	magicSize   = 4
)

// Supported image element profile.
const (
	ProfileDepth      = 10
	ProfilePacking    = 1 // filled to 32-bit words, padding first
	ProfileEncoding   = 0 // no encoding
	ProfileDescriptor = 50
)

const (
	channels    = 3
	sampleMax   = 1023.0
	sampleMask  = 0x3FF
	shiftRed    = 22
	shiftGreen  = 12
	shiftBlue   = 2
	wordSize    = 4
	headerSize  = 2048
	unencrypted = 0xFFFFFFFF
)

const (
	defaultDerezWidth  = 960
	defaultDerezHeight = 480
)
