package engine

// Scratch sizing for the chunked fill loop.
const (
	// defaultScratchFrames is used when the caller gives no frame hint.
	defaultScratchFrames = 256

	// minScratchFrames keeps the chunk loop well-formed for degenerate
	// hints.
	minScratchFrames = 16
)

// Channel counts with dedicated fast paths in Synthesize.
const (
	monoChannels   = 1
	stereoChannels = 2
)
