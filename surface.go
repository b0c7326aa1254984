package ringfield

// Surface is a 2D drawing target for particle primitives. Coordinates are
// screen pixels with the origin at the top-left.
type Surface interface {
	// FillSquare fills an axis-aligned square centered on (x, y).
	FillSquare(x, y, half float64, c RGBA)
	// FillCircle fills a circle centered on (x, y).
	FillCircle(x, y, r float64, c RGBA)
}

// flusher is implemented by surfaces that buffer primitives and submit them
// at the end of a frame.
type flusher interface {
	Flush()
}
