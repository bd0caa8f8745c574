// Package raster turns flat shapes into horizontal pixel spans.
package raster

// Span is the run of pixels [X0, X1] on row Y.
type Span struct {
	Y      int
	X0, X1 int
}

// CircleSpans fills a circle with the midpoint algorithm, emitting one
// horizontal span per mirrored octant step. Rows may repeat.
func CircleSpans(cx, cy, radius int) []Span {
	if radius <= 0 {
		return nil
	}
	diameter := radius * 2

	x := radius - 1
	y := 0
	tx := 1
	ty := 1
	e := tx - diameter

	spans := make([]Span, 0, diameter*2)
	for x >= y {
		spans = append(spans,
			Span{Y: cy + y, X0: cx - x, X1: cx + x},
			Span{Y: cy - y, X0: cx - x, X1: cx + x},
		)

		if e <= 0 {
			y++
			e += ty
			ty += 2
		}

		if e > 0 {
			spans = append(spans,
				Span{Y: cy + x, X0: cx - y, X1: cx + y},
				Span{Y: cy - x, X0: cx - y, X1: cx + y},
			)
			x--
			tx += 2
			e += tx - diameter
		}
	}
	return spans
}
