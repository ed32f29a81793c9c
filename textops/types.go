package textops

// Range is a half-open byte range into a string: [Start, End).
// Start <= End in normalized form.
type Range struct {
	Start int
	End   int
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

func (r Range) Len() int { return r.End - r.Start }

// Normalize swaps the endpoints if they are out of order.
func (r Range) Normalize() Range {
	if r.End < r.Start {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Clamp constrains both endpoints into [0, max].
func (r Range) Clamp(max int) Range {
	return Range{Start: clampInt(r.Start, 0, max), End: clampInt(r.End, 0, max)}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
