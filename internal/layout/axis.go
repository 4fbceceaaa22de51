package layout

// axis is one dimension of a sheet addressed by 0-based index.
type axis struct {
	last   int
	hidden func(int) bool
	size   func(int) int
}

// span is an inclusive index interval.
type span struct {
	begin, end int
}

// move returns the nearest visible index from start in direction step. At
// the boundary a visible start is returned.
func (a axis) move(start, step int) (int, bool) {
	for i := start + step; i >= 0 && i <= a.last; i += step {
		if !a.hidden(i) {
			return i, true
		}
	}
	if !a.hidden(start) {
		return start, true
	}
	return 0, false
}

// walk spends pixels moving from start in direction step. Each visible
// index landed on costs its size; the index that drives the budget below
// zero is the result.
func (a axis) walk(start, step, pixels int) (int, bool) {
	if pixels < 0 {
		panic("layout: negative pixel count")
	}
	budget := pixels
	landed := -1
	for i := start + step; i >= 0 && i <= a.last; i += step {
		if a.hidden(i) {
			continue
		}
		landed = i
		budget -= a.size(i)
		if budget < 0 {
			return i, true
		}
	}
	if landed >= 0 {
		return landed, true
	}
	if !a.hidden(start) {
		return start, true
	}
	return 0, false
}

// window returns the rendered spans for home within length pixels: the
// frozen span when includeFrozen is set, then a scrolling span starting at
// home. A scrolling index is rendered when it fits fully, but the first
// visible one always is.
func (a axis) window(home, frozen, length int, includeFrozen bool) []span {
	var spans []span
	available := length
	start := home
	if includeFrozen && frozen > 0 {
		spans = append(spans, span{0, frozen - 1})
		for i := 0; i < frozen; i++ {
			if !a.hidden(i) {
				available -= a.size(i)
			}
		}
		if start < frozen {
			start = frozen
		}
	}
	if start > a.last {
		return spans
	}

	end := start
	used := 0
	shown := false
	for i := start; i <= a.last; i++ {
		if a.hidden(i) {
			continue
		}
		size := a.size(i)
		if shown && used+size > available {
			break
		}
		used += size
		end = i
		shown = true
		if used >= available {
			break
		}
	}
	return append(spans, span{start, end})
}
