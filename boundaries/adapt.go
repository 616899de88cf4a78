package boundaries

// Adapt re-expresses h in the local coordinates of window w. Boundaries
// before the window are dropped, boundaries at or after the inserted span's
// end are shifted by its length, and each level stops at the first boundary
// past w.Length. Every returned level starts with 0.
//
// Inputs are trusted: a negative length or unsorted levels give a best-effort
// result rather than an error.
func Adapt(h Hierarchy, w Window) Hierarchy {
	levels := make([]Set, len(h.levels))
	for i, level := range h.levels {
		levels[i] = Set{offsets: adaptLevel(level.offsets, w)}
	}
	return Hierarchy{levels: levels}
}

func adaptLevel(offsets []int, w Window) []int {
	// Slot 0 is reserved for the anchor and trimmed below if the first kept
	// boundary already is 0.
	out := make([]int, 1, len(offsets)+1)
	for _, b := range offsets {
		local := b - w.Offset
		if local >= w.Inserted.EndPos {
			local += w.Inserted.Len
		}
		if local > w.Length {
			break
		}
		if local >= 0 {
			out = append(out, local)
		}
	}
	if len(out) > 1 && out[1] == 0 {
		return out[1:]
	}
	return out
}
