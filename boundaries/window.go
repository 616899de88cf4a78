package boundaries

// InsertedSpan describes characters spliced into a chunk that are not part
// of the original text at that position. EndPos is the local position,
// within the window, where the inserted characters end.
type InsertedSpan struct {
	Len    int
	EndPos int
}

// Window locates a chunk in the original text. Length is measured in the
// chunk's own coordinates, i.e. after any insertion.
type Window struct {
	Offset   int
	Length   int
	Inserted InsertedSpan
}

func NewWindow(offset, length int) Window {
	return Window{Offset: offset, Length: length}
}

// WithInsertion returns a copy of w with an inserted span of n characters
// ending at local position endPos. Length is left unchanged.
func (w Window) WithInsertion(n, endPos int) Window {
	w.Inserted = InsertedSpan{Len: n, EndPos: endPos}
	return w
}

// WithOverlap returns a copy of w for a chunk whose text has n characters of
// overlap prepended: the insertion ends at 0 and Length grows by n.
func (w Window) WithOverlap(n int) Window {
	w.Inserted = InsertedSpan{Len: n, EndPos: 0}
	w.Length += n
	return w
}
