package writer

// MemWriter captures emitted bytes in memory.
type MemWriter struct {
	Buf []byte
}

// WriteScript stores a copy of buf.
func (w *MemWriter) WriteScript(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}

// WriteText stores a copy of buf.
func (w *MemWriter) WriteText(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
