package logger

// Padding returns the current indentation width in spaces.
func Padding() uint8 {
	return uint8(pad.Load())
}

// PaddingScope restores the padding value captured when it was created.
type PaddingScope struct {
	restore uint32
	closed  bool
}

// ExtendPadding widens the indentation by n spaces, saturating at 255,
// until the returned scope is closed:
//
//	defer ExtendPadding(2).Close()
//
// Scopes must close in LIFO order. Close stores the captured snapshot back
// rather than subtracting, so an unbalanced inner scope cannot leak
// indentation past its parent. Scopes racing on different goroutines can
// restore a stale snapshot; keep nesting on one goroutine or serialize
// externally.
func ExtendPadding(n uint8) *PaddingScope {
	for {
		cur := pad.Load()
		next := cur + uint32(n)
		if next > 255 {
			next = 255
		}
		if pad.CompareAndSwap(cur, next) {
			return &PaddingScope{restore: cur}
		}
	}
}

// Close restores the pre-scope padding. Extra calls are no-ops.
func (s *PaddingScope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	pad.Store(s.restore)
}
