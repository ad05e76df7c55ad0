package editor

// ScrollToCursor adjusts the viewport offsets so the cursor falls inside a
// width x height window. It runs after every cursor-moving or content
// operation, before render, and is idempotent: calling it again with an
// unchanged cursor changes nothing.
//
// The formulas can drive an offset negative when the window is larger than
// the content, so both offsets are clamped to >= 0 afterwards.
func (b *Buffer) ScrollToCursor(width, height int) {
	if height > 0 {
		if b.CursorY < b.OffsetY {
			b.OffsetY = b.CursorY
		} else if b.CursorY >= b.OffsetY+height {
			b.OffsetY = b.CursorY - height + 1
		}
	}
	if width > 0 {
		if b.CursorX < b.OffsetX {
			b.OffsetX = b.CursorX
		} else if b.CursorX >= b.OffsetX+width {
			b.OffsetX = b.CursorX - width + 1
		}
	}
	if b.OffsetY < 0 {
		b.OffsetY = 0
	}
	if b.OffsetX < 0 {
		b.OffsetX = 0
	}
}
