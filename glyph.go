package unigreet

// blockGlyphs is indexed by TL<<3 | TR<<2 | BL<<1 | BR
var blockGlyphs = [16]rune{
	' ', // 0000
	'▗', // 0001
	'▖', // 0010
	'▄', // 0011
	'▝', // 0100
	'▐', // 0101
	'▞', // 0110
	'▟', // 0111
	'▘', // 1000
	'▚', // 1001
	'▌', // 1010
	'▙', // 1011
	'▀', // 1100
	'▜', // 1101
	'▛', // 1110
	'█', // 1111
}

// BlockGlyph returns the quadrant glyph for a 2x2 window of lit flags
func BlockGlyph(tl, tr, bl, br bool) rune {
	return blockGlyphs[b2i(tl)<<3|b2i(tr)<<2|b2i(bl)<<1|b2i(br)]
}

// BrailleBase is the first codepoint of the Unicode braille-pattern block
const BrailleBase = 0x2800

// brailleBits maps a window index (col*4 + row) to its dot bit.
//
//	col 0: dots 1 2 3 7 -> bits 0 1 2 6
//	col 1: dots 4 5 6 8 -> bits 3 4 5 7
var brailleBits = [8]uint{0, 1, 2, 6, 3, 4, 5, 7}

// BrailleByte packs a column-major 2x4 window into the braille dot byte,
// dot n occupying bit n-1.
func BrailleByte(w [8]bool) byte {
	var b byte
	for i, lit := range w {
		if lit {
			b |= 1 << brailleBits[i]
		}
	}
	return b
}

// BrailleGlyph returns the braille pattern for a column-major 2x4 window
func BrailleGlyph(w [8]bool) rune {
	return BrailleBase + rune(BrailleByte(w))
}

// BrailleDots unpacks a braille pattern into its column-major window.
// ok is false when r is outside the braille-pattern block.
func BrailleDots(r rune) (w [8]bool, ok bool) {
	if r < BrailleBase || r > BrailleBase+0xff {
		return w, false
	}
	b := byte(r - BrailleBase)
	for i, bit := range brailleBits {
		w[i] = b&(1<<bit) != 0
	}
	return w, true
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
