package machine

// Pair operations treat (high, low) as one 48-bit double word, the high
// half holding the most significant bits. Shifts and rotates keep each
// half's tag; multiply and divide work on I-words only.

const doubleSize = 2 * WORD_SIZE

// Dshl shifts the pair left by count places; a negative count shifts
// right.
func Dshl(high, low Word, count int64) (Word, Word) {
	combined := uint64(high.Bits)<<WORD_SIZE | uint64(low.Bits)
	switch {
	case count <= -doubleSize || count >= doubleSize:
		combined = 0
	case count < 0:
		combined >>= -count
	default:
		combined = combined << count & (1<<doubleSize - 1)
	}
	high.Bits = uint32(combined >> WORD_SIZE)
	low.Bits = uint32(combined) & WORD_MASK
	return high, low
}

// Drot rotates the pair left by count places modulo the double size; a
// negative count rotates right.
func Drot(high, low Word, count int64) (Word, Word) {
	count = (count%doubleSize + doubleSize) % doubleSize
	combined := uint64(high.Bits)<<WORD_SIZE | uint64(low.Bits)
	combined = (combined<<count | combined>>(doubleSize-count)) & (1<<doubleSize - 1)
	high.Bits = uint32(combined >> WORD_SIZE)
	low.Bits = uint32(combined) & WORD_MASK
	return high, low
}

// Dmult multiplies low by operand into a 48-bit product split across
// the returned pair. Each half reads back as an independently
// sign-extended I-word.
func Dmult(low, operand Word) (hi, lo Word, err error) {
	if low.Tag != TAG_I || operand.Tag != TAG_I {
		err = ErrTypeMismatch
		return
	}
	product := low.Int() * operand.Int()
	hi = iword(product >> WORD_SIZE)
	lo = iword(product)
	return
}

// Ddiv divides the 48-bit pair by operand: the quotient lands in the
// low half, the remainder in the high half.
func Ddiv(high, low, operand Word) (rem, quot Word, err error) {
	if high.Tag != TAG_I || low.Tag != TAG_I || operand.Tag != TAG_I {
		err = ErrTypeMismatch
		return
	}
	divisor := operand.Int()
	if divisor == 0 {
		err = ErrDivisionByZero
		return
	}
	dividend := high.Int()<<WORD_SIZE | int64(low.Bits)
	rem = iword(dividend % divisor)
	quot = iword(dividend / divisor)
	return
}

// Squash truncates the pair to its low 24 bits; the low half already
// carries them, tag included.
func Squash(_, low Word) Word {
	return low
}
