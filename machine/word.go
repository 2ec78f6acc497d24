package machine

import (
	"fmt"
	"math"
	"strings"
)

// WordTag distinguishes the five interpretations of a storage cell.
//
//go:generate go tool stringer -linecomment -type=WordTag
type WordTag int

const (
	TAG_UNDEFINED WordTag = iota // undefined
	TAG_I                        // I
	TAG_F                        // F
	TAG_S                        // S
	TAG_P                        // P
)

// Word sizing
const (
	WORD_SIZE = 24
	WORD_MASK = 1<<WORD_SIZE - 1
)

// F-word layout: sign bit, 7-bit excess-63 exponent, 16-bit mantissa.
const (
	FWORD_SIGN_MASK     = 0o40000000
	FWORD_EXPONENT_MASK = 0o37600000
	FWORD_MANTISSA_MASK = 0o00177777

	fwordBias          = 63
	fwordExponentShift = 16
)

// A Word is one 24-bit storage cell: raw bits plus a type tag. The tag
// records how the bits were produced; operations that only care about
// representation work on the bits whatever the tag.
type Word struct {
	Tag  WordTag
	Bits uint32
}

// iword builds an I-word from an integer, truncated to 24 bits.
func iword(value int64) Word {
	return Word{Tag: TAG_I, Bits: uint32(value) & WORD_MASK}
}

// NewIWord encodes a signed integer. Values outside the 24-bit two's
// complement range are rejected.
func NewIWord(value int64) (w Word, err error) {
	if value < -(1<<23) || value > 1<<23-1 {
		err = ErrInvalidIWordValue
		return
	}
	w = iword(value)
	return
}

// NewFWord encodes a float. The mantissa truncates to 16 bits. Values
// whose exponent does not fit the excess-63 field are rejected, as are
// NaN and the infinities; the stored exponent 0 is reserved for the
// all-zero pattern, which is how 0.0 encodes.
func NewFWord(value float64) (w Word, err error) {
	if value == 0 {
		w = Word{Tag: TAG_F}
		return
	}
	bits := math.Float64bits(value)
	exponent := int64((bits>>52)&0x7ff) - 1023 + fwordBias
	if exponent < 1 || exponent > 127 {
		err = ErrInvalidFWordValue
		return
	}
	w = Word{
		Tag: TAG_F,
		Bits: uint32(bits>>63)<<23 |
			uint32(exponent)<<fwordExponentShift |
			uint32(bits>>36)&FWORD_MANTISSA_MASK,
	}
	return
}

// NewSWord encodes up to four characters, packed from the top of the
// word down and NUL padded.
func NewSWord(text string) (w Word, err error) {
	if len(text) > 4 {
		err = ErrInvalidSWordValue
		return
	}
	var bits uint32
	for i := 0; i < len(text); i++ {
		code, cerr := EncodeChar(text[i])
		if cerr != nil {
			err = cerr
			return
		}
		bits |= code << (18 - 6*i)
	}
	w = Word{Tag: TAG_S, Bits: bits}
	return
}

// Int decodes the bits as a 24-bit two's complement integer.
func (w Word) Int() int64 {
	value := int64(w.Bits & WORD_MASK)
	if value >= 1<<23 {
		value -= 1 << 24
	}
	return value
}

// Float decodes the bits as an F-word. All-zero is 0.0.
func (w Word) Float() float64 {
	if w.Bits&WORD_MASK == 0 {
		return 0
	}
	exponent := int(w.Bits&FWORD_EXPONENT_MASK>>fwordExponentShift) - fwordBias
	value := math.Ldexp(1+float64(w.Bits&FWORD_MANTISSA_MASK)/(1<<16), exponent)
	if w.Bits&FWORD_SIGN_MASK != 0 {
		value = -value
	}
	return value
}

// Text decodes the bits as an S-word, dropping trailing NULs.
func (w Word) Text() (text string, err error) {
	buf := make([]byte, 0, 4)
	for shift := 18; shift >= 0; shift -= 6 {
		c, cerr := DecodeChar(w.Bits >> shift & 0o77)
		if cerr != nil {
			err = cerr
			return
		}
		buf = append(buf, c)
	}
	text = strings.TrimRight(string(buf), "\x00")
	return
}

// TypeCode reports the tag as the 0..3 integer exposed by TTYP.
// Undefined words have no code.
func (w Word) TypeCode() (code int64, err error) {
	if w.Tag == TAG_UNDEFINED {
		err = ErrInvalidOperand
		return
	}
	code = int64(w.Tag) - 1
	return
}

// WithTag returns the same bits under a different tag.
func (w Word) WithTag(tag WordTag) Word {
	w.Tag = tag
	return w
}

// WithTagCode maps the low two bits of a type code back to a tag.
func (w Word) WithTagCode(code int64) Word {
	w.Tag = WordTag(code&3) + 1
	return w
}

// isNumeric reports whether arithmetic applies to the word.
func (w Word) isNumeric() bool {
	return w.Tag == TAG_I || w.Tag == TAG_F
}

// number reads a numeric word as a float regardless of tag.
func (w Word) number() float64 {
	if w.Tag == TAG_I {
		return float64(w.Int())
	}
	return w.Float()
}

// numeric checks both sides of an arithmetic pair and reports whether
// the pair stays integral.
func numeric(a, b Word) (x, y float64, integral bool, err error) {
	if !a.isNumeric() || !b.isNumeric() {
		err = ErrTypeMismatch
		return
	}
	x, y = a.number(), b.number()
	integral = a.Tag == TAG_I && b.Tag == TAG_I
	return
}

// Add returns w + other. Two I-words add as integers modulo 2^24; a
// mixed pair promotes both sides to float.
func (w Word) Add(other Word) (result Word, err error) {
	x, y, integral, err := numeric(w, other)
	if err != nil {
		return
	}
	if integral {
		result = iword(w.Int() + other.Int())
		return
	}
	result, err = NewFWord(x + y)
	return
}

// Sub returns w - other under the same promotion rules as Add.
func (w Word) Sub(other Word) (result Word, err error) {
	x, y, integral, err := numeric(w, other)
	if err != nil {
		return
	}
	if integral {
		result = iword(w.Int() - other.Int())
		return
	}
	result, err = NewFWord(x - y)
	return
}

// Mul returns w * other under the same promotion rules as Add.
func (w Word) Mul(other Word) (result Word, err error) {
	x, y, integral, err := numeric(w, other)
	if err != nil {
		return
	}
	if integral {
		result = iword(w.Int() * other.Int())
		return
	}
	result, err = NewFWord(x * y)
	return
}

// Div returns w / other. An integral pair divides as integers,
// truncating toward zero. Dividing by zero of either flavour fails.
func (w Word) Div(other Word) (result Word, err error) {
	x, y, integral, err := numeric(w, other)
	if err != nil {
		return
	}
	if y == 0 {
		err = ErrDivisionByZero
		return
	}
	if integral {
		result = iword(w.Int() / other.Int())
		return
	}
	result, err = NewFWord(x / y)
	return
}

// Pow raises w to other. A zero exponent yields the integer 1
// whatever the base. An integer base with a non-negative integer
// exponent stays integral; every other pairing goes through the
// float path.
func (w Word) Pow(other Word) (result Word, err error) {
	x, y, integral, err := numeric(w, other)
	if err != nil {
		return
	}
	if y == 0 {
		result = iword(1)
		return
	}
	if integral && other.Int() >= 0 {
		value := int64(1)
		for range other.Int() {
			value *= w.Int()
		}
		result = iword(value)
		return
	}
	result, err = NewFWord(math.Pow(x, y))
	return
}

// Compare orders two numeric words, promoting mixed pairs to float.
// The result is -1, 0 or 1.
func (w Word) Compare(other Word) (order int, err error) {
	x, y, _, err := numeric(w, other)
	if err != nil {
		return
	}
	switch {
	case x < y:
		order = -1
	case x > y:
		order = 1
	}
	return
}

// Or returns the bitwise union; the receiver keeps its tag.
func (w Word) Or(other Word) Word {
	w.Bits |= other.Bits & WORD_MASK
	return w
}

// Xor returns the bitwise difference; the receiver keeps its tag.
func (w Word) Xor(other Word) Word {
	w.Bits ^= other.Bits & WORD_MASK
	return w
}

// And returns the bitwise intersection; the receiver keeps its tag.
func (w Word) And(other Word) Word {
	w.Bits &= other.Bits
	return w
}

// Not complements the bits under the same tag.
func (w Word) Not() Word {
	w.Bits = ^w.Bits & WORD_MASK
	return w
}

// Neg negates a numeric word. Negating an F-word flips its sign bit,
// except for the zero pattern which stays zero.
func (w Word) Neg() (result Word, err error) {
	switch w.Tag {
	case TAG_I:
		result = iword(-w.Int())
	case TAG_F:
		result = w
		if result.Bits != 0 {
			result.Bits ^= FWORD_SIGN_MASK
		}
	default:
		err = ErrTypeMismatch
	}
	return
}

// Shl shifts the bits left by count places; a negative count shifts
// right. The tag is kept.
func (w Word) Shl(count int64) Word {
	switch {
	case count <= -WORD_SIZE || count >= WORD_SIZE:
		w.Bits = 0
	case count < 0:
		w.Bits >>= -count
	default:
		w.Bits = w.Bits << count & WORD_MASK
	}
	return w
}

// Rot rotates the bits left by count places modulo the word size; a
// negative count rotates right.
func (w Word) Rot(count int64) Word {
	count = (count%WORD_SIZE + WORD_SIZE) % WORD_SIZE
	w.Bits = (w.Bits<<count | w.Bits>>(WORD_SIZE-count)) & WORD_MASK
	return w
}

func (w Word) String() string {
	switch w.Tag {
	case TAG_UNDEFINED:
		return w.Tag.String()
	case TAG_I:
		return fmt.Sprintf("%v %v", w.Tag, w.Int())
	case TAG_F:
		return fmt.Sprintf("%v %v", w.Tag, w.Float())
	case TAG_S:
		if text, err := w.Text(); err == nil {
			return fmt.Sprintf("%v %q", w.Tag, text)
		}
	case TAG_P:
		if inst, err := w.Instruction(); err == nil {
			return fmt.Sprintf("%v %v", w.Tag, inst)
		}
	}
	return fmt.Sprintf("%v %08o", w.Tag, w.Bits)
}
