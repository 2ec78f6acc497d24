package machine

import "errors"

// The 6-bit teletype character set. The mapping is injective and
// partial: codes 30, 31, 53, 55 and 63 are unassigned.
var charToCode = map[byte]uint32{
	0:    0,
	'\'': 27,
	'<':  28,
	'>':  29,
	'.':  42,
	'@':  43,
	'+':  44,
	'-':  45,
	'(':  46,
	')':  47,
	'[':  48,
	']':  49,
	'*':  50,
	'/':  51,
	'=':  52,
	'^':  54,
	'?':  56,
	'"':  57,
	':':  58,
	';':  59,
	',':  60,
	' ':  61,
	'\n': 62,
}

var codeToChar = map[uint32]byte{}

func init() {
	for i := byte(0); i < 26; i++ {
		charToCode['A'+i] = uint32(1 + i)
	}
	for i := byte(0); i < 10; i++ {
		charToCode['0'+i] = uint32(32 + i)
	}
	for c, code := range charToCode {
		codeToChar[code] = c
	}
}

// EncodeChar returns the 6-bit code for a byte.
func EncodeChar(c byte) (code uint32, err error) {
	code, ok := charToCode[c]
	if !ok {
		err = errors.Join(ErrInvalidSWordValue, ErrCharacter(c))
	}
	return
}

// DecodeChar returns the byte for a 6-bit code.
func DecodeChar(code uint32) (c byte, err error) {
	c, ok := codeToChar[code]
	if !ok {
		err = errors.Join(ErrInvalidSWordValue, ErrCharCode(code))
	}
	return
}
