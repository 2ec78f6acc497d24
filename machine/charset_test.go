package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharSetRoundTrip(t *testing.T) {
	assert := assert.New(t)

	assigned := 0
	for code := uint32(0); code < 64; code++ {
		c, err := DecodeChar(code)
		if err != nil {
			continue
		}
		assigned++
		back, err := EncodeChar(c)
		assert.NoError(err)
		assert.Equal(code, back, "character %q", c)
	}
	assert.Equal(59, assigned)
}

func TestCharSetCodes(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		c    byte
		code uint32
	}{
		{0, 0},
		{'A', 1},
		{'Z', 26},
		{'0', 32},
		{'9', 41},
		{'.', 42},
		{'@', 43},
		{'*', 50},
		{' ', 61},
		{'\n', 62},
	}
	for _, c := range cases {
		code, err := EncodeChar(c.c)
		assert.NoError(err)
		assert.Equal(c.code, code, "character %q", c.c)
	}
}

func TestCharSetRejects(t *testing.T) {
	assert := assert.New(t)

	for _, c := range []byte{'a', 'z', '~', '#', '&', '\t', 127} {
		_, err := EncodeChar(c)
		assert.ErrorIs(err, ErrInvalidSWordValue, "character %q", c)
		assert.ErrorIs(err, ErrCharacter(c))
	}

	for _, code := range []uint32{30, 31, 53, 55, 63, 64, 100} {
		_, err := DecodeChar(code)
		assert.ErrorIs(err, ErrInvalidSWordValue, "code %d", code)
		assert.ErrorIs(err, ErrCharCode(code))
	}
}
