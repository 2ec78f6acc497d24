package asm

import (
	"bufio"
	"errors"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"

	"bbcx/machine"
)

// Parser turns source text into source lines, one line of input per
// source line.
type Parser struct {
	Verbose bool // If set, verbosely logs each line as it is read.
}

// ParsedLine couples a source line with its parse result. Failed lines
// keep their raw text and line number so a listing can echo them.
type ParsedLine struct {
	SourceLine
	Err error
}

// Parse reads a source program line by line. Every input line yields a
// ParsedLine; the returned error joins the per-line failures. A line
// without an explicit location gets the previous code location plus
// one, starting at zero. Lines without a source word do not advance
// the count, so a label on a line of its own names the next code word.
func (p *Parser) Parse(input io.Reader) (parsed []ParsedLine, err error) {
	scanner := bufio.NewScanner(input)

	var errs []error
	var lineno int
	var location int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, lerr := parseLine(strings.TrimSpace(text))
		if lerr != nil {
			lerr = &ErrParse{LineNo: lineno, Line: text, Err: lerr}
			errs = append(errs, lerr)
			parsed = append(parsed, ParsedLine{
				SourceLine: SourceLine{LineNo: lineno, Text: text},
				Err:        lerr,
			})
			continue
		}

		line.LineNo = lineno
		line.Text = text
		if line.Location < 0 {
			line.Location = location
		}
		location = line.Location
		if line.Word.Kind != WORD_NONE {
			location += 1
		}
		parsed = append(parsed, ParsedLine{SourceLine: line})
	}

	if len(errs) > 0 {
		errs = append([]error{ErrParseFailed}, errs...)
	}
	if serr := scanner.Err(); serr != nil {
		errs = append(errs, serr)
	}
	err = errors.Join(errs...)

	return
}

// SourceLines extracts the successfully parsed lines.
func SourceLines(parsed []ParsedLine) (lines []SourceLine) {
	for _, line := range parsed {
		if line.Err == nil {
			lines = append(lines, line.SourceLine)
		}
	}
	return
}

// parseLine parses one trimmed source line. The returned location is
// -1 when the line does not carry an explicit one.
func parseLine(text string) (line SourceLine, err error) {
	line.Location = -1
	s := &cursor{text: text}

	// A leading unsigned integer always names the destination
	// location, never a source word.
	if isDigit(s.peek()) {
		digits := s.digits()
		if !s.space() && !s.eof() && s.peek() != ';' {
			err = ErrBadSourceWord
			return
		}
		line.Location, err = strconv.Atoi(digits)
		if err != nil {
			err = ErrLocationRange
			return
		}
	}

	if isLetter(s.peek()) {
		start := s.pos
		label := s.identifier()
		if s.accept(':') {
			line.Label = label
		} else {
			s.pos = start
		}
	}
	s.space()

	line.Word, err = parseWord(s)
	if err != nil {
		return
	}

	s.space()
	if s.peek() == ';' {
		line.Comment = s.text[s.pos:]
		s.pos = len(s.text)
	}
	if !s.eof() {
		err = ErrTrailingText
	}
	return
}

func parseWord(s *cursor) (word SourceWord, err error) {
	switch {
	case s.eof() || s.peek() == ';':
		word.Kind = WORD_NONE
	case s.peek() == '"':
		word.Text, err = parseSword(s)
		if err != nil {
			return
		}
		word.Kind = WORD_S
	case s.peek() == '+' || s.peek() == '-':
		var isFloat bool
		isFloat, word.Int, word.Float, err = parseNumber(s)
		if err != nil {
			return
		}
		if isFloat {
			word.Kind = WORD_F
		} else {
			word.Kind = WORD_I
		}
	case isLetter(s.peek()):
		word.Pword, err = parsePword(s)
		if err != nil {
			return
		}
		word.Kind = WORD_P
	default:
		err = ErrBadSourceWord
	}
	return
}

func parsePword(s *cursor) (pword Pword, err error) {
	pword.Mnemonic, err = parseMnemonic(s)
	if err != nil {
		return
	}
	s.space()

	if isOctal(s.peek()) {
		start := s.pos
		digit := s.next()
		if s.accept(',') {
			pword.Accumulator = Acc(digit)
		} else {
			s.pos = start
		}
	}
	s.space()

	pword.Operand, err = parseOperand(s)
	return
}

func parseMnemonic(s *cursor) (fn machine.Function, err error) {
	rest := s.text[s.pos:]
	for _, entry := range mnemonics {
		if strings.HasPrefix(rest, entry.name) {
			s.pos += len(entry.name)
			fn = entry.function
			return
		}
	}
	err = ErrBadMnemonic
	return
}

func parseOperand(s *cursor) (operand Operand, err error) {
	switch {
	case s.eof() || s.peek() == ';':
		operand.Kind = OPERAND_NONE
	case s.peek() == '*' || isLetter(s.peek()) || isDigit(s.peek()):
		operand.Indirect = s.accept('*')
		switch {
		case isLetter(s.peek()):
			operand.Kind = OPERAND_SYMBOL
			operand.Symbol = s.identifier()
		case isDigit(s.peek()):
			operand.Kind = OPERAND_ADDRESS
			operand.Address, err = strconv.Atoi(s.digits())
			if err != nil {
				err = ErrBadOperand
				return
			}
		default:
			err = ErrBadOperand
			return
		}
		operand.Index, err = parseIndex(s)
	case s.peek() == '+' || s.peek() == '-':
		var isFloat bool
		isFloat, operand.Int, operand.Float, err = parseNumber(s)
		if err != nil {
			return
		}
		if isFloat {
			operand.Kind = OPERAND_CONST_F
		} else {
			operand.Kind = OPERAND_CONST_I
		}
	case s.peek() == '"':
		operand.Text, err = parseSword(s)
		if err != nil {
			return
		}
		operand.Kind = OPERAND_CONST_S
	default:
		err = ErrBadOperand
	}
	return
}

// parseIndex scans an optional [n] index register suffix, n in 0..7.
func parseIndex(s *cursor) (index int, err error) {
	if !s.accept('[') {
		return
	}
	digits := s.digits()
	if digits == "" || len(digits) > 2 || !s.accept(']') {
		err = ErrBadIndex
		return
	}
	index, _ = strconv.Atoi(digits)
	if index > 7 {
		err = ErrBadIndex
	}
	return
}

// parseNumber scans a signed integer or float. A float carries a
// decimal fraction, an @-exponent of one or two digits, or both.
func parseNumber(s *cursor) (isFloat bool, ivalue int64, fvalue float64, err error) {
	var text strings.Builder
	text.WriteByte(s.next())

	integer := s.digits()
	text.WriteString(integer)

	if s.accept('.') {
		fraction := s.digits()
		if fraction == "" {
			err = ErrBadNumber
			return
		}
		isFloat = true
		text.WriteString(".")
		text.WriteString(fraction)
	} else if integer == "" {
		err = ErrBadNumber
		return
	}

	if s.accept('@') {
		isFloat = true
		text.WriteString("e")
		if s.peek() == '+' || s.peek() == '-' {
			text.WriteByte(s.next())
		}
		exponent := s.digits()
		if exponent == "" || len(exponent) > 2 {
			err = ErrBadNumber
			return
		}
		text.WriteString(exponent)
	}

	if isFloat {
		fvalue, err = strconv.ParseFloat(text.String(), 64)
	} else {
		ivalue, err = strconv.ParseInt(text.String(), 10, 64)
	}
	if err != nil {
		err = ErrBadNumber
	}
	return
}

// parseSword scans a quoted run of one to four characters, each of
// which must exist in the machine character set.
func parseSword(s *cursor) (text string, err error) {
	s.pos += 1 // opening quote
	start := s.pos
	for !s.eof() && s.peek() != '"' {
		s.pos += 1
	}
	if s.eof() {
		err = ErrBadString
		return
	}
	text = s.text[start:s.pos]
	s.pos += 1 // closing quote

	if len(text) < 1 || len(text) > 4 {
		err = ErrBadString
		return
	}
	for i := 0; i < len(text); i++ {
		if _, cerr := machine.EncodeChar(text[i]); cerr != nil {
			err = cerr
			return
		}
	}
	return
}

type mnemonicEntry struct {
	name     string
	function machine.Function
}

// mnemonics holds every source mnemonic, longest name first so that
// prefix matching cannot stop at a short name that opens a longer one
// (OR must not shadow ORX).
var mnemonics []mnemonicEntry

// Alternative spellings accepted by the source language.
var synonyms = map[string]machine.Function{
	"MPLY":  machine.FN_MULT,
	"MPLYX": machine.FN_MULTX,
	"NTHG":  machine.FN_NIL,
	"SWAP":  machine.FN_NILX,
}

func init() {
	for fn := machine.FN_NIL; fn <= machine.FN_ABS; fn++ {
		if fn == machine.FN_UNUSED {
			continue
		}
		mnemonics = append(mnemonics, mnemonicEntry{fn.String(), fn})
	}
	for name, fn := range synonyms {
		mnemonics = append(mnemonics, mnemonicEntry{name, fn})
	}
	slices.SortFunc(mnemonics, func(a, b mnemonicEntry) int {
		if n := len(b.name) - len(a.name); n != 0 {
			return n
		}
		return strings.Compare(a.name, b.name)
	})
}

// cursor is a byte position within one trimmed source line. The
// source alphabet is ASCII, so byte positions are character positions.
type cursor struct {
	text string
	pos  int
}

func (s *cursor) eof() bool {
	return s.pos >= len(s.text)
}

func (s *cursor) peek() byte {
	if s.eof() {
		return 0
	}
	return s.text[s.pos]
}

func (s *cursor) next() byte {
	c := s.text[s.pos]
	s.pos += 1
	return c
}

func (s *cursor) accept(c byte) bool {
	if s.peek() != c {
		return false
	}
	s.pos += 1
	return true
}

// space consumes a run of blanks and reports whether any were present.
func (s *cursor) space() bool {
	start := s.pos
	for s.peek() == ' ' || s.peek() == '\t' {
		s.pos += 1
	}
	return s.pos > start
}

// digits consumes a run of decimal digits.
func (s *cursor) digits() string {
	start := s.pos
	for isDigit(s.peek()) {
		s.pos += 1
	}
	return s.text[start:s.pos]
}

// identifier consumes a letter followed by letters and digits.
func (s *cursor) identifier() string {
	start := s.pos
	for isLetter(s.peek()) || (s.pos > start && isDigit(s.peek())) {
		s.pos += 1
	}
	return s.text[start:s.pos]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
