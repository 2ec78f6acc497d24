package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bbcx/machine"
)

func parse(input string) ([]ParsedLine, error) {
	parser := &Parser{}
	return parser.Parse(strings.NewReader(input))
}

func TestParserEmpty(t *testing.T) {
	assert := assert.New(t)

	parsed, err := parse("")
	assert.NoError(err)
	assert.Empty(parsed)
}

func TestParserLocationsLabelsAndComments(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		`0001            "    "`,
		`0002            "  C1"      ; Comment 1`,
		`0003    LABEL1: "    "`,
		`0004    LABEL2: "  C2"      ; Comment 2`,
	}

	parsed, err := parse(strings.Join(program, "\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []SourceLine{
		{1, program[0], 1, "", SourceWord{Kind: WORD_S, Text: "    "}, ""},
		{2, program[1], 2, "", SourceWord{Kind: WORD_S, Text: "  C1"}, "; Comment 1"},
		{3, program[2], 3, "LABEL1", SourceWord{Kind: WORD_S, Text: "    "}, ""},
		{4, program[3], 4, "LABEL2", SourceWord{Kind: WORD_S, Text: "  C2"}, "; Comment 2"},
	}

	assert.Equal(len(expected), len(parsed))
	for n := range expected {
		assert.NoError(parsed[n].Err)
		assert.Equal(expected[n], parsed[n].SourceLine)
	}
}

func TestParserDefaultLocations(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"NIL",        // 0
		"NIL",        // 1
		"; a remark", // no code
		"LOOP:",      // names the next code word
		"NIL",        // 2
		"0010 NIL",   // explicit
		"NIL",        // 11
	}

	parsed, err := parse(strings.Join(program, "\n"))
	assert.NoError(err)

	locations := make([]int, 0, len(parsed))
	for _, line := range parsed {
		locations = append(locations, line.Location)
	}
	assert.Equal([]int{0, 1, 2, 2, 2, 10, 11}, locations)

	assert.Equal(WORD_NONE, parsed[2].Word.Kind)
	assert.Equal("; a remark", parsed[2].Comment)
	assert.Equal("LOOP", parsed[3].Label)
	assert.Equal(WORD_NONE, parsed[3].Word.Kind)
	assert.Equal(WORD_P, parsed[4].Word.Kind)
}

func TestParserMnemonics(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		source   string
		function machine.Function
	}{
		{"NIL ADDR1", machine.FN_NIL},
		{"NTHG ADDR1", machine.FN_NIL},
		{"OR ADDR1", machine.FN_OR},
		{"NEQV ADDR1", machine.FN_NEQV},
		{"AND ADDR1", machine.FN_AND},
		{"ADD ADDR1", machine.FN_ADD},
		{"SUBT ADDR1", machine.FN_SUBT},
		{"MULT ADDR1", machine.FN_MULT},
		{"MPLY ADDR1", machine.FN_MULT},
		{"DVD ADDR1", machine.FN_DVD},
		{"TAKE ADDR1", machine.FN_TAKE},
		{"TSTR ADDR1", machine.FN_TSTR},
		{"TNEG ADDR1", machine.FN_TNEG},
		{"TNOT ADDR1", machine.FN_TNOT},
		{"TTYP ADDR1", machine.FN_TTYP},
		{"TTYZ ADDR1", machine.FN_TTYZ},
		{"TTTT ADDR1", machine.FN_TTTT},
		{"TOUT ADDR1", machine.FN_TOUT},
		{"SKIP ADDR1", machine.FN_SKIP},
		{"SKAE ADDR1", machine.FN_SKAE},
		{"SKAN ADDR1", machine.FN_SKAN},
		{"SKET ADDR1", machine.FN_SKET},
		{"SKAL ADDR1", machine.FN_SKAL},
		{"SKAG ADDR1", machine.FN_SKAG},
		{"SKED ADDR1", machine.FN_SKED},
		{"SKEI ADDR1", machine.FN_SKEI},
		{"SHL ADDR1", machine.FN_SHL},
		{"ROT ADDR1", machine.FN_ROT},
		{"DSHL ADDR1", machine.FN_DSHL},
		{"DROT ADDR1", machine.FN_DROT},
		{"POWR ADDR1", machine.FN_POWR},
		{"DMULT ADDR1", machine.FN_DMULT},
		{"DIV ADDR1", machine.FN_DIV},
		{"DDIV ADDR1", machine.FN_DDIV},
		{"NILX ADDR1", machine.FN_NILX},
		{"SWAP ADDR1", machine.FN_NILX},
		{"ORX ADDR1", machine.FN_ORX},
		{"NEQVX ADDR1", machine.FN_NEQVX},
		{"ANDX ADDR1", machine.FN_ANDX},
		{"ADDX ADDR1", machine.FN_ADDX},
		{"SUBTX ADDR1", machine.FN_SUBTX},
		{"MULTX ADDR1", machine.FN_MULTX},
		{"MPLYX ADDR1", machine.FN_MULTX},
		{"DVDX ADDR1", machine.FN_DVDX},
		{"PUT ADDR1", machine.FN_PUT},
		{"PSQU ADDR1", machine.FN_PSQU},
		{"PNEG ADDR1", machine.FN_PNEG},
		{"PNOT ADDR1", machine.FN_PNOT},
		{"PTYP ADDR1", machine.FN_PTYP},
		{"PTYZ ADDR1", machine.FN_PTYZ},
		{"PFFP ADDR1", machine.FN_PFFP},
		{"PIN ADDR1", machine.FN_PIN},
		{"JUMP ADDR1", machine.FN_JUMP},
		{"JEZ ADDR1", machine.FN_JEZ},
		{"JNZ ADDR1", machine.FN_JNZ},
		{"JAT ADDR1", machine.FN_JAT},
		{"JLZ ADDR1", machine.FN_JLZ},
		{"JGZ ADDR1", machine.FN_JGZ},
		{"JZD ADDR1", machine.FN_JZD},
		{"JZI ADDR1", machine.FN_JZI},
		{"DECR ADDR1", machine.FN_DECR},
		{"INCR ADDR1", machine.FN_INCR},
		{"MOCKP ADDR1", machine.FN_MOCKP},
		{"MOCKS ADDR1", machine.FN_MOCKS},
		{"DBYTE ADDR1", machine.FN_DBYTE},
		{"EXEC ADDR1", machine.FN_EXEC},
		{"EXTRA ADDR1", machine.FN_EXTRA},
		{"SQRT", machine.FN_SQRT},
		{"LN", machine.FN_LN},
		{"EXP", machine.FN_EXP},
		{"READ", machine.FN_READ},
		{"PRINT", machine.FN_PRINT},
		{"SIN", machine.FN_SIN},
		{"COS", machine.FN_COS},
		{"TAN", machine.FN_TAN},
		{"ATN", machine.FN_ATN},
		{"STOP", machine.FN_STOP},
		{"LINE", machine.FN_LINE},
		{"INT", machine.FN_INT},
		{"FRAC", machine.FN_FRAC},
		{"FLOAT", machine.FN_FLOAT},
		{"CAPTN", machine.FN_CAPTN},
		{"PAGE", machine.FN_PAGE},
		{"RND", machine.FN_RND},
		{"ABS", machine.FN_ABS},
	}

	for _, tc := range table {
		parsed, err := parse(tc.source)
		assert.NoError(err, tc.source)
		if !assert.Equal(1, len(parsed), tc.source) {
			continue
		}
		word := parsed[0].Word
		assert.Equal(WORD_P, word.Kind, tc.source)
		assert.Equal(tc.function, word.Pword.Mnemonic, tc.source)
	}
}

func TestParserAccumulators(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		source string
		acc    Acc
		value  int
	}{
		{"TAKE 3, 10", '3', 3},
		{"TAKE 10", 0, 1},
		{"JUMP2, 4", '2', 2},
		{"TAKE 0, 5", '0', 0},
		{"TAKE 7, 5", '7', 7},
	}

	for _, tc := range table {
		parsed, err := parse(tc.source)
		assert.NoError(err, tc.source)
		pword := parsed[0].Word.Pword
		assert.Equal(tc.acc, pword.Accumulator, tc.source)
		assert.Equal(tc.value, pword.Accumulator.Value(), tc.source)
	}
}

func TestParserAddressing(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"ADD     ADDR1",
		"ADD2,   ADDR2[4]",
		"ADD     *ADDR3",
		"ADD2,   *ADDR4[7]",
		"ADD     512",
		"ADD     *100",
		"ADD     -42",
		"ADD2,   +3.14",
		"ADD     +1.5@2",
		"ADD     -1@-5",
		"ADD     +.5",
		`ADD2,   "TEXT"`,
		"SQRT",
	}

	parsed, err := parse(strings.Join(program, "\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Pword{
		{machine.FN_ADD, 0, Operand{Kind: OPERAND_SYMBOL, Symbol: "ADDR1"}},
		{machine.FN_ADD, '2', Operand{Kind: OPERAND_SYMBOL, Symbol: "ADDR2", Index: 4}},
		{machine.FN_ADD, 0, Operand{Kind: OPERAND_SYMBOL, Symbol: "ADDR3", Indirect: true}},
		{machine.FN_ADD, '2', Operand{Kind: OPERAND_SYMBOL, Symbol: "ADDR4", Indirect: true, Index: 7}},
		{machine.FN_ADD, 0, Operand{Kind: OPERAND_ADDRESS, Address: 512}},
		{machine.FN_ADD, 0, Operand{Kind: OPERAND_ADDRESS, Address: 100, Indirect: true}},
		{machine.FN_ADD, 0, Operand{Kind: OPERAND_CONST_I, Int: -42}},
		{machine.FN_ADD, '2', Operand{Kind: OPERAND_CONST_F, Float: 3.14}},
		{machine.FN_ADD, 0, Operand{Kind: OPERAND_CONST_F, Float: 150}},
		{machine.FN_ADD, 0, Operand{Kind: OPERAND_CONST_F, Float: -1e-5}},
		{machine.FN_ADD, 0, Operand{Kind: OPERAND_CONST_F, Float: 0.5}},
		{machine.FN_ADD, '2', Operand{Kind: OPERAND_CONST_S, Text: "TEXT"}},
		{machine.FN_SQRT, 0, Operand{}},
	}

	assert.Equal(len(expected), len(parsed))
	for n := range expected {
		assert.Equal(expected[n], parsed[n].Word.Pword, program[n])
	}
}

func TestParserErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		source string
		target error
	}{
		{"123ABC", ErrBadSourceWord},
		{"0001 42", ErrBadSourceWord},
		{"=42", ErrBadSourceWord},
		{"FOO 3", ErrBadMnemonic},
		{"ADD 1, !", ErrBadOperand},
		{"ADD *", ErrBadOperand},
		{"ADD X[8]", ErrBadIndex},
		{"ADD X[100]", ErrBadIndex},
		{"ADD X[1", ErrBadIndex},
		{"+5.", ErrBadNumber},
		{"+", ErrBadNumber},
		{"+1@", ErrBadNumber},
		{"+1@123", ErrBadNumber},
		{`"TOOLONG"`, ErrBadString},
		{`""`, ErrBadString},
		{`"AB`, ErrBadString},
		{`"abcd"`, machine.ErrInvalidSWordValue},
		{"+12 +13", ErrTrailingText},
		{"ADD 1, 5 6", ErrTrailingText},
		{"99999999999999999999 NIL", ErrLocationRange},
	}

	for _, tc := range table {
		parsed, err := parse(tc.source)
		assert.ErrorIs(err, ErrParseFailed, tc.source)
		assert.ErrorIs(err, tc.target, tc.source)

		if !assert.Equal(1, len(parsed), tc.source) {
			continue
		}
		assert.Error(parsed[0].Err, tc.source)

		var perr *ErrParse
		if assert.ErrorAs(parsed[0].Err, &perr, tc.source) {
			assert.Equal(1, perr.LineNo, tc.source)
			assert.Equal(tc.source, perr.Line, tc.source)
		}
	}
}

func TestParserPartialResults(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"0001 NIL",
		"0002 %%%",
		"0003 NIL",
	}

	parsed, err := parse(strings.Join(program, "\n"))
	assert.ErrorIs(err, ErrParseFailed)
	assert.ErrorIs(err, ErrBadSourceWord)

	assert.Equal(3, len(parsed))
	assert.NoError(parsed[0].Err)
	assert.Error(parsed[1].Err)
	assert.NoError(parsed[2].Err)

	lines := SourceLines(parsed)
	assert.Equal(2, len(lines))
	assert.Equal(1, lines[0].Location)
	assert.Equal(3, lines[1].Location)
}

func FuzzParser(f *testing.F) {
	seeds := []string{
		"",
		"0001 +12",
		"0100 LOOP: ADD 2, *ADDR[3] ; loop body",
		`0002 "AB12"`,
		"JUMP2, 4",
		"-1.5@-05",
		"SQRT 3",
		"; comment only",
		"A:\nNIL\n0007 PUT 2, A",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		assert := assert.New(t)

		first, err1 := parse(text)
		second, err2 := parse(text)
		assert.Equal(first, second)
		assert.Equal(err1 == nil, err2 == nil)

		for _, line := range first {
			if line.Err != nil {
				assert.Error(err1)
				continue
			}
			assert.GreaterOrEqual(line.Location, 0)
			switch line.Word.Kind {
			case WORD_P:
				fn := line.Word.Pword.Mnemonic
				assert.True(fn >= machine.FN_NIL && fn <= machine.FN_ABS, text)
				assert.NotEqual(machine.FN_UNUSED, fn, text)
				operand := line.Word.Pword.Operand
				assert.True(operand.Index >= 0 && operand.Index <= 7, text)
			case WORD_S:
				length := len(line.Word.Text)
				assert.True(length >= 1 && length <= 4, text)
			}
		}
	})
}
