package machine

import (
	"fmt"
	"iter"
	"strings"
)

// MEMORY_SIZE is the whole of the store: 128 directly addressable words.
const MEMORY_SIZE = 128

// Memory is the single word store. There is no separate register file;
// an instruction's accumulator and index register fields index the same
// array as its address field.
type Memory struct {
	cell [MEMORY_SIZE]Word
}

// Valid reports whether address lies inside the store.
func (m *Memory) Valid(address int) bool {
	return address >= 0 && address < MEMORY_SIZE
}

// At returns the word at a valid address.
func (m *Memory) At(address int) Word {
	return m.cell[address]
}

// Set stores a word at a valid address.
func (m *Memory) Set(address int, w Word) {
	m.cell[address] = w
}

// NextStorage returns the highest address still holding an Undefined
// word. The linker allocates literal storage here, top down.
func (m *Memory) NextStorage() (address int, err error) {
	for address = MEMORY_SIZE - 1; address >= 0; address-- {
		if m.cell[address].Tag == TAG_UNDEFINED {
			return
		}
	}
	err = ErrOutOfMemory
	return
}

// Reset clears every cell back to Undefined.
func (m *Memory) Reset() {
	m.cell = [MEMORY_SIZE]Word{}
}

// Words iterates over the defined cells in address order.
func (m *Memory) Words() iter.Seq2[int, Word] {
	return func(yield func(int, Word) bool) {
		for address, w := range m.cell {
			if w.Tag == TAG_UNDEFINED {
				continue
			}
			if !yield(address, w) {
				return
			}
		}
	}
}

// String dumps the defined cells, one per line.
func (m *Memory) String() string {
	var b strings.Builder
	for address, w := range m.Words() {
		fmt.Fprintf(&b, "%3d: %v\n", address, w)
	}
	return b.String()
}
