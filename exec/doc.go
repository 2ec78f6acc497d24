// Package exec interprets linked BBC-X memory images.
//
// The executor is a fetch, decode, dispatch loop over the packed
// instruction set: accumulator arithmetic with type promotion, skip
// and jump control flow, double-length register pairs, store
// exchanges, and the EXTRA library routines. Execution halts normally
// when the program counter reaches a word that is not an instruction.
//
// All program IO is byte oriented and goes through a Console, so tests
// and the driver alike wire plain readers and writers.
package exec
