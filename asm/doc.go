// Package asm implements the BBC-X assembler: a line parser for the
// four source word forms, a validating assembler producing a symbol
// table and code map, and a linker that folds the result into a
// machine memory image.
//
// The assembler is single pass; each line of source code translates
// into object code on a line by line basis.
package asm
