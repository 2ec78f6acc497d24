// Package machine models the BBC-X store: 24-bit tagged words, the
// 128-word memory that doubles as the register file, packed P-word
// instructions, and the 6-bit teletype character set.
package machine
