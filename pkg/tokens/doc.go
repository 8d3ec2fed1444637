// Package tokens holds the byte tables used to tokenize Commodore BASIC
// source: canonical control-character mnemonics, the Ahoy! magazine
// mnemonic aliases, and the keyword tables for each BASIC version.
package tokens
