// Package textfmt reflows user-entered notes for a narrow fixed-width display.
//
// FormatAligned lays out key/description pairs with aligned colons and hanging
// indents; FormatFreeform wraps free text line by line. Both refuse empty input
// with ErrNoContent. Document adds the standard header.
package textfmt
