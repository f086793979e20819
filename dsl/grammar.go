// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package dsl parses the circuit description language described in
// spec.md §6 — two line-oriented sections, ".chipsets:" and ".links:" —
// into calls against a nanotek.Builder.
//
// Tokenizing is delegated to participle's lexer (the teacher hand-rolls
// its own in internal/hdl/parse.go; this package generalizes that same
// "define rules, then drive a hand-written walk over the token
// stream" shape onto a library lexer instead, since the DSL's line-level
// error taxonomy doesn't map onto a single context-free grammar anyway).
package dsl

import "github.com/alecthomas/participle/v2/lexer"

// Token type names produced by dslLexer, also used as a quick reference
// for the kinds of tokens a line can be made of.
const (
	tokComment    = "Comment"
	tokSection    = "Section"
	tokWord       = "Word"
	tokColon      = "Colon"
	tokNewline    = "Newline"
	tokWhitespace = "Whitespace"
)

// dslLexer tokenizes circuit description text. Rules are tried in order
// at each input position; the first match wins, so Section (which starts
// with '.') must precede Word, and Comment must precede everything else
// on a line.
var dslLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: tokComment, Pattern: `#[^\n]*`},
	{Name: tokSection, Pattern: `\.[A-Za-z]+:`},
	{Name: tokWord, Pattern: `-?[A-Za-z0-9_]+`},
	{Name: tokColon, Pattern: `:`},
	{Name: tokNewline, Pattern: `\n`},
	{Name: tokWhitespace, Pattern: `[ \t\r]+`},
})
