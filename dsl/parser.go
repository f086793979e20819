// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dsl

import (
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/mpelletier/nanotek"
)

// SyntaxErrorKind enumerates the line-level failure modes of §6's
// grammar.
type SyntaxErrorKind uint8

const (
	InvalidChipsetFormat SyntaxErrorKind = iota
	InvalidLinkFormat
	InvalidLinkPin
	FirstDeclarationMismatch
	DeclarationDuplicate
	Empty
)

// SyntaxError is returned for any grammar violation. Line is 1-based;
// Pin and Declaration are populated only for the kinds that carry them.
type SyntaxError struct {
	Line        int
	Kind        SyntaxErrorKind
	Pin         string
	Declaration string
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case InvalidChipsetFormat:
		return "line " + strconv.Itoa(e.Line) + ": invalid chipset line"
	case InvalidLinkFormat:
		return "line " + strconv.Itoa(e.Line) + ": invalid link line"
	case InvalidLinkPin:
		return "line " + strconv.Itoa(e.Line) + ": invalid pin number " + strconv.Quote(e.Pin)
	case FirstDeclarationMismatch:
		return "line " + strconv.Itoa(e.Line) + ": expected .chipsets: as the first declaration"
	case DeclarationDuplicate:
		return "line " + strconv.Itoa(e.Line) + ": duplicate declaration " + e.Declaration
	case Empty:
		return "circuit description has no declarations"
	default:
		return "line " + strconv.Itoa(e.Line) + ": syntax error"
	}
}

// LineError wraps a *nanotek.BuildError (or any builder error) with the
// source line that produced it. The underlying error is reachable via
// errors.Unwrap/errors.As.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return "line " + strconv.Itoa(e.Line) + ": " + e.Err.Error()
}

func (e *LineError) Unwrap() error { return e.Err }

const (
	chipsetsHeader = ".chipsets:"
	linksHeader    = ".links:"
)

type section uint8

const (
	sectionNone section = iota
	sectionChipsets
	sectionLinks
)

// line is the set of meaningful (non-comment, non-whitespace) tokens
// found at one source line.
type line struct {
	num    int
	tokens []lexer.Token
}

// scanLines tokenizes r and groups its meaningful tokens by source line,
// in ascending line order.
func scanLines(r io.Reader) ([]line, error) {
	lx, err := dslLexer.Lex("circuit", r)
	if err != nil {
		return nil, errors.Wrap(err, "lexing circuit description")
	}
	byLine := make(map[int][]lexer.Token)
	var order []int
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, errors.Wrap(err, "lexing circuit description")
		}
		if tok.EOF() {
			break
		}
		switch tok.Type {
		case dslLexer.Symbols()[tokComment], dslLexer.Symbols()[tokWhitespace], dslLexer.Symbols()[tokNewline]:
			continue
		}
		n := tok.Pos.Line
		if _, ok := byLine[n]; !ok {
			order = append(order, n)
		}
		byLine[n] = append(byLine[n], tok)
	}
	lines := make([]line, len(order))
	for i, n := range order {
		lines[i] = line{num: n, tokens: byLine[n]}
	}
	return lines, nil
}

// Parse reads a circuit description from r and drives b accordingly,
// calling AddComponent for every chipset line and LinkComponents for
// every link line, in source order.
func Parse(r io.Reader, b *nanotek.Builder) error {
	lines, err := scanLines(r)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return &SyntaxError{Kind: Empty}
	}

	first := lines[0]
	if !isHeader(first, chipsetsHeader) {
		return &SyntaxError{Line: first.num, Kind: FirstDeclarationMismatch}
	}

	sec := sectionNone
	seenChipsets, seenLinks := false, false

	for _, ln := range lines {
		switch {
		case isHeader(ln, chipsetsHeader):
			if seenChipsets {
				return &SyntaxError{Line: ln.num, Kind: DeclarationDuplicate, Declaration: chipsetsHeader}
			}
			seenChipsets = true
			sec = sectionChipsets
		case isHeader(ln, linksHeader):
			if seenLinks {
				return &SyntaxError{Line: ln.num, Kind: DeclarationDuplicate, Declaration: linksHeader}
			}
			seenLinks = true
			sec = sectionLinks
		case len(ln.tokens) == 1 && ln.tokens[0].Type == dslLexer.Symbols()[tokSection]:
			// A section-shaped token that isn't one of the two known headers.
			if sec == sectionLinks {
				return &SyntaxError{Line: ln.num, Kind: InvalidLinkFormat}
			}
			return &SyntaxError{Line: ln.num, Kind: InvalidChipsetFormat}
		case sec == sectionChipsets:
			if err := parseChipsetLine(ln, b); err != nil {
				return err
			}
		case sec == sectionLinks:
			if err := parseLinkLine(ln, b); err != nil {
				return err
			}
		default:
			return &SyntaxError{Line: ln.num, Kind: InvalidChipsetFormat}
		}
	}
	return nil
}

func isHeader(ln line, header string) bool {
	return len(ln.tokens) == 1 &&
		ln.tokens[0].Type == dslLexer.Symbols()[tokSection] &&
		ln.tokens[0].Value == header
}

// parseChipsetLine handles "<type> <name>".
func parseChipsetLine(ln line, b *nanotek.Builder) error {
	if len(ln.tokens) != 2 || !isWord(ln.tokens[0]) || !isWord(ln.tokens[1]) {
		return &SyntaxError{Line: ln.num, Kind: InvalidChipsetFormat}
	}
	typeName, name := ln.tokens[0].Value, ln.tokens[1].Value
	if err := b.AddComponent(typeName, name); err != nil {
		return &LineError{Line: ln.num, Err: err}
	}
	return nil
}

// parseLinkLine handles "<nameA>:<pinA> <nameB>:<pinB>".
func parseLinkLine(ln line, b *nanotek.Builder) error {
	if len(ln.tokens) != 6 ||
		!isWord(ln.tokens[0]) || !isColon(ln.tokens[1]) || !isWord(ln.tokens[2]) ||
		!isWord(ln.tokens[3]) || !isColon(ln.tokens[4]) || !isWord(ln.tokens[5]) {
		return &SyntaxError{Line: ln.num, Kind: InvalidLinkFormat}
	}
	nameA, pinAText := ln.tokens[0].Value, ln.tokens[2].Value
	nameB, pinBText := ln.tokens[3].Value, ln.tokens[5].Value

	pinA, err := parsePin(pinAText)
	if err != nil {
		return &SyntaxError{Line: ln.num, Kind: InvalidLinkPin, Pin: pinAText}
	}
	pinB, err := parsePin(pinBText)
	if err != nil {
		return &SyntaxError{Line: ln.num, Kind: InvalidLinkPin, Pin: pinBText}
	}
	if err := b.LinkComponents(nameA, pinA, nameB, pinB); err != nil {
		return &LineError{Line: ln.num, Err: err}
	}
	return nil
}

func parsePin(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.Errorf("invalid pin number %q", s)
	}
	return n, nil
}

func isWord(t lexer.Token) bool  { return t.Type == dslLexer.Symbols()[tokWord] }
func isColon(t lexer.Token) bool { return t.Type == dslLexer.Symbols()[tokColon] }
