// Package syntax classifies substrings of single lines into highlight
// categories. Tokenization is a pure function re-run for every visible line
// on every redraw; the per-language keyword tables are constant data built
// once for the process lifetime.
package syntax

import (
	"path/filepath"
	"strings"
)

// Category is the highlight class of a token.
type Category int

const (
	Plain Category = iota
	Keyword
	String
	Comment
	Builtin
)

// Token is one classified span of a line in rune coordinates. The tokens
// produced for a line always partition [0, len(line)) with no gaps or
// overlaps; uncategorized runs come back as Plain.
type Token struct {
	Start    int
	End      int
	Category Category
}

// Language selects a keyword table and comment syntax.
type Language int

const (
	LangNone Language = iota
	LangGo
	LangRust
	LangPython
	LangBash
)

// String returns the display name shown in the header bar.
func (l Language) String() string {
	switch l {
	case LangGo:
		return "go"
	case LangRust:
		return "rust"
	case LangPython:
		return "python"
	case LangBash:
		return "bash"
	default:
		return "text"
	}
}

// Detect returns the language for a filename based on its extension.
func Detect(filename string) Language {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".go":
		return LangGo
	case ".rs":
		return LangRust
	case ".py":
		return LangPython
	case ".sh", ".bash":
		return LangBash
	default:
		return LangNone
	}
}

// Tokenize classifies one line. Scanning order: the comment marker is
// located first and everything from it onward becomes a single Comment
// token; string literals are matched next (quote-delimited, never spanning
// lines); remaining word-boundary substrings are checked against the
// language's keyword and builtin sets; everything else is Plain.
func Tokenize(line string, lang Language) []Token {
	runes := []rune(line)
	if len(runes) == 0 {
		return nil
	}
	def := lookup(lang)
	if def == nil {
		return []Token{{Start: 0, End: len(runes), Category: Plain}}
	}

	limit := len(runes)
	commentAt := commentStart(runes, def.comment)
	if commentAt >= 0 {
		limit = commentAt
	}

	var tokens []Token
	plainFrom := -1
	flushPlain := func(upto int) {
		if plainFrom >= 0 && upto > plainFrom {
			tokens = append(tokens, Token{Start: plainFrom, End: upto, Category: Plain})
		}
		plainFrom = -1
	}

	i := 0
	for i < limit {
		r := runes[i]
		switch {
		case r == '"' || r == '\'':
			flushPlain(i)
			end := closingQuote(runes, i, limit)
			tokens = append(tokens, Token{Start: i, End: end, Category: String})
			i = end
		case isWordRune(r):
			start := i
			for i < limit && isWordRune(runes[i]) {
				i++
			}
			word := string(runes[start:i])
			switch {
			case def.keywords[word]:
				flushPlain(start)
				tokens = append(tokens, Token{Start: start, End: i, Category: Keyword})
			case def.builtins[word]:
				flushPlain(start)
				tokens = append(tokens, Token{Start: start, End: i, Category: Builtin})
			default:
				if plainFrom < 0 {
					plainFrom = start
				}
			}
		default:
			if plainFrom < 0 {
				plainFrom = i
			}
			i++
		}
	}
	flushPlain(limit)

	if commentAt >= 0 {
		tokens = append(tokens, Token{Start: commentAt, End: len(runes), Category: Comment})
	}
	return tokens
}

// commentStart returns the rune index where the line comment begins, or -1.
func commentStart(runes []rune, marker string) int {
	m := []rune(marker)
	if len(m) == 0 {
		return -1
	}
	for i := 0; i+len(m) <= len(runes); i++ {
		match := true
		for j := range m {
			if runes[i+j] != m[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// closingQuote returns the rune index just past the string literal that
// opens at index open. Unterminated literals run to the scan limit.
func closingQuote(runes []rune, open, limit int) int {
	quote := runes[open]
	for i := open + 1; i < limit; i++ {
		if runes[i] == '\\' {
			i++
			continue
		}
		if runes[i] == quote {
			return i + 1
		}
	}
	return limit
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
