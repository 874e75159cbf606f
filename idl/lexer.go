package idl

import (
	"strings"
	"unicode"
)

type tokenType int

const (
	tokEOF tokenType = iota
	tokIdent
	tokString // quoted string literal, lexeme holds the unquoted value
	tokLBrace
	tokRBrace
	tokLParen
	tokRParen
	tokLAngle
	tokRAngle
	tokLBracket
	tokRBracket
	tokComma
	tokSemi
	tokQuestion
	tokEquals
)

func (t tokenType) String() string {
	switch t {
	case tokEOF:
		return "end of input"
	case tokIdent:
		return "identifier"
	case tokString:
		return "string literal"
	case tokLBrace:
		return "'{'"
	case tokRBrace:
		return "'}'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokLAngle:
		return "'<'"
	case tokRAngle:
		return "'>'"
	case tokLBracket:
		return "'['"
	case tokRBracket:
		return "']'"
	case tokComma:
		return "','"
	case tokSemi:
		return "';'"
	case tokQuestion:
		return "'?'"
	case tokEquals:
		return "'='"
	}
	return "unknown token"
}

type token struct {
	typ    tokenType
	lexeme string
	pos    Position
}

// lexer is a hand-written scanner over IDL source. Comments and whitespace
// are skipped; positions are tracked per token for diagnostics.
type lexer struct {
	source []rune
	pos    int
	line   int
	col    int
}

func newLexer(source string) *lexer {
	return &lexer{source: []rune(source), line: 1}
}

func (l *lexer) position() Position {
	return Position{Line: l.line, Column: l.col}
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.source) {
		return 0
	}
	return l.source[l.pos]
}

func (l *lexer) advance() rune {
	ch := l.source[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch
}

func (l *lexer) skipTrivia() error {
	for l.pos < len(l.source) {
		switch {
		case unicode.IsSpace(l.peek()):
			l.advance()
		case l.peek() == '/' && l.pos+1 < len(l.source) && l.source[l.pos+1] == '/':
			for l.pos < len(l.source) && l.peek() != '\n' {
				l.advance()
			}
		case l.peek() == '/' && l.pos+1 < len(l.source) && l.source[l.pos+1] == '*':
			start := l.position()
			l.advance()
			l.advance()
			closed := false
			for l.pos < len(l.source) {
				if l.peek() == '*' && l.pos+1 < len(l.source) && l.source[l.pos+1] == '/' {
					l.advance()
					l.advance()
					closed = true
					break
				}
				l.advance()
			}
			if !closed {
				return newSyntaxError("unterminated block comment", start, "")
			}
		default:
			return nil
		}
	}
	return nil
}

// next scans one token.
func (l *lexer) next() (token, error) {
	if err := l.skipTrivia(); err != nil {
		return token{}, err
	}
	pos := l.position()
	if l.pos >= len(l.source) {
		return token{typ: tokEOF, pos: pos}, nil
	}

	ch := l.peek()
	switch {
	case isIdentStart(ch):
		var sb strings.Builder
		for l.pos < len(l.source) && isIdentPart(l.peek()) {
			sb.WriteRune(l.advance())
		}
		return token{typ: tokIdent, lexeme: sb.String(), pos: pos}, nil

	case ch == '"':
		l.advance()
		var sb strings.Builder
		for {
			if l.pos >= len(l.source) || l.peek() == '\n' {
				return token{}, newSyntaxError("unterminated string literal", pos, "")
			}
			c := l.advance()
			if c == '"' {
				break
			}
			sb.WriteRune(c)
		}
		return token{typ: tokString, lexeme: sb.String(), pos: pos}, nil
	}

	l.advance()
	punct := map[rune]tokenType{
		'{': tokLBrace,
		'}': tokRBrace,
		'(': tokLParen,
		')': tokRParen,
		'<': tokLAngle,
		'>': tokRAngle,
		'[': tokLBracket,
		']': tokRBracket,
		',': tokComma,
		';': tokSemi,
		'?': tokQuestion,
		'=': tokEquals,
	}
	if typ, ok := punct[ch]; ok {
		return token{typ: typ, lexeme: string(ch), pos: pos}, nil
	}
	return token{}, newSyntaxError("unexpected character", pos, string(ch))
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch)
}
