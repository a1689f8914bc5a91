package lexer

import "github.com/tinylang/tinyc/internal/compiler/token"

type Lexer struct {
	input        string
	position     int  // current char index
	readPosition int  // next char index
	ch           byte // current char

	line   int // current line number (1-indexed)
	column int // current column number (1-indexed)
}

// NewLexer pads the input with a trailing newline so the last statement
// always ends in a NEWLINE token, which the grammar requires.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input + "\n", line: 1, column: 0}
	l.readChar()
	return l
}

// readChar advances the lexer's position and updates the current character.
// It handles EOF and tracks line/column numbers.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NULL (EOF)
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 1
	} else if l.ch != 0 {
		l.column++
	}
}

// Returns the next character without consuming it
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken returns the next token from the input. Once the input is
// exhausted it returns the EOF token on every call, so callers never have
// to guard against reading past the end.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()
	l.skipComment()

	startLine := l.line
	startCol := l.column

	switch l.ch {
	case '\n':
		// Newlines terminate statements, so they are tokens rather than
		// whitespace. The line counter was already bumped by readChar, so
		// report the token on the line it ends.
		tok := l.newToken(token.TokenNewline, "\\n", startLine-1, startCol)
		l.readChar()
		return tok
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.newToken(token.TokenEqEq, "==", startLine, startCol)
		}
		tok := l.newToken(token.TokenEq, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.newToken(token.TokenNotEq, "!=", startLine, startCol)
		}
		tok := l.newToken(token.TokenIllegal, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.newToken(token.TokenGtEq, ">=", startLine, startCol)
		}
		tok := l.newToken(token.TokenGt, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.newToken(token.TokenLtEq, "<=", startLine, startCol)
		}
		tok := l.newToken(token.TokenLt, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case '+':
		tok := l.newToken(token.TokenPlus, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case '-':
		tok := l.newToken(token.TokenMinus, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case '*':
		tok := l.newToken(token.TokenAsterisk, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case '/':
		tok := l.newToken(token.TokenSlash, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case '[':
		tok := l.newToken(token.TokenArrayStart, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case ']':
		tok := l.newToken(token.TokenArrayEnd, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	case '"':
		return l.readString(startLine, startCol)
	case 0:
		// EOF. Do NOT call l.readChar() here; this token repeats forever.
		return l.newToken(token.TokenEOF, "", startLine, startCol)
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return l.newToken(lookupIdent(ident), ident, startLine, startCol)
		} else if isDigit(l.ch) {
			return l.readNumber(startLine, startCol)
		}
		tok := l.newToken(token.TokenIllegal, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	}
}

// newToken is a helper to create a token.Token struct
func (l *Lexer) newToken(tokenType token.TokenType, literal string, line, col int) token.Token {
	return token.Token{Type: tokenType, Literal: literal, Line: line, Column: col}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

// skipComment consumes a '#' comment up to (but not including) the newline,
// so the statement terminator still comes through as a token.
func (l *Lexer) skipComment() {
	if l.ch != '#' {
		return
	}
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readString(startLine, startCol int) token.Token {
	start := l.position + 1 // Skip opening "
	l.readChar()            // Consume opening "

	for l.ch != '"' && l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}

	if l.ch != '"' {
		// Unterminated string. The literal text goes into the token so the
		// parser can name it in its error.
		lit := l.input[start:l.position]
		return token.Token{Type: token.TokenIllegal, Literal: lit, Line: startLine, Column: startCol}
	}

	lit := l.input[start:l.position]
	l.readChar() // Consume closing "
	return token.Token{Type: token.TokenString, Literal: lit, Line: startLine, Column: startCol}
}

func (l *Lexer) readNumber(startLine, startCol int) token.Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		if !isDigit(l.peekChar()) {
			// A decimal point must be followed by at least one digit.
			lit := l.input[start:l.readPosition]
			l.readChar()
			return token.Token{Type: token.TokenIllegal, Literal: lit, Line: startLine, Column: startCol}
		}
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	literal := l.input[start:l.position]
	return token.Token{Type: token.TokenNumber, Literal: literal, Line: startLine, Column: startCol}
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// keywords maps identifier strings to their corresponding token types.
var keywords = map[string]token.TokenType{
	"print":    token.TokenPrint,
	"if":       token.TokenIf,
	"then":     token.TokenThen,
	"elseif":   token.TokenElseif,
	"else":     token.TokenElse,
	"endif":    token.TokenEndif,
	"while":    token.TokenWhile,
	"repeat":   token.TokenRepeat,
	"endwhile": token.TokenEndwhile,
	"label":    token.TokenLabel,
	"goto":     token.TokenGoto,
	"int":      token.TokenInt,
	"flt":      token.TokenFlt,
	"str":      token.TokenStr,
	"input":    token.TokenInput,
}

// lookupIdent checks if an identifier is a keyword, returning the keyword's
// token type or token.TokenIdent if it's not a keyword.
func lookupIdent(ident string) token.TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return token.TokenIdent
}
