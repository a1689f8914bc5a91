package token

type TokenType string

const (
	// Structural
	TokenNewline TokenType = "NEWLINE"
	TokenEOF     TokenType = "EOF"
	TokenIllegal TokenType = "ILLEGAL"

	// Keywords
	TokenPrint    TokenType = "PRINT"    // print
	TokenIf       TokenType = "IF"       // if
	TokenThen     TokenType = "THEN"     // then
	TokenElseif   TokenType = "ELSEIF"   // elseif
	TokenElse     TokenType = "ELSE"     // else
	TokenEndif    TokenType = "ENDIF"    // endif
	TokenWhile    TokenType = "WHILE"    // while
	TokenRepeat   TokenType = "REPEAT"   // repeat
	TokenEndwhile TokenType = "ENDWHILE" // endwhile
	TokenLabel    TokenType = "LABEL"    // label
	TokenGoto     TokenType = "GOTO"     // goto
	TokenInt      TokenType = "INT"      // int
	TokenFlt      TokenType = "FLT"      // flt
	TokenStr      TokenType = "STR"      // str
	TokenInput    TokenType = "INPUT"    // input

	// Literals & identifiers
	TokenIdent  TokenType = "IDENT"
	TokenNumber TokenType = "NUMBER"
	TokenString TokenType = "STRING"

	// Operators
	TokenEq       TokenType = "EQ"       // =
	TokenPlus     TokenType = "PLUS"     // +
	TokenMinus    TokenType = "MINUS"    // -
	TokenAsterisk TokenType = "ASTERISK" // *
	TokenSlash    TokenType = "SLASH"    // / (division)
	TokenEqEq     TokenType = "EQEQ"     // ==
	TokenNotEq    TokenType = "NOTEQ"    // !=
	TokenLt       TokenType = "LT"       // <
	TokenLtEq     TokenType = "LTEQ"     // <=
	TokenGt       TokenType = "GT"       // >
	TokenGtEq     TokenType = "GTEQ"     // >=

	// Array literal markers
	TokenArrayStart TokenType = "ARRAYSTART" // [
	TokenArrayEnd   TokenType = "ARRAYEND"   // ]
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// IsComparison reports whether the token is one of the six relational
// operators.
func (t Token) IsComparison() bool {
	switch t.Type {
	case TokenEqEq, TokenNotEq, TokenLt, TokenLtEq, TokenGt, TokenGtEq:
		return true
	}
	return false
}
