package parser

import (
	"fmt"
	"strings"

	"github.com/tinylang/tinyc/internal/compiler/emitter"
	"github.com/tinylang/tinyc/internal/compiler/lexer"
	"github.com/tinylang/tinyc/internal/compiler/symbols"
	"github.com/tinylang/tinyc/internal/compiler/token"
)

// Parser recognizes the grammar top-down and emits the matching C fragment
// the moment each construct is recognized. There is no syntax tree: the
// output's token order is the recognition order. The only check that cannot
// happen inline is the goto/label cross-reference, which runs once after
// the whole program has been recognized so that forward gotos work.
type Parser struct {
	l  *lexer.Lexer
	em *emitter.Emitter

	curTok  token.Token
	peekTok token.Token

	table *symbols.Table
}

func NewParser(l *lexer.Lexer, em *emitter.Emitter) *Parser {
	p := &Parser{
		l:     l,
		em:    em,
		table: symbols.NewTable(),
	}
	// Call this twice to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// --- Token handling ---

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.l.NextToken()
	// No need to worry about running past the end, the lexer repeats EOF
}

// checkToken returns true if the current token matches
func (p *Parser) checkToken(kind token.TokenType) bool {
	return p.curTok.Type == kind
}

// match consumes the current token if it matches the expected kind,
// otherwise it fails.
func (p *Parser) match(kind token.TokenType) error {
	if !p.checkToken(kind) {
		return p.syntaxErrorf("expected %s, got %q (%s)", kind, p.curTok.Literal, p.curTok.Type)
	}
	p.nextToken()
	return nil
}

// --- Error formatting ---

func (p *Parser) syntaxErrorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%d:%d: Syntax Error: %s", p.curTok.Line, p.curTok.Column, msg)
}

func (p *Parser) semanticErrorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%d:%d: Semantic Error: %s", p.curTok.Line, p.curTok.Column, msg)
}

// --- Production rules ---

// ParseProgram drives the whole translation.
//
//	program ::= {statement}
//
// It emits the fixed preamble and epilogue around the statements, then
// verifies that every goto target was declared somewhere in the program.
func (p *Parser) ParseProgram() error {
	p.em.HeaderLine("#include <stdio.h>")
	p.em.HeaderLine("int main(void){")

	// Some newlines are required in the grammar, so skip the leading excess
	for p.checkToken(token.TokenNewline) {
		p.nextToken()
	}

	for !p.checkToken(token.TokenEOF) {
		if err := p.statement(); err != nil {
			return err
		}
	}

	p.em.EmitLine("return 0;")
	p.em.EmitLine("}")

	// Check that each label referenced in a goto is declared. Deferred to
	// here because gotos may jump forward to labels declared later.
	if missing := p.table.UndeclaredGotos(); len(missing) > 0 {
		return fmt.Errorf("Semantic Error: attempting to goto undeclared label: %s", missing[0])
	}
	return nil
}

// statement dispatches on the current token and recognizes exactly one
// statement, including its terminating newline(s).
func (p *Parser) statement() error {
	var err error
	switch p.curTok.Type {
	case token.TokenPrint:
		err = p.printStatement()
	case token.TokenIf:
		err = p.ifStatement()
	case token.TokenWhile:
		err = p.whileStatement()
	case token.TokenLabel:
		err = p.labelStatement()
	case token.TokenGoto:
		err = p.gotoStatement()
	case token.TokenInt:
		err = p.numericDeclaration("int")
	case token.TokenFlt:
		err = p.numericDeclaration("float")
	case token.TokenStr:
		err = p.stringDeclaration()
	case token.TokenInput:
		err = p.inputStatement()
	case token.TokenArrayStart:
		err = p.arrayLiteral()
	default:
		return p.syntaxErrorf("invalid statement at %q (%s)", p.curTok.Literal, p.curTok.Type)
	}
	if err != nil {
		return err
	}
	return p.nl()
}

// "print" (string | expression)
func (p *Parser) printStatement() error {
	p.nextToken()

	if p.checkToken(token.TokenString) {
		// Simple string, print it as-is
		p.em.EmitLine(`printf("` + p.curTok.Literal + `\n");`)
		p.nextToken()
		return nil
	}

	// Expect an expression and print the result as a float
	p.em.Emit(`printf("%.2f\n", (float)(`)
	if err := p.expression(); err != nil {
		return err
	}
	p.em.EmitLine("));")
	return nil
}

// "if" comparison "then" nl {statement}
// {"elseif" comparison "then" nl {statement}}
// ["else" nl {statement}]
// "endif"
func (p *Parser) ifStatement() error {
	p.nextToken()
	p.em.Emit("if(")
	if err := p.comparison(); err != nil {
		return err
	}
	if err := p.match(token.TokenThen); err != nil {
		return err
	}
	if err := p.nl(); err != nil {
		return err
	}
	p.em.EmitLine("){")

	if err := p.block(token.TokenEndif, token.TokenElseif, token.TokenElse); err != nil {
		return err
	}

	for p.checkToken(token.TokenElseif) {
		p.nextToken()
		p.em.Emit("}else if(")
		if err := p.comparison(); err != nil {
			return err
		}
		if err := p.match(token.TokenThen); err != nil {
			return err
		}
		if err := p.nl(); err != nil {
			return err
		}
		p.em.EmitLine("){")
		if err := p.block(token.TokenEndif, token.TokenElseif, token.TokenElse); err != nil {
			return err
		}
	}

	if p.checkToken(token.TokenElse) {
		p.nextToken()
		if err := p.nl(); err != nil {
			return err
		}
		p.em.EmitLine("}else{")
		if err := p.block(token.TokenEndif); err != nil {
			return err
		}
	}

	if err := p.match(token.TokenEndif); err != nil {
		return err
	}
	p.em.EmitLine("}")
	return nil
}

// "while" comparison "repeat" nl {statement} "endwhile"
func (p *Parser) whileStatement() error {
	p.nextToken()
	p.em.Emit("while(")
	if err := p.comparison(); err != nil {
		return err
	}
	if err := p.match(token.TokenRepeat); err != nil {
		return err
	}
	if err := p.nl(); err != nil {
		return err
	}
	p.em.EmitLine("){")

	if err := p.block(token.TokenEndwhile); err != nil {
		return err
	}

	if err := p.match(token.TokenEndwhile); err != nil {
		return err
	}
	p.em.EmitLine("}")
	return nil
}

// block recognizes zero or more statements until one of the given stop
// tokens is current. EOF fails inside a block: the enclosing construct was
// never closed.
func (p *Parser) block(stop ...token.TokenType) error {
	for {
		for _, s := range stop {
			if p.checkToken(s) {
				return nil
			}
		}
		if p.checkToken(token.TokenEOF) {
			return p.syntaxErrorf("unexpected end of input, expected %s", stop[0])
		}
		if err := p.statement(); err != nil {
			return err
		}
	}
}

// "label" ident
func (p *Parser) labelStatement() error {
	p.nextToken()

	name := p.curTok.Literal
	if p.checkToken(token.TokenIdent) && !p.table.DeclareLabel(name) {
		return p.semanticErrorf("label already exists: %s", name)
	}
	if err := p.match(token.TokenIdent); err != nil {
		return err
	}
	p.em.EmitLine(name + ":")
	return nil
}

// "goto" ident
func (p *Parser) gotoStatement() error {
	p.nextToken()

	name := p.curTok.Literal
	if err := p.match(token.TokenIdent); err != nil {
		return err
	}
	// Validated at end of program; the label may be declared further down
	p.table.RefLabel(name)
	p.em.EmitLine("goto " + name + ";")
	return nil
}

// ("int" | "flt") ident "=" expression
func (p *Parser) numericDeclaration(cType string) error {
	p.nextToken()

	name := p.curTok.Literal
	if p.checkToken(token.TokenIdent) && p.table.DeclareVar(name) {
		p.em.HeaderLine(cType + " " + name + ";")
	}

	p.em.Emit(name + " = ")
	if err := p.match(token.TokenIdent); err != nil {
		return err
	}
	if err := p.match(token.TokenEq); err != nil {
		return err
	}
	if err := p.expression(); err != nil {
		return err
	}
	p.em.EmitLine(";")
	return nil
}

// "str" ident "=" string
func (p *Parser) stringDeclaration() error {
	p.nextToken()

	name := p.curTok.Literal
	if p.checkToken(token.TokenIdent) && p.table.DeclareVar(name) {
		p.em.HeaderLine("char " + name + ";")
	}

	p.em.Emit(name + " = ")
	if err := p.match(token.TokenIdent); err != nil {
		return err
	}
	if err := p.match(token.TokenEq); err != nil {
		return err
	}
	p.em.Emit(`"` + p.curTok.Literal + `"`)
	if err := p.match(token.TokenString); err != nil {
		return err
	}
	p.em.EmitLine(";")
	return nil
}

// "input" ident
//
// The generated read is guarded: on a failed scanf the variable is set to
// zero and the rest of the malformed input line is discarded, so the
// compiled program never crashes or leaves bad input unread.
func (p *Parser) inputStatement() error {
	p.nextToken()

	name := p.curTok.Literal
	if p.checkToken(token.TokenIdent) && p.table.DeclareVar(name) {
		p.em.HeaderLine("float " + name + ";")
	}
	if err := p.match(token.TokenIdent); err != nil {
		return err
	}

	p.em.EmitLine(`if(0 == scanf("%f", &` + name + `)) {`)
	p.em.EmitLine(name + " = 0;")
	p.em.EmitLine(`scanf("%*s");`)
	p.em.EmitLine("}")
	return nil
}

// "[" {number | string} "]"
//
// Only the unambiguous surface of this construct is implemented: the opener
// declares once, elements must be number or string literals, and the
// emitted initializer is sized to the element count.
func (p *Parser) arrayLiteral() error {
	name := p.curTok.Literal
	if p.table.DeclareVar(name) {
		p.em.HeaderLine("char " + name + ";")
	}
	p.nextToken()

	var elems []string
	for !p.checkToken(token.TokenArrayEnd) {
		if p.checkToken(token.TokenEOF) {
			return p.syntaxErrorf("unexpected end of input, expected %s", token.TokenArrayEnd)
		}
		if !p.checkToken(token.TokenNumber) && !p.checkToken(token.TokenString) {
			return p.syntaxErrorf("illegal token in an array: %q. Only numbers and strings are allowed", p.curTok.Literal)
		}
		elems = append(elems, p.curTok.Literal)
		p.nextToken()
	}
	p.nextToken() // consume "]"

	if len(elems) == 0 {
		p.em.EmitLine("[0];")
		return nil
	}
	p.em.EmitLine(fmt.Sprintf("[%d] = {%s};", len(elems), strings.Join(elems, ", ")))
	return nil
}

// comparison ::= expression (("==" | "!=" | ">" | ">=" | "<" | "<=") expression)+
//
// After the relational pairs, zero or more +/- operator/expression pairs
// are accepted at the comparison level, outside the sub-expressions.
func (p *Parser) comparison() error {
	if err := p.expression(); err != nil {
		return err
	}

	// Must be at least one comparison operator and another expression
	if !p.curTok.IsComparison() {
		return p.syntaxErrorf("expected comparison operator, got %q (%s)", p.curTok.Literal, p.curTok.Type)
	}
	for p.curTok.IsComparison() {
		p.em.Emit(p.curTok.Literal)
		p.nextToken()
		if err := p.expression(); err != nil {
			return err
		}
	}

	for p.checkToken(token.TokenPlus) || p.checkToken(token.TokenMinus) {
		p.em.Emit(p.curTok.Literal)
		p.nextToken()
		if err := p.expression(); err != nil {
			return err
		}
	}
	return nil
}

// expression ::= term {("-" | "+") term}
func (p *Parser) expression() error {
	if err := p.term(); err != nil {
		return err
	}
	for p.checkToken(token.TokenPlus) || p.checkToken(token.TokenMinus) {
		p.em.Emit(p.curTok.Literal)
		p.nextToken()
		if err := p.term(); err != nil {
			return err
		}
	}
	return nil
}

// term ::= unary {("/" | "*") unary}
func (p *Parser) term() error {
	if err := p.unary(); err != nil {
		return err
	}
	for p.checkToken(token.TokenAsterisk) || p.checkToken(token.TokenSlash) {
		p.em.Emit(p.curTok.Literal)
		p.nextToken()
		if err := p.unary(); err != nil {
			return err
		}
	}
	return nil
}

// unary ::= ["+" | "-"] primary
func (p *Parser) unary() error {
	if p.checkToken(token.TokenPlus) || p.checkToken(token.TokenMinus) {
		p.em.Emit(p.curTok.Literal)
		p.nextToken()
	}
	return p.primary()
}

// primary ::= number | ident
func (p *Parser) primary() error {
	switch p.curTok.Type {
	case token.TokenNumber:
		p.em.Emit(p.curTok.Literal)
		p.nextToken()
		return nil
	case token.TokenIdent:
		// The variable must already exist
		if !p.table.HasVar(p.curTok.Literal) {
			return p.semanticErrorf("referencing variable before assignment: %s", p.curTok.Literal)
		}
		p.em.Emit(p.curTok.Literal)
		p.nextToken()
		return nil
	default:
		return p.syntaxErrorf("unexpected token at %q (%s)", p.curTok.Literal, p.curTok.Type)
	}
}

// nl ::= '\n'+
func (p *Parser) nl() error {
	// Require at least one newline, allow extras
	if err := p.match(token.TokenNewline); err != nil {
		return err
	}
	for p.checkToken(token.TokenNewline) {
		p.nextToken()
	}
	return nil
}
