package script

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar:
//
//	program    = statement* EOF
//	statement  = letDecl | assignment | call | if | while
//	letDecl    = "let" IDENTIFIER "=" expression
//	assignment = IDENTIFIER "=" expression
//	call       = IDENTIFIER "(" expression? ")"
//	if         = "if" expression "then" statement* "end"
//	while      = "while" expression "do" statement* "end"
//	expression = logical_and
//	logical_and = relational ("and" relational)*
//	relational = additive (("<"|">") additive)*
//	additive   = primary (("+"|"-") primary)*
//	primary    = INTEGER | IDENTIFIER | "(" expression ")"
//
// Statements have no terminator; an expression ends at the first token that
// cannot continue it.
type Parser struct {
	tokens      []Token
	pos         int
	sourceLines []string
}

func NewParser(tokens []Token, rawSource string) *Parser {
	return &Parser{tokens: tokens, sourceLines: strings.Split(rawSource, "\n")}
}

// fmtError wraps an error message with the source line where the token appears.
func (p *Parser) fmtError(tok Token, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	lineIdx := tok.Line - 1

	snippet := "<source unavailable>"
	if lineIdx >= 0 && lineIdx < len(p.sourceLines) {
		snippet = strings.TrimSpace(p.sourceLines[lineIdx])
	}

	return fmt.Errorf("line %d: %s\n  |> %s", tok.Line, msg, snippet)
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

// peekNext returns the token immediately after the current one.
func (p *Parser) peekNext() Token {
	if p.pos+1 >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos+1]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches tt, otherwise returns an error.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.advance()
	if tok.Type != tt {
		return tok, p.fmtError(tok, "expected %s, got %s (%q)", tt, tok.Type, tok.Lexeme)
	}
	return tok, nil
}

func (p *Parser) parseExpression() (Expr, error) {
	return p.parseLogicalAnd()
}

// parseLogicalAnd handles and
func (p *Parser) parseLogicalAnd() (Expr, error) {
	expr, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == AND {
		op := p.advance().Type
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpr{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

// parseRelational handles < and >
func (p *Parser) parseRelational() (Expr, error) {
	expr, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == LESS || p.peek().Type == GREATER {
		op := p.advance().Type
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

// parseAdditive handles + and -
func (p *Parser) parseAdditive() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == PLUS || p.peek().Type == MINUS {
		op := p.advance().Type
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.advance()
	switch tok.Type {
	case INTEGER:
		v, err := strconv.Atoi(tok.Lexeme)
		if err != nil {
			return nil, p.fmtError(tok, "invalid integer %q", tok.Lexeme)
		}
		return &Literal{Value: v}, nil
	case IDENTIFIER:
		return &VarRef{Name: tok.Lexeme}, nil
	case LPAREN:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, p.fmtError(tok, "unexpected %s (%q) in expression", tok.Type, tok.Lexeme)
}

// parseBody collects statements up to and including the closing "end".
func (p *Parser) parseBody(opener Token) ([]Stmt, error) {
	var body []Stmt
	for {
		switch p.peek().Type {
		case END:
			p.advance()
			return body, nil
		case EOF:
			return nil, p.fmtError(opener, "%s block is missing its end", opener.Lexeme)
		}
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, s)
	}
}

func (p *Parser) parseStatement() (Stmt, error) {
	tok := p.peek()
	switch tok.Type {

	case LET:
		p.advance()
		name, err := p.expect(IDENTIFIER)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(ASSIGN); err != nil {
			return nil, err
		}
		init, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &LetDecl{Name: name.Lexeme, Init: init}, nil

	case IF, WHILE:
		p.advance()
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		sep := THEN
		if tok.Type == WHILE {
			sep = DO
		}
		if _, err := p.expect(sep); err != nil {
			return nil, err
		}
		body, err := p.parseBody(tok)
		if err != nil {
			return nil, err
		}
		if tok.Type == WHILE {
			return &WhileStmt{Condition: cond, Body: body}, nil
		}
		return &IfStmt{Condition: cond, Body: body}, nil

	case IDENTIFIER:
		if p.peekNext().Type == LPAREN {
			return p.parseCall()
		}
		p.advance()
		if _, err := p.expect(ASSIGN); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &Assignment{Name: tok.Lexeme, Value: value}, nil
	}
	return nil, p.fmtError(tok, "unexpected %s (%q) at start of statement", tok.Type, tok.Lexeme)
}

// parseCall parses name() or name(expr). Builtins take at most one argument.
func (p *Parser) parseCall() (Stmt, error) {
	name := p.advance()
	p.advance() // (
	call := &CallStmt{Name: name.Lexeme}
	if p.peek().Type != RPAREN {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return call, nil
}

// Parse builds the statement list for a whole program.
func Parse(tokens []Token, rawSource string) ([]Stmt, error) {
	p := NewParser(tokens, rawSource)
	var stmts []Stmt
	for p.peek().Type != EOF {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}
