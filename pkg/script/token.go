package script

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	// Literals
	IDENTIFIER // variable / builtin name
	INTEGER    // decimal integer literal

	// Keywords
	LET   // "let"
	IF    // "if"
	THEN  // "then"
	WHILE // "while"
	DO    // "do"
	END   // "end"
	AND   // "and"

	// Delimiters
	LPAREN // (
	RPAREN // )

	// Operators
	ASSIGN  // =
	PLUS    // +
	MINUS   // -
	LESS    // <
	GREATER // >
)

var tokenNames = [...]string{
	EOF:        "EOF",
	IDENTIFIER: "IDENTIFIER",
	INTEGER:    "INTEGER",
	LET:        "LET",
	IF:         "IF",
	THEN:       "THEN",
	WHILE:      "WHILE",
	DO:         "DO",
	END:        "END",
	AND:        "AND",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	ASSIGN:     "ASSIGN",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	LESS:       "LESS",
	GREATER:    "GREATER",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Symbol returns the source spelling of an operator token.
func (tt TokenType) Symbol() string {
	switch tt {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case LESS:
		return "<"
	case GREATER:
		return ">"
	case AND:
		return "and"
	case ASSIGN:
		return "="
	}
	return tt.String()
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  line %d", t.Type, t.Lexeme, t.Line)
}
