/*
File    : ember/parser/parser.go
Author  : akashmaji946

Package parser implements a Pratt (top-down operator precedence) parser
for Ember: a two-token lookahead driven by registration tables of
prefix/infix handlers, plus a precedence table consulted at each step
of expression climbing. Parsing is purely syntactic; constant folding
is left entirely to the evaluator.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/ember/ast"
	"github.com/akashmaji946/ember/lexer"
)

// Precedence levels, ascending.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -X !X
	CALL        // fn(X)
	INDEX       // arr[X]
)

var precedences = map[lexer.TokenType]int{
	lexer.EQUAL_EQUAL:   EQUALS,
	lexer.BANG_EQUAL:    EQUALS,
	lexer.LESS:          LESSGREATER,
	lexer.GREATER:       LESSGREATER,
	lexer.PLUS:          SUM,
	lexer.MINUS:         SUM,
	lexer.SLASH:         PRODUCT,
	lexer.STAR:          PRODUCT,
	lexer.LEFT_PAREN:    CALL,
	lexer.LEFT_BRACKET:  INDEX,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser pulls tokens from a Lexer and builds a Program. It is robust:
// it records diagnostics in Errors and keeps going rather than panicking.
type Parser struct {
	lex lexer.Lexer

	currToken lexer.Token
	peekToken lexer.Token

	errors []string

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser over src, priming the two-token lookahead and
// registering every prefix/infix handler the language defines.
func New(src string) *Parser {
	p := &Parser{
		lex:    lexer.New(src),
		errors: []string{},
	}

	p.prefixParseFns = make(map[lexer.TokenType]prefixParseFn)
	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(lexer.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(lexer.BANG, p.parsePrefixExpression)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpression)
	p.registerPrefix(lexer.LEFT_PAREN, p.parseGroupedExpression)
	p.registerPrefix(lexer.IF, p.parseIfExpression)
	p.registerPrefix(lexer.FUNC, p.parseFunctionLiteral)
	p.registerPrefix(lexer.LEFT_BRACKET, p.parseArrayLiteral)
	p.registerPrefix(lexer.LEFT_BRACE, p.parseHashLiteral)

	p.infixParseFns = make(map[lexer.TokenType]infixParseFn)
	p.registerInfix(lexer.PLUS, p.parseInfixExpression)
	p.registerInfix(lexer.MINUS, p.parseInfixExpression)
	p.registerInfix(lexer.SLASH, p.parseInfixExpression)
	p.registerInfix(lexer.STAR, p.parseInfixExpression)
	p.registerInfix(lexer.EQUAL_EQUAL, p.parseInfixExpression)
	p.registerInfix(lexer.BANG_EQUAL, p.parseInfixExpression)
	p.registerInfix(lexer.LESS, p.parseInfixExpression)
	p.registerInfix(lexer.GREATER, p.parseInfixExpression)
	p.registerInfix(lexer.LEFT_PAREN, p.parseCallExpression)
	p.registerInfix(lexer.LEFT_BRACKET, p.parseIndexExpression)

	p.advance()
	p.advance()
	return p
}

func (p *Parser) registerPrefix(tt lexer.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tt] = fn
}

func (p *Parser) registerInfix(tt lexer.TokenType, fn infixParseFn) {
	p.infixParseFns[tt] = fn
}

// Errors returns the diagnostics accumulated so far.
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, msg)
}

func (p *Parser) advance() {
	p.currToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) currTokenIs(tt lexer.TokenType) bool {
	return p.currToken.Type == tt
}

func (p *Parser) peekTokenIs(tt lexer.TokenType) bool {
	return p.peekToken.Type == tt
}

// expectPeek advances only if the next token matches expected, recording
// a diagnostic otherwise. This is the parser's workhorse for "I expect X
// next" productions.
func (p *Parser) expectPeek(expected lexer.TokenType) bool {
	if p.peekTokenIs(expected) {
		p.advance()
		return true
	}
	p.addError(fmt.Sprintf("Expected next token to be %s, but got %s instead", expected, p.peekToken.Type))
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) currPrecedence() int {
	if pr, ok := precedences[p.currToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram pulls tokens until EOS, building a Program out of
// top-level statements. It never stops early on a bad statement: it
// records the diagnostic and moves on to the next one.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.currTokenIs(lexer.EOS) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.advance()
	}
	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.currToken.Type {
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.currToken}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.currToken, Name: p.currToken.Literal}

	if !p.expectPeek(lexer.EQUAL) {
		return nil
	}
	p.advance()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.advance()
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.currToken}
	p.advance()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.advance()
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.currToken}
	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.advance()
	}
	return stmt
}

// parseExpression is the Pratt climbing loop: a prefix handler produces
// the initial left expression, then infix handlers fold in operators
// whose precedence beats the caller's, left-associating on ties because
// the loop condition is strict less-than.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.currToken.Type]
	if prefix == nil {
		p.addError(fmt.Sprintf("No prefix found for token '%s'", p.currToken.Type))
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.advance()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.currToken, Name: p.currToken.Literal}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	value, _ := p.currToken.Value.(float64)
	return &ast.NumberLiteral{Token: p.currToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.currToken, Value: p.currToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.currToken, Value: p.currTokenIs(lexer.TRUE)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.currToken, Operator: p.currToken.Literal}
	p.advance()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{Token: p.currToken, Operator: p.currToken.Literal, Left: left}
	precedence := p.currPrecedence()
	p.advance()
	expr.Right = p.parseExpression(precedence)
	return expr
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.currToken}

	if !p.expectPeek(lexer.LEFT_PAREN) {
		return nil
	}
	p.advance()
	expr.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LEFT_BRACE) {
		return nil
	}
	expr.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(lexer.ELSE) {
		p.advance()
		if !p.expectPeek(lexer.LEFT_BRACE) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
	}
	return expr
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.currToken, Statements: []ast.Statement{}}
	p.advance()

	for !p.currTokenIs(lexer.RIGHT_BRACE) && !p.currTokenIs(lexer.EOS) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}
	return block
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	fn := &ast.FunctionLiteral{Token: p.currToken}

	if !p.expectPeek(lexer.LEFT_PAREN) {
		return nil
	}
	fn.Params = p.parseFunctionParams()

	if !p.expectPeek(lexer.LEFT_BRACE) {
		return nil
	}
	fn.Body = p.parseBlockStatement()
	return fn
}

func (p *Parser) parseFunctionParams() []*ast.Identifier {
	params := []*ast.Identifier{}

	if p.peekTokenIs(lexer.RIGHT_PAREN) {
		p.advance()
		return params
	}

	p.advance()
	params = append(params, &ast.Identifier{Token: p.currToken, Name: p.currToken.Literal})

	for p.peekTokenIs(lexer.COMMA) {
		p.advance()
		p.advance()
		params = append(params, &ast.Identifier{Token: p.currToken, Name: p.currToken.Literal})
	}

	if !p.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}
	return params
}

func (p *Parser) parseCallExpression(fn ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.currToken, Function: fn}
	expr.Arguments = p.parseExpressionList(lexer.RIGHT_PAREN)
	return expr
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	arr := &ast.ArrayLiteral{Token: p.currToken}
	arr.Elements = p.parseExpressionList(lexer.RIGHT_BRACKET)
	return arr
}

// parseExpressionList parses a comma-separated list of expressions
// terminated by end, shared by call arguments and array literals.
func (p *Parser) parseExpressionList(end lexer.TokenType) []ast.Expression {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.advance()
		return list
	}

	p.advance()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(lexer.COMMA) {
		p.advance()
		p.advance()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	expr := &ast.IndexExpression{Token: p.currToken, Left: left}
	p.advance()
	expr.Index = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RIGHT_BRACKET) {
		return nil
	}
	return expr
}

func (p *Parser) parseHashLiteral() ast.Expression {
	hash := &ast.HashLiteral{Token: p.currToken, Keys: []ast.Expression{}, Vals: []ast.Expression{}}

	for !p.peekTokenIs(lexer.RIGHT_BRACE) {
		p.advance()
		key := p.parseExpression(LOWEST)

		if !p.expectPeek(lexer.COLON) {
			return nil
		}
		p.advance()
		val := p.parseExpression(LOWEST)

		hash.Keys = append(hash.Keys, key)
		hash.Vals = append(hash.Vals, val)

		if !p.peekTokenIs(lexer.RIGHT_BRACE) && !p.expectPeek(lexer.COMMA) {
			return nil
		}
	}

	if !p.expectPeek(lexer.RIGHT_BRACE) {
		return nil
	}
	return hash
}
