package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser parses filter expressions into an AST
type Parser struct {
	tokens       []Token
	pos          int
	depthCounter *ExpressionDepthCounter
}

// NewParser creates a new parser
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:       tokens,
		pos:          0,
		depthCounter: NewExpressionDepthCounter(),
	}
}

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// expect checks if current token matches expected type and advances
func (p *Parser) expect(tokType TokenType) error {
	if p.current().Type != tokType {
		return fmt.Errorf("expected %v, got %s", tokType, describe(p.current()))
	}
	p.advance()
	return nil
}

// Parse parses a filter expression. A leading WHERE keyword is accepted
// and ignored.
func Parse(input string) (Expression, error) {
	// Validate expression length
	if err := ValidateQuery(input); err != nil {
		return nil, err
	}

	tokens := Tokenize(input)

	// Validate token count
	if err := ValidateTokens(tokens); err != nil {
		return nil, err
	}

	parser := NewParser(tokens)
	return parser.parseFilter()
}

// parseFilter parses: [WHERE] expr EOF
func (p *Parser) parseFilter() (Expression, error) {
	if p.current().Type == TokenWhere {
		p.advance()
	}
	if p.current().Type == TokenEOF {
		return nil, fmt.Errorf("empty filter expression")
	}

	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if p.current().Type != TokenEOF {
		return nil, fmt.Errorf("unexpected %s after expression", describe(p.current()))
	}
	return expr, nil
}

// parseOr parses OR expressions (lowest precedence)
func (p *Parser) parseOr() (Expression, error) {
	if err := p.depthCounter.Enter(); err != nil {
		return nil, err
	}
	defer p.depthCounter.Exit()

	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Left:     left,
			Operator: TokenOr,
			Right:    right,
		}
	}

	return left, nil
}

// parseAnd parses AND expressions (higher precedence than OR)
func (p *Parser) parseAnd() (Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenAnd {
		p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Left:     left,
			Operator: TokenAnd,
			Right:    right,
		}
	}

	return left, nil
}

// parsePrimary parses a parenthesized expression or a comparison
func (p *Parser) parsePrimary() (Expression, error) {
	if p.current().Type != TokenLParen {
		return p.parseComparison()
	}

	p.advance()
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseComparison parses path op literal
func (p *Parser) parseComparison() (Expression, error) {
	// Parse path. A bare numeric token names an array element such as 0.
	if t := p.current().Type; t != TokenIdent && t != TokenNumber {
		return nil, fmt.Errorf("expected path, got %s", describe(p.current()))
	}
	path := p.current().Value

	// Validate path length
	if err := ValidatePath(path); err != nil {
		return nil, err
	}

	p.advance()

	// Parse operator
	operator := p.current().Type
	switch operator {
	case TokenEqual, TokenNotEqual, TokenLess, TokenGreater, TokenLessEqual, TokenGreaterEqual:
		p.advance()
	default:
		return nil, fmt.Errorf("expected comparison operator after %q, got %s", path, describe(p.current()))
	}

	// Parse value
	var value interface{}
	switch p.current().Type {
	case TokenString:
		value = p.current().Value
	case TokenNumber:
		numStr := p.current().Value
		f, err := strconv.ParseFloat(numStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %s", numStr)
		}
		value = f
	case TokenBool:
		value = strings.ToLower(p.current().Value) == "true"
	case TokenNull:
		if operator != TokenEqual && operator != TokenNotEqual {
			return nil, fmt.Errorf("null can only be compared with = or !=")
		}
		value = nil
	default:
		return nil, fmt.Errorf("expected value (string, number, boolean or null), got %s", describe(p.current()))
	}
	p.advance()

	return &ComparisonExpr{
		Path:     path,
		Operator: operator,
		Value:    value,
	}, nil
}

func describe(tok Token) string {
	switch tok.Type {
	case TokenEOF:
		return "end of input"
	case TokenError:
		return fmt.Sprintf("invalid input %q", tok.Value)
	default:
		return fmt.Sprintf("%v %q", tok.Type, tok.Value)
	}
}
