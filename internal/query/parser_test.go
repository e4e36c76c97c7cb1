package query

import (
	"errors"
	"strings"
	"testing"
)

func TestParser_ValidFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter string
	}{
		{"simple comparison", "age > 30"},
		{"leading WHERE", "where age > 30"},
		{"string comparison", "name = 'alice'"},
		{"boolean comparison", "active = true"},
		{"null comparison", "deleted_at = null"},
		{"AND expression", "age > 30 AND active = true"},
		{"OR expression", "age > 30 OR premium = true"},
		{"parentheses", "(age > 30 OR premium = true) AND active = true"},
		{"nested path", "user.address.city = \"Oslo\""},
		{"array index path", "tags.0 != 'x'"},
		{"quoted path", "`0.a` = 1"},
		{"bare array record path", "0 = 'x' AND 1.k != 2"},
		{"all comparison operators", "a = 1 AND b != 2 AND c < 3 AND d > 4 AND e <= 5 AND f >= 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.filter)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if expr == nil {
				t.Error("Parse() returned nil expression")
			}
		})
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name   string
		filter string
	}{
		{"empty", ""},
		{"only WHERE", "where"},
		{"missing comparison value", "age >"},
		{"missing path", "> 30"},
		{"incomplete AND", "age > 30 AND"},
		{"incomplete OR", "age > 30 OR"},
		{"unbalanced parenthesis", "(age > 30"},
		{"extra closing parenthesis", "age > 30)"},
		{"trailing tokens", "age > 30 name"},
		{"ordered null", "age < null"},
		{"invalid number", "age > 1-2"},
		{"bad character", "age # 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.filter)
			if err == nil {
				t.Errorf("Parse() expected error for filter: %s", tt.filter)
			}
		})
	}
}

func TestParser_OperatorPrecedence(t *testing.T) {
	// AND should bind tighter than OR
	// a OR b AND c should parse as: a OR (b AND c)
	expr, err := Parse("a = 1 OR b = 2 AND c = 3")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// Check that the root is an OR expression
	binExpr, ok := expr.(*BinaryExpr)
	if !ok {
		t.Fatalf("expected BinaryExpr, got %T", expr)
	}
	if binExpr.Operator != TokenOr {
		t.Errorf("expected root operator to be OR, got %v", binExpr.Operator)
	}

	// Check that the right side is an AND expression
	rightBin, ok := binExpr.Right.(*BinaryExpr)
	if !ok {
		t.Fatalf("expected right side to be BinaryExpr, got %T", binExpr.Right)
	}
	if rightBin.Operator != TokenAnd {
		t.Errorf("expected right operator to be AND, got %v", rightBin.Operator)
	}
}

func TestParser_ParenthesesOverridePrecedence(t *testing.T) {
	expr, err := Parse("(a = 1 OR b = 2) AND c = 3")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	binExpr, ok := expr.(*BinaryExpr)
	if !ok || binExpr.Operator != TokenAnd {
		t.Fatalf("expected root AND, got %#v", expr)
	}
	if left, ok := binExpr.Left.(*BinaryExpr); !ok || left.Operator != TokenOr {
		t.Errorf("expected left side to be OR, got %#v", binExpr.Left)
	}
}

func TestComparisonExpr_Values(t *testing.T) {
	tests := []struct {
		name      string
		filter    string
		wantPath  string
		wantValue interface{}
	}{
		{"string", "name = 'alice'", "name", "alice"},
		{"integer", "age = 30", "age", float64(30)},
		{"float", "score = 95.5", "score", float64(95.5)},
		{"negative integer", "temp = -10", "temp", float64(-10)},
		{"bool", "ok = FALSE", "ok", false},
		{"null", "gone != null", "gone", nil},
		{"quoted path", "`a\\.b` = 'x'", `a\.b`, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.filter)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			comp, ok := expr.(*ComparisonExpr)
			if !ok {
				t.Fatalf("expected ComparisonExpr, got %T", expr)
			}
			if comp.Path != tt.wantPath {
				t.Errorf("expected path %q, got %q", tt.wantPath, comp.Path)
			}
			if comp.Value != tt.wantValue {
				t.Errorf("expected value %v (%T), got %v (%T)", tt.wantValue, tt.wantValue, comp.Value, comp.Value)
			}
		})
	}
}

func TestParse_Limits(t *testing.T) {
	long := strings.Repeat("a", MaxQueryLength+1)
	if _, err := Parse(long); !errors.Is(err, ErrQueryTooLong) {
		t.Errorf("expected ErrQueryTooLong, got %v", err)
	}

	many := strings.Repeat("a = 1 AND ", MaxTokens/4) + "a = 1"
	if _, err := Parse(many); !errors.Is(err, ErrTooManyTokens) {
		t.Errorf("expected ErrTooManyTokens, got %v", err)
	}

	deep := strings.Repeat("(", MaxExpressionDepth+1) + "a = 1" + strings.Repeat(")", MaxExpressionDepth+1)
	if _, err := Parse(deep); !errors.Is(err, ErrExpressionTooDeep) {
		t.Errorf("expected ErrExpressionTooDeep, got %v", err)
	}

	longPath := strings.Repeat("p", MaxPathLength+1) + " = 1"
	if _, err := Parse(longPath); !errors.Is(err, ErrPathTooLong) {
		t.Errorf("expected ErrPathTooLong, got %v", err)
	}
}
