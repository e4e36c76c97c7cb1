package query

import (
	"testing"

	"github.com/vegasq/flatcat/flatten"
)

func TestCompare_Numbers(t *testing.T) {
	tests := []struct {
		name     string
		left     string
		operator TokenType
		right    float64
		want     bool
	}{
		{"int equal", "30", TokenEqual, 30, true},
		{"int not equal", "30", TokenNotEqual, 25, true},
		{"int less", "25", TokenLess, 30, true},
		{"int greater", "35", TokenGreater, 30, true},
		{"int less equal same", "30", TokenLessEqual, 30, true},
		{"int greater equal greater", "35", TokenGreaterEqual, 30, true},

		// Literal forms compare by value
		{"decimal literal", "1.50", TokenEqual, 1.5, true},
		{"exponent literal", "1e3", TokenEqual, 1000, true},

		// Negative results
		{"int not equal same", "30", TokenNotEqual, 30, false},
		{"int less wrong", "35", TokenLess, 30, false},
		{"int greater wrong", "25", TokenGreater, 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compare(flatten.NumberValue(tt.left), tt.operator, tt.right)
			if got != tt.want {
				t.Errorf("compare(%v, %v, %v) = %v, want %v", tt.left, tt.operator, tt.right, got, tt.want)
			}
		})
	}
}

func TestCompare_Strings(t *testing.T) {
	tests := []struct {
		name     string
		left     string
		operator TokenType
		right    string
		want     bool
	}{
		{"equal", "alice", TokenEqual, "alice", true},
		{"case sensitive", "Alice", TokenEqual, "alice", false},
		{"not equal", "alice", TokenNotEqual, "bob", true},
		{"less", "alice", TokenLess, "bob", true},
		{"greater equal", "bob", TokenGreaterEqual, "bob", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compare(flatten.StringValue(tt.left), tt.operator, tt.right)
			if got != tt.want {
				t.Errorf("compare(%q, %v, %q) = %v, want %v", tt.left, tt.operator, tt.right, got, tt.want)
			}
		})
	}
}

func TestCompare_MixedKinds(t *testing.T) {
	tests := []struct {
		name     string
		left     flatten.Value
		operator TokenType
		right    interface{}
		want     bool
	}{
		{"string vs number equal", flatten.StringValue("30"), TokenEqual, float64(30), true},
		{"string vs number not equal", flatten.StringValue("30"), TokenNotEqual, float64(30), false},
		{"string vs number ordered as text", flatten.StringValue("alice"), TokenGreater, float64(5), true},
		{"digits vs number ordered as text", flatten.StringValue("10"), TokenLess, float64(9), true},
		{"number vs string ordered", flatten.NumberValue("30"), TokenLess, "40", true},
		{"bool vs string", flatten.BoolValue(true), TokenEqual, "true", true},
		{"string vs bool", flatten.StringValue("yes"), TokenEqual, true, false},
		{"bool equal", flatten.BoolValue(true), TokenEqual, true, true},
		{"bool ordered", flatten.BoolValue(true), TokenGreater, false, false},
		{"null equals null", flatten.NullValue(), TokenEqual, nil, true},
		{"null not equal null", flatten.NullValue(), TokenNotEqual, nil, false},
		{"value not null", flatten.StringValue(""), TokenNotEqual, nil, true},
		{"value equals null", flatten.StringValue(""), TokenEqual, nil, false},
		{"null vs number", flatten.NullValue(), TokenLess, float64(1), false},
		{"empty object renders empty", flatten.ObjectValue(nil), TokenEqual, "", true},
		{"empty array vs text", flatten.ArrayValue(), TokenGreater, "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compare(tt.left, tt.operator, tt.right); got != tt.want {
				t.Errorf("compare() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	records := []flatten.Record{
		{"name": flatten.StringValue("alice"), "age": flatten.NumberValue("30"), "tags.0": flatten.StringValue("admin")},
		{"name": flatten.StringValue("bob"), "age": flatten.NumberValue("25")},
		{"name": flatten.StringValue("carol"), "age": flatten.NumberValue("41"), "tags.0": flatten.StringValue("dev")},
		{"name": flatten.StringValue("dave")},
	}

	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{"numeric", "age >= 30", []string{"alice", "carol"}},
		{"missing path only matches !=", "tags.0 != 'admin'", []string{"bob", "carol", "dave"}},
		{"missing path never equal", "tags.0 = 'dev'", []string{"carol"}},
		{"or with and", "name = 'dave' OR age < 30 AND age > 20", []string{"bob", "dave"}},
		{"grouping", "(name = 'dave' OR age < 30) AND age > 20", []string{"bob"}},
		{"nothing matches", "age > 100", []string{}},
		{"mixed kinds compare as text", "name > 5", []string{"alice", "bob", "carol", "dave"}},
		{"number leaf against string", "age = '25'", []string{"bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.filter)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			got := Apply(records, expr)
			names := make([]string, 0, len(got))
			for _, rec := range got {
				names = append(names, rec["name"].Text)
			}

			if len(names) != len(tt.want) {
				t.Fatalf("Apply() kept %v, want %v", names, tt.want)
			}
			for i := range names {
				if names[i] != tt.want[i] {
					t.Errorf("Apply() kept %v, want %v", names, tt.want)
					break
				}
			}
		})
	}
}

func TestApply_ArrayRecordPaths(t *testing.T) {
	records := []flatten.Record{
		{"0": flatten.NumberValue("10"), "1.k": flatten.StringValue("v")},
		{"0": flatten.NumberValue("20"), "1.k": flatten.StringValue("w")},
	}

	tests := []struct {
		filter string
		want   int
	}{
		{"0 > 15", 1},
		{"1.k = 'v'", 1},
		{"0 >= 10 AND 1.k != 'x'", 2},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			expr, err := Parse(tt.filter)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := Apply(records, expr); len(got) != tt.want {
				t.Errorf("Apply() kept %d records, want %d", len(got), tt.want)
			}
		})
	}
}

func TestApply_NilFilter(t *testing.T) {
	records := []flatten.Record{{"a": flatten.NumberValue("1")}}
	if got := Apply(records, nil); len(got) != 1 {
		t.Errorf("Apply(nil) should keep every record, got %d", len(got))
	}
}
