package render

import (
	"reflect"
	"testing"
)

func TestColumnCount(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		rows     [][]string
		expected int
	}{
		{"empty", nil, nil, 0},
		{"headers only", []string{"a", "b"}, nil, 2},
		{"row wider than headers", []string{"a"}, [][]string{{"1", "2", "3"}}, 3},
		{"ragged rows", nil, [][]string{{"1"}, {"1", "2"}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColumnCount(tt.headers, tt.rows); got != tt.expected {
				t.Errorf("ColumnCount() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestPadRows(t *testing.T) {
	rows := [][]string{{"a"}, {"b", "c", "d"}, {}}
	padded := PadRows(rows, 3)

	expected := [][]string{{"a", "", ""}, {"b", "c", "d"}, {"", "", ""}}
	if !reflect.DeepEqual(padded, expected) {
		t.Errorf("PadRows() = %q, want %q", padded, expected)
	}
	if len(rows[0]) != 1 {
		t.Errorf("PadRows modified its input: %q", rows[0])
	}
}

func TestGridWidths(t *testing.T) {
	tests := []struct {
		total    int
		columns  int
		expected []int
	}{
		{9026, 2, []int{4513, 4513}},
		{9026, 3, []int{3009, 3009, 3008}},
		{100, 0, nil},
	}

	for _, tt := range tests {
		got := GridWidths(tt.total, tt.columns)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("GridWidths(%d, %d) = %v, want %v", tt.total, tt.columns, got, tt.expected)
		}
	}
}
