package output

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"numbeo/internal/models"
)

func TestRenderTable_NoRows(t *testing.T) {
	got := RenderTable([]string{"A", "B"}, nil)
	want := "A | B\n--+--"

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	// Rule segments match the header widths
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	segments := strings.Split(lines[1], "-+-")
	if len(segments) != 2 || segments[0] != "-" || segments[1] != "-" {
		t.Errorf("unexpected rule segments: %q", segments)
	}
}

func TestRenderTable_SingleRow(t *testing.T) {
	row := models.Row{
		DisplayOrder: 1,
		Category:     "Markets",
		Name:         "Milk",
		Average:      "3.50 USD",
		Lowest:       "3.00 USD",
		Highest:      "4.00 USD",
		DataPoints:   models.IntOf(10),
	}

	got := strings.Split(RenderTable(Headers, [][]any{row.Cells()}), "\n")
	want := []string{
		"Order | Category | Item | Average  | Lowest   | Highest  | Data Points",
		"------+----------+------+----------+----------+----------+------------",
		"1     | Markets  | Milk | 3.50 USD | 3.00 USD | 4.00 USD | 10         ",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTable_NonStringCells(t *testing.T) {
	rows := [][]any{
		{int64(10000), "-", models.OptionalInt{}},
		{3, nil, 2.5},
	}

	got := strings.Split(RenderTable([]string{"Order", "Category", "Points"}, rows), "\n")
	want := []string{
		"Order | Category | Points",
		"------+----------+-------",
		"10000 | -        | -     ",
		"3     | <nil>    | 2.5   ",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTable_ColumnWidths(t *testing.T) {
	rows := [][]any{
		{"a-very-long-cell", "x"},
		{"short", "yy"},
	}

	lines := strings.Split(RenderTable([]string{"H1", "H2"}, rows), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}

	for i, line := range lines {
		if len(line) != len(lines[0]) {
			t.Errorf("line %d has width %d, expected %d: %q", i, len(line), len(lines[0]), line)
		}
	}

	if !strings.HasPrefix(lines[0], "H1"+strings.Repeat(" ", len("a-very-long-cell")-2)+" | ") {
		t.Errorf("header not padded to widest cell: %q", lines[0])
	}
}

func TestRenderTable_NonASCII(t *testing.T) {
	rows := [][]any{
		{"日本", 1},
		{"Café", 22},
		{"Zürich", 3},
	}

	got := strings.Split(RenderTable([]string{"City", "N"}, rows), "\n")
	want := []string{
		"City   | N ",
		"-------+---",
		"日本     | 1 ",
		"Café   | 22",
		"Zürich | 3 ",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}
