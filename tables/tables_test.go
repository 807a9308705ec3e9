package tables

import (
	"strings"
	"testing"

	"github.com/tsawler/notemark/model"
)

// ============================================================================
// Parse Tests
// ============================================================================

func TestParseSimpleTable(t *testing.T) {
	table := Parse("*Numbers\n*A*B*\n1*2\n3*4")
	if table == nil {
		t.Fatal("Parse() returned nil")
	}

	if table.Caption != "Numbers" {
		t.Errorf("Caption = %q, want Numbers", table.Caption)
	}
	if table.ColCount() != 2 {
		t.Errorf("ColCount() = %d, want 2", table.ColCount())
	}
	if got := strings.Join(table.Headers, ","); got != "A,B" {
		t.Errorf("Headers = %q, want A,B", got)
	}
	if table.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", table.RowCount())
	}
	for i, row := range table.Rows {
		for j, cell := range row {
			if cell == nil || cell.RowSpan != 1 {
				t.Errorf("cell (%d,%d) = %+v, want rowspan 1", i, j, cell)
			}
		}
	}
}

func TestParseBareConnectorMergesAllColumns(t *testing.T) {
	table := Parse("*A*B*\n1*2\n*\n3*4")
	if table.RowCount() != 1 {
		t.Fatalf("RowCount() = %d, want 1", table.RowCount())
	}

	want := []string{"1<br>3", "2<br>4"}
	for j, cell := range table.Rows[0] {
		if cell.Content != want[j] || cell.RowSpan != 2 {
			t.Errorf("cell %d = %+v, want %q rowspan 2", j, cell, want[j])
		}
	}
}

func TestParseConnectorSelectsColumns(t *testing.T) {
	table := Parse("*A*B*\n1*2\n* 1\n3*4")
	if table.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", table.RowCount())
	}

	anchor := table.Rows[0]
	if anchor[0].Content != "1<br>3" || anchor[0].RowSpan != 2 {
		t.Errorf("anchor col 1 = %+v, want merged rowspan 2", anchor[0])
	}
	if anchor[1].Content != "2" || anchor[1].RowSpan != 1 {
		t.Errorf("anchor col 2 = %+v, want untouched", anchor[1])
	}

	partial := table.Rows[1]
	if partial[0] != nil {
		t.Errorf("partial col 1 = %+v, want nil (covered)", partial[0])
	}
	if partial[1] == nil || partial[1].Content != "4" {
		t.Errorf("partial col 2 = %+v, want 4", partial[1])
	}
}

func TestParseRepeatedConnectorsKeepAnchor(t *testing.T) {
	table := Parse("*A*B*C*\n1*2*3\n* 1\n4*5*6\n* 1\n7*8*9")
	if table.RowCount() != 3 {
		t.Fatalf("RowCount() = %d, want 3", table.RowCount())
	}
	if c := table.Rows[0][0]; c.Content != "1<br>4<br>7" || c.RowSpan != 3 {
		t.Errorf("anchor cell = %+v, want three merged values", c)
	}
	for i := 1; i < 3; i++ {
		if table.Rows[i][0] != nil {
			t.Errorf("row %d col 1 should be covered", i)
		}
	}
}

func TestParseConnectorWithoutAnchorIsDropped(t *testing.T) {
	table := Parse("*Cap\n*A*B*\n*\n1*2")
	if table.RowCount() != 1 {
		t.Fatalf("RowCount() = %d, want 1", table.RowCount())
	}
	if table.Rows[0][0].RowSpan != 1 || table.Rows[0][0].Content != "1" {
		t.Errorf("row = %+v, want plain anchor row", table.Rows[0])
	}
}

func TestParseConnectorIgnoresOutOfRangeColumns(t *testing.T) {
	table := Parse("*A*B*\n1*2\n* 9\n3*4")
	if table.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", table.RowCount())
	}
	if table.Rows[0][0].RowSpan != 1 {
		t.Error("out-of-range column should not merge anything")
	}
	if table.Rows[1][0] == nil || table.Rows[1][0].Content != "3" {
		t.Errorf("partial row = %+v, want 3 and 4", table.Rows[1])
	}
}

func TestParseConnectorWithoutDigitsConnectsAll(t *testing.T) {
	table := Parse("*A*B*\n1*2\n* merge\n3*4")
	if table.RowCount() != 1 || table.Rows[0][1].Content != "2<br>4" {
		t.Errorf("rows = %+v, want single merged row", table.Rows)
	}
}

func TestParseEmptyConnectedCellDoesNotGrow(t *testing.T) {
	table := Parse("*A*B*\n1*2\n*\n*4")
	// "*4" starts with the marker and is itself a connector line.
	if table.RowCount() != 1 || table.Rows[0][0].RowSpan != 1 {
		t.Errorf("rows = %+v", table.Rows)
	}

	table = Parse("*A*B*\n1*2\n*\n3*")
	if c := table.Rows[0][0]; c.Content != "1<br>3" || c.RowSpan != 2 {
		t.Errorf("col 1 = %+v, want merged rowspan 2", c)
	}
	if c := table.Rows[0][1]; c.Content != "2" || c.RowSpan != 1 {
		t.Errorf("col 2 = %+v, want untouched", c)
	}
}

func TestParseRaggedRows(t *testing.T) {
	table := Parse("*Cap\n*A*B*C*\n1\n1*2*3*4")
	if table.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", table.RowCount())
	}
	if len(table.Rows[0]) != 3 || table.Rows[0][2].Content != "" {
		t.Errorf("short row = %+v, want padded", table.Rows[0])
	}
	if len(table.Rows[1]) != 3 || table.Rows[1][2].Content != "3" {
		t.Errorf("long row = %+v, want truncated", table.Rows[1])
	}
}

func TestParseWithoutHeader(t *testing.T) {
	table := Parse("a*b*c\nd*e*f")
	if table.HasHeader() {
		t.Error("HasHeader() = true, want false")
	}
	if table.ColCount() != 3 || table.RowCount() != 2 {
		t.Errorf("size = %dx%d, want 2x3", table.RowCount(), table.ColCount())
	}
}

func TestParseCaption(t *testing.T) {
	table := Parse("*Irregular verbs\n*Base*Past*\ngo*went")
	if table.Caption != "Irregular verbs" {
		t.Errorf("Caption = %q", table.Caption)
	}
	if table.ColCount() != 2 || table.RowCount() != 1 {
		t.Errorf("size = %dx%d, want 1x2", table.RowCount(), table.ColCount())
	}
}

func TestParseWrappedFirstLineIsCaption(t *testing.T) {
	table := Parse("*Verbs*\ngo*went*gone\nbe*was*been")
	if table == nil {
		t.Fatal("Parse() returned nil")
	}
	if table.Caption != "Verbs*" {
		t.Errorf("Caption = %q, want %q", table.Caption, "Verbs*")
	}
	if table.HasHeader() {
		t.Errorf("Headers = %q, want none", table.Headers)
	}
	if table.ColCount() != 3 || table.RowCount() != 2 {
		t.Fatalf("size = %dx%d, want 2x3", table.RowCount(), table.ColCount())
	}
	if c := table.Rows[1][2]; c.Content != "been" {
		t.Errorf("cell (1,2) = %q, want been", c.Content)
	}
}

func TestParseUncaptionedRegionHasNoHeader(t *testing.T) {
	table := Parse("*A*B*\n1*2\n3*4")
	if table.Caption != "A*B*" || table.HasHeader() {
		t.Errorf("Caption = %q, Headers = %q, want caption only", table.Caption, table.Headers)
	}
	if table.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", table.RowCount())
	}
	for i, row := range table.Rows {
		for j, cell := range row {
			if cell == nil || cell.RowSpan != 1 {
				t.Errorf("cell (%d,%d) = %+v, want rowspan 1", i, j, cell)
			}
		}
	}
}

func TestParseDegenerate(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"whitespace", "  \n \n"},
		{"caption only", "*Just a caption"},
		{"blank after caption", "*Cap\n\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if table := Parse(tt.body); table != nil {
				t.Errorf("Parse(%q) = %+v, want nil", tt.body, table)
			}
			if got := Generate(tt.body); got != "" {
				t.Errorf("Generate(%q) = %q, want empty", tt.body, got)
			}
		})
	}
}

func TestParseLoneMarkerHeader(t *testing.T) {
	// A lone "*" after the caption wraps itself and yields one empty label.
	table := Parse("*Cap\n*\n1*2")
	if table == nil {
		t.Fatal("Parse() returned nil")
	}
	if table.ColCount() != 1 || table.RowCount() != 1 {
		t.Errorf("size = %dx%d, want 1x1", table.RowCount(), table.ColCount())
	}
	if table.Rows[0][0].Content != "1" {
		t.Errorf("cell = %q, want 1", table.Rows[0][0].Content)
	}
}

// ============================================================================
// Render Tests
// ============================================================================

func TestRenderMergedTable(t *testing.T) {
	got := Generate("*Numbers\n*A*B*\n1*2\n*\n3*4")
	want := `<div class="content-table-wrapper"><table class="content-table">` +
		`<caption class="content-table-caption">Numbers</caption>` +
		`<thead><tr><th>A</th><th>B</th></tr></thead>` +
		`<tbody><tr><td rowspan="2">1<br>3</td><td rowspan="2">2<br>4</td></tr></tbody></table></div>`
	if got != want {
		t.Errorf("Generate() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderPartialRowBelowAnchor(t *testing.T) {
	got := Generate("*Irregular verbs\n*Base*Past*Participle*\ngo*went*gone\nbe*was*been\n* 2\n(pl.)*were*")

	want := `<div class="content-table-wrapper"><table class="content-table">` +
		`<caption class="content-table-caption">Irregular verbs</caption>` +
		`<thead><tr><th>Base</th><th>Past</th><th>Participle</th></tr></thead><tbody>` +
		`<tr><td>go</td><td>went</td><td>gone</td></tr>` +
		`<tr><td>be</td><td rowspan="2">was<br>were</td><td>been</td></tr>` +
		`<tr><td>(pl.)</td><td></td></tr>` +
		`</tbody></table></div>`
	if got != want {
		t.Errorf("Generate() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderOmitsCoveredCells(t *testing.T) {
	got := Generate("*Cap\n1*2\n* 1\n3*4")
	want := `<div class="content-table-wrapper"><table class="content-table">` +
		`<caption class="content-table-caption">Cap</caption>` +
		`<tbody><tr><td rowspan="2">1<br>3</td><td>2</td></tr><tr><td>4</td></tr></tbody></table></div>`
	if got != want {
		t.Errorf("Generate() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderNil(t *testing.T) {
	if Render(nil) != "" || Render(model.NewTable(0)) != "" {
		t.Error("Render() of empty table should be empty")
	}
}

func TestIsFragment(t *testing.T) {
	if !IsFragment("  " + Generate("1*2")) {
		t.Error("IsFragment() = false for rendered table")
	}
	if IsFragment("<div>plain</div>") {
		t.Error("IsFragment() = true for plain div")
	}
}

// ============================================================================
// Substitution Tests
// ============================================================================

func TestFindRegions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		bodies  []string
	}{
		{"single", "a\n<1*2>\nb", []string{"1*2"}},
		{"two", "<1*2> and <\n3*4\n>", []string{"1*2", "\n3*4\n"}},
		{"inline tags skipped", "<b>bold</b> <i>x</i>", nil},
		{"tag inside region", "<\n<b>x</b>*2\n>", []string{"\n<b>x</b>*2\n"}},
		{"unterminated", "text <1*2", nil},
		{"comment like", "<!-- c -->", nil},
		{"letter first", "<go*went*gone\nbe*was*been>", []string{"go*went*gone\nbe*was*been"}},
		{"letter first single line", "x <go*went> y", []string{"go*went"}},
		{"letter first multiline", "<go\nwent>", []string{"go\nwent"}},
		{"styled tag", `<span style="color:red">Ann</span>`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := FindRegions(tt.content)
			if len(regions) != len(tt.bodies) {
				t.Fatalf("FindRegions() found %d regions, want %d", len(regions), len(tt.bodies))
			}
			for i, r := range regions {
				if got := r.Body(tt.content); got != tt.bodies[i] {
					t.Errorf("region %d body = %q, want %q", i, got, tt.bodies[i])
				}
			}
		})
	}
}

func TestSubstituteLetterFirstTable(t *testing.T) {
	out := Substitute("<go*went*gone\nbe*was*been>")
	want := `<div class="content-table-wrapper"><table class="content-table"><tbody>` +
		`<tr><td>go</td><td>went</td><td>gone</td></tr>` +
		`<tr><td>be</td><td>was</td><td>been</td></tr></tbody></table></div>`
	if out != want {
		t.Errorf("Substitute() =\n%s\nwant\n%s", out, want)
	}
}

func TestSubstituteIsolatesFragments(t *testing.T) {
	out := Substitute("before <1*2> after")
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("Substitute() produced %d lines, want 3: %q", len(lines), out)
	}
	if lines[0] != "before " || !IsFragment(lines[1]) || lines[2] != " after" {
		t.Errorf("lines = %q", lines)
	}
}

func TestSubstituteKeepsLineBoundaries(t *testing.T) {
	out := Substitute("intro\n<\n*Cap\n*A*B*\n1*2\n>\noutro")
	lines := strings.Split(out, "\n")
	if len(lines) != 3 || !IsFragment(lines[1]) {
		t.Errorf("lines = %q, want intro/fragment/outro", lines)
	}
}

func TestSubstituteDropsEmptyRegions(t *testing.T) {
	if got := Substitute("a <  > b"); got != "a  b" {
		t.Errorf("Substitute() = %q, want %q", got, "a  b")
	}
}

func TestSubstituteLeavesMarkupAlone(t *testing.T) {
	in := "<b>bold</b> text"
	if got := Substitute(in); got != in {
		t.Errorf("Substitute() = %q, want unchanged", got)
	}
}
