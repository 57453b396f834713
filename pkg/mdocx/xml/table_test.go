package xml

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestTableMarshal(t *testing.T) {
	table := Table{
		Properties: &TableProperties{
			Width: PercentWidth(100),
			Borders: &TableBorders{
				Top:              &Border{Size: 4, Color: "E2E8F0"},
				InsideHorizontal: &Border{Size: 2, Color: "F1F5F9"},
			},
		},
		Grid: &TableGrid{Columns: []GridColumn{{Width: 4513}, {Width: 4513}}},
		Rows: []TableRow{
			{
				Properties: &TableRowProperties{Header: true},
				Cells: []TableCell{
					{
						Properties: &TableCellProperties{
							Shading: SolidFill("F8FAFC"),
							Margins: &CellMargins{Top: 170, Left: 226, Bottom: 170, Right: 226},
						},
						Paragraphs: []Paragraph{*NewTextParagraph("Name")},
					},
					{},
				},
			},
		},
	}

	data, err := xml.Marshal(table)
	if err != nil {
		t.Fatalf("Failed to marshal table: %v", err)
	}
	result := string(data)

	for _, want := range []string{
		`<w:tbl><w:tblPr><w:tblW w:w="5000" w:type="pct">`,
		`<w:insideH w:val="single" w:sz="2" w:space="0" w:color="F1F5F9">`,
		`<w:tblGrid><w:gridCol w:w="4513"></w:gridCol><w:gridCol w:w="4513"></w:gridCol></w:tblGrid>`,
		`<w:trPr><w:tblHeader></w:tblHeader></w:trPr>`,
		`<w:tcMar><w:top w:w="170" w:type="dxa"></w:top>`,
		`<w:t>Name</w:t>`,
		`<w:tc><w:p></w:p></w:tc>`,
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in %s", want, result)
		}
	}
}

func TestTableCellGetText(t *testing.T) {
	cell := TableCell{Paragraphs: []Paragraph{*NewTextParagraph("a"), *NewTextParagraph("b")}}
	if got := cell.GetText(); got != "a\nb" {
		t.Errorf("GetText() = %q", got)
	}
}
