package render

// ColumnCount returns the width of the widest row, counting the header row.
func ColumnCount(headers []string, rows [][]string) int {
	count := len(headers)
	for _, row := range rows {
		if len(row) > count {
			count = len(row)
		}
	}
	return count
}

// PadRows returns a copy of rows where every row has exactly columns cells.
// Missing cells are filled with empty strings; the input is not modified.
func PadRows(rows [][]string, columns int) [][]string {
	padded := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, columns)
		copy(cells, row)
		padded[i] = cells
	}
	return padded
}

// GridWidths splits total twips evenly across columns.
// Any remainder goes to the leading columns so the widths always sum to total.
func GridWidths(total, columns int) []int {
	if columns <= 0 {
		return nil
	}
	widths := make([]int, columns)
	base := total / columns
	extra := total % columns
	for i := range widths {
		widths[i] = base
		if i < extra {
			widths[i]++
		}
	}
	return widths
}
