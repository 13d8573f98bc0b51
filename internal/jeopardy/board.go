package jeopardy

import "fmt"

const (
	DefaultRows = 5
	DefaultCols = 6
)

// Board is a rows × cols grid of cells with one category per column.
// Cells are stored row-major.
type Board struct {
	rows       int
	cols       int
	cells      [][]Cell
	categories []string
}

// BoardView is a deep copy of a Board, safe to hand to a presentation layer.
type BoardView struct {
	Rows       int          `json:"rows"`
	Cols       int          `json:"cols"`
	Categories []string     `json:"categories"`
	Cells      [][]CellView `json:"cells"`
}

// NewBoard builds a board filled with generated default content.
// Non-positive dimensions fall back to the default size.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		rows, cols = DefaultRows, DefaultCols
	}

	b := &Board{rows: rows, cols: cols}
	b.categories = make([]string, cols)
	for i := range b.categories {
		b.categories[i] = defaultCategory(i)
	}

	b.cells = make([][]Cell, rows)
	for r := range b.cells {
		b.cells[r] = make([]Cell, cols)
		p := CellPoints(r)
		for c := range b.cells[r] {
			cell := &b.cells[r][c]
			cell.SetPoints(p)
			cell.SetQuestion(fmt.Sprintf("Default question for %d points", p))
			cell.SetAnswer(fmt.Sprintf("Default answer for %d points", p))
		}
	}
	return b
}

// CellPoints is the point value of every cell in row.
func CellPoints(row int) int {
	return (row + 1) * 100
}

func defaultCategory(col int) string {
	return fmt.Sprintf("Category %d", col+1)
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// Resize reallocates the grid. Cells and categories that survive keep their
// text; new ones get generated defaults. Points are recomputed for every row.
func (b *Board) Resize(rows, cols int) bool {
	if rows <= 0 || cols <= 0 {
		return false
	}

	categories := make([]string, cols)
	copy(categories, b.categories)
	for i := range categories {
		if categories[i] == "" {
			categories[i] = defaultCategory(i)
		}
	}

	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		if r < b.rows {
			copy(cells[r], b.cells[r])
		}
		p := CellPoints(r)
		for c := range cells[r] {
			cell := &cells[r][c]
			cell.SetPoints(p)
			if cell.Question() == "" {
				cell.SetQuestion(fmt.Sprintf("Question for %d points", p))
			}
			if cell.Answer() == "" {
				cell.SetAnswer(fmt.Sprintf("Answer for %d points", p))
			}
		}
	}

	b.rows, b.cols = rows, cols
	b.cells = cells
	b.categories = categories
	return true
}

func (b *Board) IsValidPosition(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) SetCategory(col int, name string) bool {
	if col < 0 || col >= b.cols {
		return false
	}
	b.categories[col] = name
	return true
}

func (b *Board) SetCellContent(row, col int, question, answer string) bool {
	if !b.IsValidPosition(row, col) {
		return false
	}
	b.cells[row][col].SetQuestion(question)
	b.cells[row][col].SetAnswer(answer)
	return true
}

// Category returns the name of column col, or "" when col is out of range.
func (b *Board) Category(col int) string {
	if col < 0 || col >= b.cols {
		return ""
	}
	return b.categories[col]
}

func (b *Board) Categories() []string {
	out := make([]string, len(b.categories))
	copy(out, b.categories)
	return out
}

// Cell returns a view of the cell at (row, col).
func (b *Board) Cell(row, col int) (CellView, bool) {
	c := b.cell(row, col)
	if c == nil {
		return CellView{}, false
	}
	return c.View(), true
}

// cell returns the mutable cell or nil when out of range.
func (b *Board) cell(row, col int) *Cell {
	if !b.IsValidPosition(row, col) {
		return nil
	}
	return &b.cells[row][col]
}

func (b *Board) RevealCell(row, col int) bool {
	c := b.cell(row, col)
	if c == nil {
		return false
	}
	c.Reveal()
	return true
}

// Reset clears the session state of every cell.
func (b *Board) Reset() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c].Reset()
		}
	}
}

func (b *Board) View() BoardView {
	v := BoardView{
		Rows:       b.rows,
		Cols:       b.cols,
		Categories: b.Categories(),
		Cells:      make([][]CellView, b.rows),
	}
	for r := range b.cells {
		v.Cells[r] = make([]CellView, b.cols)
		for c := range b.cells[r] {
			v.Cells[r][c] = b.cells[r][c].View()
		}
	}
	return v
}
