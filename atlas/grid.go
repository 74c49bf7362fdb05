package atlas

import "math"

// Grid computes the cell layout for packing a fixed number of square tiles
// into a square atlas. The grid side is ceil(sqrt(tileCount)); cells are
// filled row-major, so a tile's placement depends only on its index and the
// tile count, never on pixel content.
type Grid struct {
	side    int // cells per row/column
	cell    int // cell size in pixels (atlasSize / side, integer division)
	content int // content size per cell (cell - 2*padding)
	padding int
}

// NewGrid builds the layout for tileCount tiles in an atlasSize×atlasSize
// image. tileCount must be positive (zero tiles need no grid).
// Returns an OverflowError when the computed content size is not positive,
// i.e. the atlas is too small or the padding too large for the tile count.
func NewGrid(tileCount, atlasSize, padding int) (*Grid, error) {
	side := int(math.Ceil(math.Sqrt(float64(tileCount))))
	cell := atlasSize / side
	content := cell - 2*padding
	if content <= 0 {
		return nil, &OverflowError{
			AtlasSize: atlasSize,
			Padding:   padding,
			TileCount: tileCount,
			Content:   content,
		}
	}
	return &Grid{side: side, cell: cell, content: content, padding: padding}, nil
}

// Side returns the number of cells per row.
func (g *Grid) Side() int { return g.side }

// Cell returns the cell size in pixels.
func (g *Grid) Cell() int { return g.cell }

// Content returns the per-cell content size in pixels.
func (g *Grid) Content() int { return g.content }

// Placement returns the content rectangle of the i-th tile (row-major).
func (g *Grid) Placement(i int) Placement {
	col := i % g.side
	row := i / g.side
	return Placement{
		X:      col*g.cell + g.padding,
		Y:      row*g.cell + g.padding,
		Width:  g.content,
		Height: g.content,
	}
}
