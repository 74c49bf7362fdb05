// Package atlas packs fixed-size SDF tiles into a single square sprite-sheet
// image using deterministic grid placement.
package atlas

import (
	"fmt"
	"image"
	"sync"

	xdraw "golang.org/x/image/draw"
)

// Format selects the atlas pixel format.
type Format int

const (
	// FormatSingleChannel stores one distance channel (grayscale atlas).
	FormatSingleChannel Format = iota

	// FormatMultiChannel stores three distance channels (RGB atlas).
	FormatMultiChannel
)

// String returns the registry wire name of the format.
func (f Format) String() string {
	if f == FormatMultiChannel {
		return "multi_channel"
	}
	return "single_channel"
}

// Tile is one square image to be packed, bound to an opaque identifier.
// The packer never mutates the identifier.
type Tile struct {
	ID    string
	Image image.Image
}

// Placement is a tile's content rectangle in atlas pixel coordinates.
type Placement struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Result is a packed atlas image together with the id → placement map.
type Result struct {
	Image      image.Image
	Placements map[string]Placement
}

// OverflowError reports that the per-cell content size came out non-positive:
// the atlas is too small, or the padding too large, for the tile count.
type OverflowError struct {
	AtlasSize int
	Padding   int
	TileCount int
	Content   int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("atlas: %d tiles with padding %d do not fit in a %dx%d atlas (content size %d)",
		e.TileCount, e.Padding, e.AtlasSize, e.AtlasSize, e.Content)
}

// InputError reports an invalid packing parameter.
type InputError struct {
	Param  string
	Reason string
}

func (e *InputError) Error() string {
	return "atlas: invalid " + e.Param + ": " + e.Reason
}

// Pack lays the tiles out in a row-major grid inside an atlasSize×atlasSize
// image. Each tile is resampled (Catmull-Rom) to the grid's content size and
// copied into its cell with the configured padding on every side.
//
// Placement is a deterministic function of tile order and count only: the
// same ordered id list always yields an identical placement map. Unused
// remainder pixels (when atlasSize is not divisible by the grid side) stay
// at the zero background.
//
// Zero tiles is not an error: the result is a background-only atlas and an
// empty placement map.
func Pack(tiles []Tile, atlasSize, padding int, format Format) (*Result, error) {
	if atlasSize <= 0 {
		return nil, &InputError{Param: "atlasSize", Reason: "must be positive"}
	}
	if padding < 0 {
		return nil, &InputError{Param: "padding", Reason: "must be non-negative"}
	}

	dst := newAtlasImage(atlasSize, format)
	result := &Result{
		Image:      dst,
		Placements: make(map[string]Placement, len(tiles)),
	}
	if len(tiles) == 0 {
		return result, nil
	}

	grid, err := NewGrid(len(tiles), atlasSize, padding)
	if err != nil {
		return nil, err
	}

	// Placements first: they are pure index arithmetic and must not depend
	// on the pixel copies below.
	for i, tile := range tiles {
		result.Placements[tile.ID] = grid.Placement(i)
	}

	// Each tile writes a disjoint rectangle, so the copies can run
	// concurrently without synchronizing on the shared atlas buffer.
	var wg sync.WaitGroup
	for i, tile := range tiles {
		p := grid.Placement(i)
		wg.Add(1)
		go func(tile Tile, p Placement) {
			defer wg.Done()
			rect := image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
			xdraw.CatmullRom.Scale(dst, rect, tile.Image, tile.Image.Bounds(), xdraw.Src, nil)
		}(tile, p)
	}
	wg.Wait()

	return result, nil
}

// newAtlasImage allocates the zero-background atlas buffer for the format.
func newAtlasImage(atlasSize int, format Format) xdraw.Image {
	r := image.Rect(0, 0, atlasSize, atlasSize)
	if format == FormatMultiChannel {
		return image.NewNRGBA(r)
	}
	return image.NewGray(r)
}
