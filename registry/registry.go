// Package registry assembles and serializes the atlas registry: the
// machine-readable document mapping characters and shapes to their atlas
// rectangles and text-layout metrics.
package registry

import (
	"encoding/json"
	"io"
)

// Metadata describes the atlas the registry refers to. Created is an
// RFC3339 UTC timestamp recorded purely for provenance; it carries no
// behavioral meaning.
type Metadata struct {
	AtlasWidth  int     `json:"atlas_width"`
	AtlasHeight int     `json:"atlas_height"`
	SDFRange    float64 `json:"sdf_range"`
	Resolution  int     `json:"resolution"`
	Padding     int     `json:"padding"`
	Format      string  `json:"format"`
	Created     string  `json:"created"`
}

// CharacterInfo is a character's atlas rectangle plus layout metrics.
// Advance and bearings are in the same pixel units as the SDF resolution.
type CharacterInfo struct {
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Advance  float64 `json:"advance"`
	BearingX float64 `json:"bearing_x"`
	BearingY float64 `json:"bearing_y"`
}

// ShapeInfo is a shape's atlas rectangle. Shapes carry no text metrics.
type ShapeInfo struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Registry is the final, immutable output document. Characters are keyed by
// the character itself, shapes by name. encoding/json emits map keys in
// sorted order, so serialization is deterministic.
type Registry struct {
	Metadata   Metadata                 `json:"metadata"`
	Characters map[string]CharacterInfo `json:"characters"`
	Shapes     map[string]ShapeInfo     `json:"shapes"`
}

// Encode writes the registry as indented JSON.
func (r *Registry) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Decode parses a registry document previously written by Encode.
func Decode(r io.Reader) (*Registry, error) {
	var reg Registry
	if err := json.NewDecoder(r).Decode(&reg); err != nil {
		return nil, err
	}
	return &reg, nil
}
