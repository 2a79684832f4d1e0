// Package mesh provides a per-vertex attribute model for triangle meshes:
// an array-of-structures Vertex form, a structure-of-arrays Mesh form,
// conversions between the two, and attribute-aware interpolation.
package mesh

import (
	"math/bits"
	"strings"
)

// Attributes is a bitmask of the recognized per-vertex attribute channels.
type Attributes uint16

const (
	// Position is the vertex position channel.
	Position Attributes = 1 << iota
	// Texture0 is the first 2-component UV channel.
	Texture0
	// Color is the RGBA vertex color channel.
	Color
	// Normal is the surface normal channel.
	Normal
	// Tangent is the 4-component tangent channel (direction + handedness).
	Tangent
	// Texture1 is the second 2-component UV channel.
	Texture1
	// Texture2 is the first 4-component UV channel.
	Texture2
	// Texture3 is the second 4-component UV channel.
	Texture3
)

// AttributesAll selects every recognized channel.
const AttributesAll = Position | Texture0 | Color | Normal | Tangent | Texture1 | Texture2 | Texture3

// AttributesNone selects no channels.
const AttributesNone Attributes = 0

var attributeNames = []struct {
	attr Attributes
	name string
}{
	{Position, "position"},
	{Color, "color"},
	{Normal, "normal"},
	{Tangent, "tangent"},
	{Texture0, "uv0"},
	{Texture1, "uv2"},
	{Texture2, "uv3"},
	{Texture3, "uv4"},
}

// Count returns the number of channels selected by the mask.
func (a Attributes) Count() int {
	return bits.OnesCount16(uint16(a))
}

// Has reports whether every channel in the query mask is selected.
func (a Attributes) Has(query Attributes) bool {
	return a&query == query
}

// String returns a comma-separated list of the selected channel names.
func (a Attributes) String() string {
	if a == 0 {
		return "none"
	}
	var names []string
	for _, entry := range attributeNames {
		if a&entry.attr != 0 {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, ",")
}
