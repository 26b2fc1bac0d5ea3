package sand

import (
	"image/color"
	"strings"
)

// Material identifies what occupies a cell.
type Material uint8

const (
	Empty Material = iota
	Sand
	Water
	Dirt

	materialCount
)

// Kind selects which transition rule applies to a material.
type Kind uint8

const (
	// KindStatic never moves.
	KindStatic Kind = iota
	// KindGranular falls and slides diagonally.
	KindGranular
	// KindLiquid falls, slides diagonally and spreads sideways.
	KindLiquid
)

// Materials lists every material in enum order.
func Materials() []Material {
	return []Material{Empty, Sand, Water, Dirt}
}

// Valid reports whether m is one of the known materials.
func (m Material) Valid() bool { return m < materialCount }

// String returns the lower-case material name.
func (m Material) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return defaultProps[m].name
}

// ParseMaterial resolves a material by name or by its digit key ("0".."3").
func ParseMaterial(s string) (Material, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, p := range defaultProps {
		if p.name == s || (len(s) == 1 && s[0] == '0'+byte(m)) {
			return Material(m), true
		}
	}
	return Empty, false
}

type props struct {
	name    string
	density int
	kind    Kind
	color   color.RGBA
}

// Densities leave gaps so materials can be slotted in without renumbering.
var defaultProps = [materialCount]props{
	Empty: {name: "empty", density: -1, kind: KindStatic, color: color.RGBA{R: 0, G: 0, B: 0, A: 255}},
	Sand:  {name: "sand", density: 99, kind: KindGranular, color: color.RGBA{R: 255, G: 255, B: 0, A: 255}},
	Water: {name: "water", density: 1, kind: KindLiquid, color: color.RGBA{R: 0, G: 0, B: 255, A: 255}},
	Dirt:  {name: "dirt", density: 999, kind: KindStatic, color: color.RGBA{R: 139, G: 69, B: 19, A: 255}},
}

// Registry maps materials to their physical and display properties. It is
// immutable once built.
type Registry struct {
	props [materialCount]props
}

// RegistryOption customises a Registry at construction time.
type RegistryOption func(*Registry)

// WithColor overrides the display color of m.
func WithColor(m Material, c color.RGBA) RegistryOption {
	return func(r *Registry) {
		if m.Valid() {
			r.props[m].color = c
		}
	}
}

// NewRegistry returns the standard material table.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{props: defaultProps}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) lookup(m Material) props {
	if !m.Valid() {
		return r.props[Empty]
	}
	return r.props[m]
}

// Density returns the ordering scalar of m.
func (r *Registry) Density(m Material) int { return r.lookup(m).density }

// Kind returns the transition rule class of m.
func (r *Registry) Kind(m Material) Kind { return r.lookup(m).kind }

// Color returns the display color of m.
func (r *Registry) Color(m Material) color.RGBA { return r.lookup(m).color }

// Palette returns display colors indexed by material value.
func (r *Registry) Palette() []color.RGBA {
	palette := make([]color.RGBA, materialCount)
	for i := range palette {
		palette[i] = r.props[i].color
	}
	return palette
}
