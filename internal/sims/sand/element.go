package sand

import "strings"

// ElementType is the closed set of behaviours a cell can have.
type ElementType uint8

const (
	TypeImmovableSolid ElementType = iota
	TypeMoveableSolid
	TypeLiquid
	TypeGas
	TypePixelGenerator
	TypeNothing
	TypeMagic
	TypeFire
	TypeMaze

	numElementTypes
)

var typeNames = [numElementTypes]string{
	TypeImmovableSolid: "ImmovableSolid",
	TypeMoveableSolid:  "MoveableSolid",
	TypeLiquid:         "Liquid",
	TypeGas:            "Gas",
	TypePixelGenerator: "PixelGenerator",
	TypeNothing:        "Nothing",
	TypeMagic:          "Magic",
	TypeFire:           "Fire",
	TypeMaze:           "Maze",
}

func (t ElementType) String() string {
	if t >= numElementTypes {
		return "Unknown"
	}
	return typeNames[t]
}

// NumElementTypes is the size of the closed ElementType set.
const NumElementTypes = int(numElementTypes)

// Color holds RGB channels in the 0..255 range.
type Color struct {
	R, G, B float32
}

// Element is the value stored in every cell. Elements are plain comparable
// data and are copied into cells, never shared by reference.
type Element struct {
	Type  ElementType
	Color Color
	Name  string
}

// Is reports whether e has type t.
func (e Element) Is(t ElementType) bool { return e.Type == t }

// catalog holds the one canonical element per type.
var catalog = [numElementTypes]Element{
	TypeImmovableSolid: {Type: TypeImmovableSolid, Color: Color{169, 169, 169}, Name: "Stone"},
	TypeMoveableSolid:  {Type: TypeMoveableSolid, Color: Color{255, 215, 0}, Name: "Sand"},
	TypeLiquid:         {Type: TypeLiquid, Color: Color{4, 59, 92}, Name: "Water"},
	TypeGas:            {Type: TypeGas, Color: Color{200, 200, 210}, Name: "Steam"},
	TypePixelGenerator: {Type: TypePixelGenerator, Color: Color{30, 110, 200}, Name: "Spout"},
	TypeNothing:        {Type: TypeNothing, Color: Color{0, 0, 0}, Name: "Nothing"},
	TypeMagic:          {Type: TypeMagic, Color: Color{0, 255, 0}, Name: "Magic"},
	TypeFire:           {Type: TypeFire, Color: Color{255, 0, 0}, Name: "Fire"},
	TypeMaze:           {Type: TypeMaze, Color: Color{255, 255, 255}, Name: "Maze"},
}

// Canonical elements, one per type.
var (
	Stone   = catalog[TypeImmovableSolid]
	Sand    = catalog[TypeMoveableSolid]
	Water   = catalog[TypeLiquid]
	Steam   = catalog[TypeGas]
	Spout   = catalog[TypePixelGenerator]
	Nothing = catalog[TypeNothing]
	Magic   = catalog[TypeMagic]
	Fire    = catalog[TypeFire]
	Maze    = catalog[TypeMaze]
)

// Of returns the catalog element for t. Unknown types map to Nothing.
func Of(t ElementType) Element {
	if t >= numElementTypes {
		return catalog[TypeNothing]
	}
	return catalog[t]
}

// ByName looks up a catalog element by its display name, ignoring case.
func ByName(name string) (Element, bool) {
	for _, e := range catalog {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Element{}, false
}

// Elements returns the catalog in type order.
func Elements() []Element {
	out := make([]Element, len(catalog))
	copy(out, catalog[:])
	return out
}
