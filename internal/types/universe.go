package types

// universe maps every type keyword to its basic type.
var universe map[string]*Basic

func init() {
	universe = make(map[string]*Basic, len(Typ))
	for _, typ := range Typ {
		if typ != nil {
			universe[typ.name] = typ
		}
	}
}

// Lookup returns the basic type with the given name, or nil if name is
// not a type keyword.
func Lookup(name string) *Basic {
	return universe[name]
}

// UniverseBoolean returns the boolean type, which conditions require.
func UniverseBoolean() *Basic { return Typ[Boolean] }
