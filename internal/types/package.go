package types

import "sort"

// MethodTable is the registry of method signatures of one source file.
// Methods are keyed by name; registering a name again replaces the
// earlier signature.
type MethodTable struct {
	methods map[string]*Method
}

// NewMethodTable creates an empty method table.
func NewMethodTable() *MethodTable {
	return &MethodTable{methods: make(map[string]*Method)}
}

// Register records m under its name. It returns the signature that was
// previously registered under that name, or nil.
func (t *MethodTable) Register(m *Method) (prev *Method) {
	prev = t.methods[m.name]
	t.methods[m.name] = m
	return prev
}

// Lookup returns the method with the given name, or nil.
func (t *MethodTable) Lookup(name string) *Method {
	return t.methods[name]
}

// Len returns the number of registered methods.
func (t *MethodTable) Len() int {
	return len(t.methods)
}

// Names returns the registered method names, sorted alphabetically.
func (t *MethodTable) Names() []string {
	names := make([]string, 0, len(t.methods))
	for name := range t.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
