// Package modules defines the native-module registration contract: a
// pre-registered Module exporting named values, consulted by Import/Export
// statement evaluation. There is no package resolution from disk and no
// re-export groups — only the pre-registered-list shape a host supplies
// before evaluation starts.
package modules

// Export is one (name, value) pair a Module makes available to
// `import { name } from "module"`. Value is `interface{}` here (rather
// than importing the evaluator's Value type) to avoid a modules→evaluator
// import cycle; the evaluator type-asserts back to its own Value on use.
type Export struct {
	Name  string
	Value interface{}
}

// Module is a host-registered native module.
type Module struct {
	Name    string
	Exports []Export
}

func (m *Module) Lookup(name string) (interface{}, bool) {
	for _, e := range m.Exports {
		if e.Name == name {
			return e.Value, true
		}
	}
	return nil, false
}

// Registry is the list of modules a host supplies before evaluation.
type Registry struct {
	modules map[string]*Module
}

func NewRegistry() *Registry {
	return &Registry{modules: map[string]*Module{}}
}

func (r *Registry) Register(m *Module) {
	r.modules[m.Name] = m
}

func (r *Registry) Lookup(name string) (*Module, bool) {
	m, ok := r.modules[name]
	return m, ok
}
