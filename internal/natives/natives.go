package natives

import "github.com/lumen-lang/lumen/internal/modules"

// All returns every reference native module, ready to Register into a
// fresh modules.Registry before evaluation starts.
func All() []*modules.Module {
	return []*modules.Module{UUID(), JSON(), YAML(), SQL(), Bits()}
}
