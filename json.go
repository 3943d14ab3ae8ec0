package components

import (
	"encoding/json"
	"hash/fnv"
)

// Marshal encodes the component's map projection as JSON. The raw tree
// structure is preserved: children appear under "extra", unresolved.
func Marshal(c Component) ([]byte, error) {
	return json.Marshal(c.AsMap())
}

// Hash returns a deterministic hash of the component's map projection.
// Components that compare Equal hash identically; encoding/json sorts
// map keys, so the hash is stable across runs.
func Hash(c Component) uint64 {
	data, err := json.Marshal(c.AsMap())
	if err != nil {
		// Projections only hold strings, bools, maps and slices.
		panic("components: unencodable projection: " + err.Error())
	}
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}
