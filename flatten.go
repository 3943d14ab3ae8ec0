package components

// Flatten resolves style inheritance across the tree rooted at c and
// returns its nodes as a flat pre-order sequence. Every returned node
// carries its fully resolved formatting, insertion and event state —
// for each unset attribute, the nearest ancestor that sets it wins —
// and has no children of its own. The original tree is never mutated;
// the pass operates on a clone.
func Flatten(c Component) []Component {
	var flat []Component
	separate(c.Clone(), &flat)
	return flat
}

// separate appends parent to the output, pushes parent's resolved
// attributes down into each child before recursing, and finally
// detaches the children so the emitted parent is leaf-shaped.
func separate(parent Component, flat *[]Component) {
	*flat = append(*flat, parent)
	for _, child := range parent.Siblings() {
		child.InheritFrom(parent)
		separate(child, flat)
	}
	parent.ClearSiblings()
}
