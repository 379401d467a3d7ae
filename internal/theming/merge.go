package theming

// Merge combines base with a partial override. Where both sides hold a
// mapping the two are merged recursively; anywhere else a key present in
// override replaces the base value wholesale, including a present nil.
// Neither input is modified.
func Merge(base, override Tree) Tree {
	out := base.Clone()
	for key, value := range override {
		if existing, ok := out[key]; ok {
			baseNode, baseIsTree := asTree(existing)
			overNode, overIsTree := asTree(value)
			if baseIsTree && overIsTree {
				out[key] = Merge(baseNode, overNode)
				continue
			}
		}
		out[key] = cloneValue(value)
	}
	return out
}

// MergeValue is Merge for untyped overrides. An override that is not a
// mapping is treated as absent and the result equals base.
func MergeValue(base Tree, override any) Tree {
	node, ok := asTree(override)
	if !ok {
		return base.Clone()
	}
	return Merge(base, node)
}
