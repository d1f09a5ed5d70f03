package normalize

// Category maps an upstream category object.
func (n *Normalizer) Category(obj Object) Category {
	k := n.keys
	return Category{
		ID:          obj.intOr(k[FieldCategoryID], 0),
		Name:        cleanText(obj.stringOr(k[FieldCategoryName], "")),
		ReplaceName: cleanText(obj.stringOr(k[FieldReplaceName], "")),
	}
}

// Categories normalizes a category list, skipping non-object entries.
func (n *Normalizer) Categories(list []any) []Category {
	out := make([]Category, 0, len(list))
	for _, item := range list {
		if obj, ok := AsObject(item); ok {
			out = append(out, n.Category(obj))
		}
	}
	return out
}
