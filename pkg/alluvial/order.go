package alluvial

import "sort"

// Order is the fixed top-to-bottom stacking order of categories. It is
// built once and shared by the layout, color and label stages so that a
// category's slot, color and label always agree.
type Order struct {
	names []string
	index map[string]int
}

// NewOrder returns the lexicographic order of the distinct categories.
func NewOrder(categories []string) Order {
	index := make(map[string]int, len(categories))
	var names []string
	for _, c := range categories {
		if _, ok := index[c]; ok {
			continue
		}
		index[c] = 0
		names = append(names, c)
	}
	sort.Strings(names)
	for i, c := range names {
		index[c] = i
	}
	return Order{names: names, index: index}
}

// Len returns the number of categories.
func (o Order) Len() int {
	return len(o.names)
}

// Name returns the category at position i.
func (o Order) Name(i int) string {
	return o.names[i]
}

// Names returns a copy of the ordered categories.
func (o Order) Names() []string {
	return append([]string(nil), o.names...)
}

// Index returns the position of category c.
func (o Order) Index(c string) (int, bool) {
	i, ok := o.index[c]
	return i, ok
}
