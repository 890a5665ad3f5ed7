package navigate

import "w3u-navigator/internal/model"

// Option is one flattened, indexed, render-scoped reference to a group or
// station plus its parent group. The option list is rebuilt on every render;
// indices are valid only for the immediately following input.
type Option struct {
	Name    string
	URL     string
	Depth   int
	IsGroup bool
	Parent  *model.Group
}

// Flatten builds the indexed option list for doc in pre-order: each group,
// then its direct stations, then its nested groups, recursively. A document
// with no groups lists its top-level stations flat. Indices restart at 0 per
// render and are contiguous regardless of nesting depth.
func Flatten(doc *model.Document) []Option {
	var opts []Option
	if len(doc.Groups) == 0 {
		for i := range doc.Stations {
			st := &doc.Stations[i]
			opts = append(opts, Option{Name: st.Name, URL: st.URL})
		}
		return opts
	}
	for i := range doc.Groups {
		opts = appendGroup(opts, &doc.Groups[i], nil, 0)
	}
	return opts
}

func appendGroup(opts []Option, g *model.Group, parent *model.Group, depth int) []Option {
	opts = append(opts, Option{Name: g.Name, URL: g.URL, Depth: depth, IsGroup: true, Parent: parent})
	for i := range g.Stations {
		st := &g.Stations[i]
		opts = append(opts, Option{Name: st.Name, URL: st.URL, Depth: depth + 1, Parent: g})
	}
	for i := range g.Groups {
		opts = appendGroup(opts, &g.Groups[i], g, depth+1)
	}
	return opts
}
