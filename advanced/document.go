package advanced

// A node in a document tree. Only paths carry geometry; the other node types
// organise them.
type Node interface {
	children() []Node
}

type Layer struct {
	Name     string
	Locked   bool
	Hidden   bool
	Children []Node
}

type Group struct {
	Name     string
	Children []Node
}

// A compound path is several subpaths that render as one shape.
type CompoundPath struct {
	Name  string
	Paths []*Path
}

func (l *Layer) children() []Node   { return l.Children }
func (g *Group) children() []Node   { return g.Children }
func (path *Path) children() []Node { return nil }

func (c *CompoundPath) children() []Node {
	nodes := make([]Node, len(c.Paths))
	for i, p := range c.Paths {
		nodes[i] = p
	}
	return nodes
}

// Walk calls fn for every editable path under node, depth first, in document
// order. Locked and hidden layers, and locked paths, are skipped. If fn returns
// an error, the walk stops and returns it.
func Walk(node Node, fn func(*Path) error) error {
	switch n := node.(type) {
	case *Layer:
		if n.Locked || n.Hidden {
			return nil
		}
	case *Path:
		if n.Locked {
			return nil
		}
		return fn(n)
	}
	for _, child := range node.children() {
		if err := Walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// CollectPaths returns every editable path under node as a flat list.
func CollectPaths(node Node) []*Path {
	var paths []*Path
	_ = Walk(node, func(p *Path) error {
		paths = append(paths, p)
		return nil
	})
	return paths
}
