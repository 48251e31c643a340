package templates

import "reflect"

// Node is one element of the rendered visual tree. The tree is plain data so
// it can be sent as JSON to the client that paints it.
type Node struct {
	Kind     string            `json:"kind"`
	Key      string            `json:"key,omitempty"`
	Text     string            `json:"text,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []Node            `json:"children,omitempty"`
	// Decorative nodes are presentation only (ambient animation etc.) and
	// carry no menu content.
	Decorative bool `json:"decorative,omitempty"`
}

func el(kind, key string, attrs map[string]string, children ...Node) Node {
	n := Node{Kind: kind, Key: key, Attrs: attrs}
	if len(children) > 0 {
		n.Children = children
	}
	return n
}

func text(kind, value string) Node {
	return Node{Kind: kind, Text: value}
}

// append skips empty nodes so optional parts can be built inline.
func appendNodes(dst []Node, nodes ...Node) []Node {
	for _, n := range nodes {
		if n.Kind == "" {
			continue
		}
		dst = append(dst, n)
	}
	return dst
}

// StripDecorative returns a copy of n without decorative subtrees.
func StripDecorative(n Node) Node {
	out := Node{Kind: n.Kind, Key: n.Key, Text: n.Text, Attrs: n.Attrs}
	for _, c := range n.Children {
		if c.Decorative {
			continue
		}
		out.Children = append(out.Children, StripDecorative(c))
	}
	return out
}

// Equivalent compares two trees ignoring decorative nodes.
func Equivalent(a, b Node) bool {
	return reflect.DeepEqual(StripDecorative(a), StripDecorative(b))
}

// Count returns how many nodes of kind the tree holds.
func Count(n Node, kind string) int {
	total := 0
	if n.Kind == kind {
		total++
	}
	for _, c := range n.Children {
		total += Count(c, kind)
	}
	return total
}

// Find returns the first node of kind with key in depth-first order.
func Find(n Node, kind, key string) (Node, bool) {
	if n.Kind == kind && n.Key == key {
		return n, true
	}
	for _, c := range n.Children {
		if found, ok := Find(c, kind, key); ok {
			return found, true
		}
	}
	return Node{}, false
}
