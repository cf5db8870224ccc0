package htmltree

import "strings"

// GetElementsByTagName returns, in document order, every element node
// anywhere in the tree (at any depth) whose tag name equals name
// case-insensitively.
func GetElementsByTagName(name string, nodes []*Node) []*Node {
	name = strings.ToLower(name)
	var out []*Node
	walkElements(nodes, func(n *Node) {
		if n.Data == name {
			out = append(out, n)
		}
	})
	return out
}

// GetElementsByClassName returns, in document order, every element node
// anywhere in the tree whose class attribute contains all of classes.
func GetElementsByClassName(classes []string, nodes []*Node) []*Node {
	var out []*Node
	walkElements(nodes, func(n *Node) {
		if hasAllClasses(GetClassList(n.Attr), classes) {
			out = append(out, n)
		}
	})
	return out
}

func hasAllClasses(have, want []string) bool {
	set := make(map[string]bool, len(have))
	for _, c := range have {
		set[c] = true
	}
	for _, w := range want {
		if !set[w] {
			return false
		}
	}
	return true
}

// GetElementByID returns, as a single-element slice, the first element
// in document order whose id attribute equals id; it returns nil if no
// such element exists.
func GetElementByID(id string, nodes []*Node) []*Node {
	var found *Node
	walkUntil(nodes, func(n *Node) bool {
		if v, ok := lookupAttr("id", n.Attr); ok && v == id {
			found = n
			return true
		}
		return false
	})
	if found == nil {
		return nil
	}
	return []*Node{found}
}

// FindElement returns the first element anywhere in the tree, in
// document order, for which pred returns true, or nil if none does.
func FindElement(pred func(tag string, attrs []Attribute) bool, nodes []*Node) *Node {
	var found *Node
	walkUntil(nodes, func(n *Node) bool {
		if pred(n.Data, n.Attr) {
			found = n
			return true
		}
		return false
	})
	return found
}

// FindElements returns every element anywhere in the tree, in document
// order, for which pred returns true.
func FindElements(pred func(tag string, attrs []Attribute) bool, nodes []*Node) []*Node {
	var out []*Node
	walkElements(nodes, func(n *Node) {
		if pred(n.Data, n.Attr) {
			out = append(out, n)
		}
	})
	return out
}

// MapElements applies f to each top-level element of nodes, in order,
// skipping text and comment nodes. Unlike FindElements/GetElementsBy*,
// it does not recurse into children.
func MapElements[T any](f func(tag string, attrs []Attribute, children []*Node) T, nodes []*Node) []T {
	var out []T
	for _, n := range nodes {
		if n.Type != ElementNode {
			continue
		}
		out = append(out, f(n.Data, n.Attr, n.Children))
	}
	return out
}

// FilterElements returns the top-level elements of nodes for which pred
// returns true, without recursing into children.
func FilterElements(pred func(tag string, attrs []Attribute, children []*Node) bool, nodes []*Node) []*Node {
	var out []*Node
	for _, n := range nodes {
		if n.Type != ElementNode {
			continue
		}
		if pred(n.Data, n.Attr, n.Children) {
			out = append(out, n)
		}
	}
	return out
}

// FilterMapElements combines FilterElements and MapElements: f decides
// both whether a top-level element is kept and what it becomes.
func FilterMapElements[T any](f func(tag string, attrs []Attribute, children []*Node) (T, bool), nodes []*Node) []T {
	var out []T
	for _, n := range nodes {
		if n.Type != ElementNode {
			continue
		}
		if v, ok := f(n.Data, n.Attr, n.Children); ok {
			out = append(out, v)
		}
	}
	return out
}

// TextContent concatenates the text of every TextNode reachable from
// nodes, recursing through element children and skipping comments.
func TextContent(nodes []*Node) string {
	var b strings.Builder
	var walk func([]*Node)
	walk = func(ns []*Node) {
		for _, n := range ns {
			switch n.Type {
			case TextNode:
				b.WriteString(n.Data)
			case ElementNode:
				walk(n.Children)
			}
		}
	}
	walk(nodes)
	return b.String()
}

func lookupAttr(name string, attrs []Attribute) (string, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// GetValue returns the value of the first attribute named name, or the
// empty string if no such attribute is present.
func GetValue(name string, attrs []Attribute) string {
	v, _ := lookupAttr(name, attrs)
	return v
}

// GetID returns the value of the id attribute, or "" if absent.
func GetID(attrs []Attribute) string {
	return GetValue("id", attrs)
}

// GetClassList splits the class attribute on whitespace, or returns nil
// if the attribute is absent or empty.
func GetClassList(attrs []Attribute) []string {
	v := GetValue("class", attrs)
	if v == "" {
		return nil
	}
	return strings.Fields(v)
}

// CreateIDDict indexes every element that carries an id attribute,
// keyed by that id. Elements that share an id all appear in that id's
// slice, in document order.
func CreateIDDict(nodes []*Node) map[string][]*Node {
	out := make(map[string][]*Node)
	walkElements(nodes, func(n *Node) {
		if id, ok := lookupAttr("id", n.Attr); ok {
			out[id] = append(out[id], n)
		}
	})
	return out
}

// CreateTagDict indexes every element, keyed by its tag name.
func CreateTagDict(nodes []*Node) map[string][]*Node {
	out := make(map[string][]*Node)
	walkElements(nodes, func(n *Node) {
		out[n.Data] = append(out[n.Data], n)
	})
	return out
}

// CreateClassDict indexes every element under each of its classes; an
// element with N classes appears in N of the resulting slices.
func CreateClassDict(nodes []*Node) map[string][]*Node {
	out := make(map[string][]*Node)
	walkElements(nodes, func(n *Node) {
		for _, cl := range GetClassList(n.Attr) {
			out[cl] = append(out[cl], n)
		}
	})
	return out
}

// walkElements visits every element node reachable from nodes, in
// document (pre-)order.
func walkElements(nodes []*Node, visit func(*Node)) {
	for _, n := range nodes {
		if n.Type != ElementNode {
			continue
		}
		visit(n)
		walkElements(n.Children, visit)
	}
}

// walkUntil visits every element node in document order until visit
// returns true, then stops.
func walkUntil(nodes []*Node, visit func(*Node) bool) bool {
	for _, n := range nodes {
		if n.Type != ElementNode {
			continue
		}
		if visit(n) {
			return true
		}
		if walkUntil(n.Children, visit) {
			return true
		}
	}
	return false
}
