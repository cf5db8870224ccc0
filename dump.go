package htmltree

import "github.com/beevik/etree"

// Dump renders nodes as indented pseudo-XML, the way chtml/err.go turns
// a parsed tree into an etree.Element tree purely to produce readable
// output for a human reading a test failure or debugging a parse.
func Dump(nodes []*Node) string {
	doc := etree.NewDocument()
	appendEtreeChildren(&doc.Element, nodes)
	doc.Indent(2)
	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return s
}

func appendEtreeChildren(parent *etree.Element, nodes []*Node) {
	for _, n := range nodes {
		switch n.Type {
		case TextNode:
			parent.CreateText(n.Data)
		case CommentNode:
			parent.CreateComment(n.Data)
		case ElementNode:
			el := parent.CreateElement(n.Data)
			for _, a := range n.Attr {
				el.CreateAttr(a.Name, a.Value)
			}
			appendEtreeChildren(el, n.Children)
		}
	}
}
