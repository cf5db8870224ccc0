package htmltree

// tryDoctype recognizes a "<!DOCTYPE ...>" declaration and synthesizes
// a node standing in for it. Anything between the keyword and the
// closing '>' — PUBLIC/SYSTEM identifiers, a DTD subset — is discarded;
// this module has no use for it.
func tryDoctype(c *cursor) (*Node, bool) {
	if !c.doctype() {
		return nil, false
	}
	return &Node{Type: ElementNode, Data: doctypeName}, true
}
