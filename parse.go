package htmltree

import "github.com/dpotapov/htmltree/internal/entity"

func decodeEntities(s string) string {
	return entity.Decode(s)
}

// Parse turns an HTML string into a sequence of top-level nodes. It
// never fails: malformed markup degrades to text rather than being
// rejected, so every input string, including the empty one, maps to
// some (possibly empty) node sequence.
func Parse(input string) []*Node {
	c := &cursor{s: input}
	return parseNodes(c, "")
}

// parseNodes repeatedly applies parseNode until no alternative matches,
// merging adjacent text nodes as it goes. parentTag is the lowercased
// name of the element whose children are being parsed, or "" at the
// top level.
func parseNodes(c *cursor, parentTag string) []*Node {
	var nodes []*Node
	for {
		n, ok := parseNode(c, parentTag)
		if !ok {
			return nodes
		}
		nodes = appendNode(nodes, n)
	}
}

// appendNode appends n to nodes, merging it into a trailing text node
// when both are text, the way chtml/html/parse.go's addText folds
// consecutive character data into one node.
func appendNode(nodes []*Node, n *Node) []*Node {
	if n.Type == TextNode && n.Data == "" {
		return nodes
	}
	if len(nodes) > 0 {
		last := nodes[len(nodes)-1]
		if last.Type == TextNode && n.Type == TextNode {
			last.Data += n.Data
			return nodes
		}
	}
	return append(nodes, n)
}

// parseNode tries, in order, a doctype, a self-closing tag, a comment,
// a normal element, and finally a text run. It reports ok=false,
// without consuming anything, when the cursor sits at the start of an
// end tag that some enclosing element still open might want, or at a
// start tag rejected by isInvalidNest — in both cases the caller's
// children loop must stop so an ancestor gets a chance to match it. At
// the top level there is no ancestor left to ever claim a dangling end
// tag, so it is consumed and discarded there instead, and scanning
// resumes — a document never loses everything after a stray closing tag.
func parseNode(c *cursor, parentTag string) (*Node, bool) {
	for {
		if c.done() {
			return nil, false
		}
		if c.s[c.pos] == '<' {
			if n, ok := tryDoctype(c); ok {
				return n, true
			}
			if n, ok := trySelfClosing(c); ok {
				return n, true
			}
			if content, ok := c.comment(); ok {
				return &Node{Type: CommentNode, Data: content}, true
			}
			if n, ok := tryNormalElement(c, parentTag); ok {
				return n, true
			}
			if parentTag == "" {
				if _, ok := c.generalEndTag(); ok {
					continue
				}
			}
			if looksLikeMarkup(c) {
				return nil, false
			}
		}
		raw := scanText(c)
		if raw == "" {
			return nil, false
		}
		return &Node{Type: TextNode, Data: decodeEntities(raw)}, true
	}
}

func trySelfClosing(c *cursor) (*Node, bool) {
	name, attrs, ok := c.singleTag()
	if !ok {
		return nil, false
	}
	return &Node{Type: ElementNode, Data: name, Attr: attrs}, true
}

// tryNormalElement matches a start tag and, unless isInvalidNest
// rejects it against parentTag, builds the element: raw-text content
// for script/style, no children for void elements, and a recursively
// parsed child sequence plus an optional matching end tag otherwise.
func tryNormalElement(c *cursor, parentTag string) (*Node, bool) {
	save := c.pos
	name, attrs, ok := c.startTag()
	if !ok {
		return nil, false
	}
	if isInvalidNest(parentTag, name) {
		c.pos = save
		return nil, false
	}
	if isRawText(name) {
		return &Node{Type: ElementNode, Data: name, Attr: attrs, Children: parseRawText(c, name)}, true
	}
	if isVoid(name) {
		return &Node{Type: ElementNode, Data: name, Attr: attrs}, true
	}
	children := parseNodes(c, name)
	consumeMatchingEndTag(c, name)
	return &Node{Type: ElementNode, Data: name, Attr: attrs, Children: children}, true
}

// consumeMatchingEndTag makes a single attempt to read a generalEndTag
// once an element's children are exhausted. A missing end tag is fine
// (the element is simply unterminated). A present but mismatched end
// tag is left for an ancestor to consume instead of being discarded.
func consumeMatchingEndTag(c *cursor, name string) {
	save := c.pos
	endName, ok := c.generalEndTag()
	if !ok {
		return
	}
	// generalEndTag and startTag both lowercase via cursor.tagName, so a
	// plain comparison is a case-insensitive match on the source tag names.
	if endName != name {
		c.pos = save
	}
}

// parseRawText parses the content of a script or style element: only a
// comment or the matching end tag are recognized as markup; every other
// '<', including one that starts a different tag entirely, is just
// another character of text.
func parseRawText(c *cursor, tagName string) []*Node {
	var nodes []*Node
	for !c.done() {
		if c.s[c.pos] == '<' {
			if content, ok := tryPeekComment(c); ok {
				nodes = appendNode(nodes, &Node{Type: CommentNode, Data: content})
				continue
			}
			if peekEndTag(c, tagName) {
				break
			}
		}
		start := c.pos
		c.pos++
		for !c.done() {
			if c.s[c.pos] == '<' {
				if _, ok := peekCommentOnly(c); ok {
					break
				}
				// Look without consuming: the outer loop consumes the end tag,
				// so it does not end up inside this text run.
				if cc := *c; cc.endTag(tagName) {
					break
				}
			}
			c.pos++
		}
		nodes = appendNode(nodes, &Node{Type: TextNode, Data: c.s[start:c.pos]})
	}
	return nodes
}

func tryPeekComment(c *cursor) (string, bool) {
	cc := *c
	content, ok := cc.comment()
	if !ok {
		return "", false
	}
	*c = cc
	return content, true
}

func peekCommentOnly(c *cursor) (string, bool) {
	cc := *c
	return cc.comment()
}

func peekEndTag(c *cursor, name string) bool {
	cc := *c
	if cc.endTag(name) {
		*c = cc
		return true
	}
	return false
}

// looksLikeMarkup reports, without consuming anything, whether the
// cursor sits at the start of some syntactically valid markup construct
// (doctype, self-closing tag, comment, start tag, or end tag) even
// though none of the direct alternatives in parseNode accepted it. This
// distinguishes markup that was merely rejected for semantic reasons
// (isInvalidNest, a name mismatch) from a genuinely stray '<' that
// should be absorbed into surrounding text.
func looksLikeMarkup(c *cursor) bool {
	cc := *c
	if cc.doctype() {
		return true
	}
	cc = *c
	if _, _, ok := cc.singleTag(); ok {
		return true
	}
	cc = *c
	if _, ok := cc.comment(); ok {
		return true
	}
	cc = *c
	if _, _, ok := cc.startTag(); ok {
		return true
	}
	cc = *c
	if _, ok := cc.generalEndTag(); ok {
		return true
	}
	return false
}

// scanText consumes a maximal run of text starting at the current
// position. A '<' that does not begin a recognizable markup construct
// is absorbed into the run rather than stopping it, so an unstartable
// tag (one with no valid name character after it) just becomes text.
func scanText(c *cursor) string {
	start := c.pos
	for !c.done() {
		if c.s[c.pos] == '<' && looksLikeMarkup(c) {
			break
		}
		c.pos++
	}
	return c.s[start:c.pos]
}
