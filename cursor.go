package htmltree

import "strings"

// cursor is a position over an input string. Each tokenizer primitive
// below either advances the cursor and returns a value, or leaves it
// untouched and reports no match, so callers can try alternatives
// without needing to save and restore position themselves.
type cursor struct {
	s   string
	pos int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.s)
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlnum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

func isBareValueTerminator(b byte) bool {
	switch b {
	case '`', '"', '\'', '<', '>', '=', ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// consumePrefix advances the cursor past p if the input at the current
// position starts with p, byte for byte.
func (c *cursor) consumePrefix(p string) bool {
	if strings.HasPrefix(c.s[c.pos:], p) {
		c.pos += len(p)
		return true
	}
	return false
}

// consumePrefixFold is consumePrefix with ASCII case-insensitive comparison.
func (c *cursor) consumePrefixFold(p string) bool {
	if len(c.s)-c.pos < len(p) {
		return false
	}
	if strings.EqualFold(c.s[c.pos:c.pos+len(p)], p) {
		c.pos += len(p)
		return true
	}
	return false
}

// spaces consumes zero or more of { space, tab, CR, LF }. It always
// succeeds, so it has no boolean result.
func (c *cursor) spaces() {
	for c.pos < len(c.s) {
		switch c.s[c.pos] {
		case ' ', '\t', '\r', '\n':
			c.pos++
		default:
			return
		}
	}
}

// tagName matches [A-Za-z][A-Za-z0-9-]* and lowercases the result.
func (c *cursor) tagName() (string, bool) {
	if c.pos >= len(c.s) || !isAlpha(c.s[c.pos]) {
		return "", false
	}
	start := c.pos
	i := c.pos + 1
	for i < len(c.s) && (isAlnum(c.s[i]) || c.s[i] == '-') {
		i++
	}
	name := strings.ToLower(c.s[start:i])
	c.pos = i
	return name, true
}

// attributeName matches [A-Za-z][A-Za-z0-9:-]* and lowercases the result.
func (c *cursor) attributeName() (string, bool) {
	if c.pos >= len(c.s) || !isAlpha(c.s[c.pos]) {
		return "", false
	}
	start := c.pos
	i := c.pos + 1
	for i < len(c.s) && (isAlnum(c.s[i]) || c.s[i] == ':' || c.s[i] == '-') {
		i++
	}
	name := strings.ToLower(c.s[start:i])
	c.pos = i
	return name, true
}

// attributeValue matches a quoted value ("..." or '...', entity-decoded)
// or a bare value (one or more characters outside the terminator set,
// taken verbatim).
func (c *cursor) attributeValue() (string, bool) {
	if c.pos >= len(c.s) {
		return "", false
	}
	if q := c.s[c.pos]; q == '"' || q == '\'' {
		i := c.pos + 1
		for i < len(c.s) && c.s[i] != q {
			i++
		}
		raw := c.s[c.pos+1 : i]
		if i < len(c.s) {
			i++ // consume closing quote
		}
		c.pos = i
		return decodeEntities(raw), true
	}
	start := c.pos
	i := c.pos
	for i < len(c.s) && !isBareValueTerminator(c.s[i]) {
		i++
	}
	if i == start {
		return "", false
	}
	c.pos = i
	return c.s[start:i], true
}

// attribute matches name, optionally followed by spaces '=' spaces
// attributeValue. When '=' is absent, the value is the empty string.
func (c *cursor) attribute() (Attribute, bool) {
	name, ok := c.attributeName()
	if !ok {
		return Attribute{}, false
	}
	save := c.pos
	c.spaces()
	if c.pos < len(c.s) && c.s[c.pos] == '=' {
		c.pos++
		c.spaces()
		val, _ := c.attributeValue()
		return Attribute{Name: name, Value: val}, true
	}
	c.pos = save
	return Attribute{Name: name, Value: ""}, true
}

// openTagPrefix matches '<' tagName (spaces attribute)* spaces, leaving
// the cursor just before the tag's closing '>' or '/>'. It is shared by
// startTag and singleTag.
func (c *cursor) openTagPrefix() (name string, attrs []Attribute, ok bool) {
	save := c.pos
	if c.pos >= len(c.s) || c.s[c.pos] != '<' {
		return "", nil, false
	}
	c.pos++
	name, ok = c.tagName()
	if !ok {
		c.pos = save
		return "", nil, false
	}
	for {
		before := c.pos
		c.spaces()
		attr, ok := c.attribute()
		if !ok {
			c.pos = before
			break
		}
		attrs = append(attrs, attr)
	}
	c.spaces()
	return name, attrs, true
}

// startTag matches '<' tagName (spaces attribute)* spaces '>'.
func (c *cursor) startTag() (string, []Attribute, bool) {
	save := c.pos
	name, attrs, ok := c.openTagPrefix()
	if !ok {
		return "", nil, false
	}
	if c.pos < len(c.s) && c.s[c.pos] == '>' {
		c.pos++
		return name, attrs, true
	}
	c.pos = save
	return "", nil, false
}

// singleTag matches the same shape as startTag, terminated by '/>'.
func (c *cursor) singleTag() (string, []Attribute, bool) {
	save := c.pos
	name, attrs, ok := c.openTagPrefix()
	if !ok {
		return "", nil, false
	}
	if c.pos+1 < len(c.s) && c.s[c.pos] == '/' && c.s[c.pos+1] == '>' {
		c.pos += 2
		return name, attrs, true
	}
	c.pos = save
	return "", nil, false
}

// endTag matches '</' name-ci spaces '>', comparing name case-insensitively.
func (c *cursor) endTag(name string) bool {
	save := c.pos
	if !c.consumePrefix("</") {
		return false
	}
	got, ok := c.tagName()
	if !ok || !strings.EqualFold(got, name) {
		c.pos = save
		return false
	}
	c.spaces()
	if c.pos < len(c.s) && c.s[c.pos] == '>' {
		c.pos++
		return true
	}
	c.pos = save
	return false
}

// generalEndTag matches '</' tagName spaces '>' and returns the name,
// whatever it is.
func (c *cursor) generalEndTag() (string, bool) {
	save := c.pos
	if !c.consumePrefix("</") {
		return "", false
	}
	name, ok := c.tagName()
	if !ok {
		c.pos = save
		return "", false
	}
	c.spaces()
	if c.pos < len(c.s) && c.s[c.pos] == '>' {
		c.pos++
		return name, true
	}
	c.pos = save
	return "", false
}

// comment matches '<!--' followed by raw characters up to the first
// '-->', inclusive. A comment missing its terminator consumes to the
// end of input rather than failing to match.
func (c *cursor) comment() (string, bool) {
	if !c.consumePrefix("<!--") {
		return "", false
	}
	rest := c.s[c.pos:]
	if i := strings.Index(rest, "-->"); i != -1 {
		content := rest[:i]
		c.pos += i + 3
		return content, true
	}
	content := rest
	c.pos = len(c.s)
	return content, true
}

// doctype matches '<!DOCTYPE ...>' case-insensitively on the keyword;
// its internal contents are discarded by the caller.
func (c *cursor) doctype() bool {
	save := c.pos
	if !c.consumePrefixFold("<!doctype") {
		return false
	}
	i := strings.IndexByte(c.s[c.pos:], '>')
	if i == -1 {
		c.pos = save
		return false
	}
	c.pos += i + 1
	return true
}
