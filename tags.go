package htmltree

// voidElements never have a closing tag or children; a matched start
// tag for one of these is a complete element on its own.
var voidElements = map[string]bool{
	"br": true, "img": true, "hr": true, "meta": true, "input": true,
	"embed": true, "area": true, "base": true, "col": true, "keygen": true,
	"link": true, "param": true, "source": true, "command": true,
	"track": true, "wbr": true,
}

// rawTextElements switch the tree builder into raw-text mode: only
// comments and a matching end tag are recognized as markup; everything
// else is text, verbatim.
var rawTextElements = map[string]bool{
	"script": true,
	"style":  true,
}

// optionalEndElements may be closed implicitly by certain following
// sibling or ancestor start tags; see isInvalidNest.
var optionalEndElements = map[string]bool{
	"li": true, "dt": true, "dd": true, "p": true, "rt": true, "rp": true,
	"optgroup": true, "option": true, "colgroup": true, "caption": true,
	"thead": true, "tbody": true, "tfoot": true, "tr": true, "td": true,
	"th": true,
}

func isVoid(name string) bool {
	return voidElements[name]
}

func isRawText(name string) bool {
	return rawTextElements[name]
}

// pParagraphClosers is the set of block-level start tags that implicitly
// close an open <p>.
var pParagraphClosers = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"details": true, "div": true, "dl": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hgroup": true, "hr": true, "main": true, "menu": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"ul": true,
}

// isInvalidNest reports whether a start tag named child, encountered
// while parent is still open, implicitly closes parent instead of
// nesting inside it. Apart from head (closed by body), only elements in
// optionalEndElements ever answer true here; every other parent always
// accepts its children.
func isInvalidNest(parent, child string) bool {
	switch parent {
	case "head":
		return child == "body"
	case "li":
		return child == "li"
	case "dt", "dd":
		return child == "dt" || child == "dd"
	case "p":
		return pParagraphClosers[child]
	case "rt", "rp":
		return child == "rt" || child == "rp"
	case "optgroup":
		return child == "optgroup"
	case "option":
		return child == "option" || child == "optgroup"
	case "colgroup":
		return child != "col"
	case "caption":
		return true
	case "thead":
		return child == "tbody" || child == "tfoot"
	case "tbody":
		return child == "tbody" || child == "tfoot" || child == "table"
	case "tfoot":
		return child == "table"
	case "tr":
		return child == "tr" || child == "thead" || child == "tbody" || child == "tfoot"
	case "td", "th":
		return child == "td" || child == "th" || child == "tr" ||
			child == "tbody" || child == "tfoot"
	default:
		return false
	}
}
