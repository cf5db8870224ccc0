package htmltree

import (
	_ "embed"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed testdata/full_omission.html
var fullOmissionHTML string

//go:embed testdata/excel_clipboard.html
var excelClipboardHTML string

func TestQueryFullOmissionTable(t *testing.T) {
	tree := Parse(fullOmissionHTML)

	tds := GetElementsByTagName("td", tree)
	require.Len(t, tds, 15)

	trs := GetElementsByTagName("tr", tree)
	var matchingFirstCells []string
	for _, tr := range trs {
		cells := FilterElements(func(tag string, _ []Attribute, _ []*Node) bool {
			return tag == "td"
		}, tr.Children)
		if len(cells) != 3 {
			continue
		}
		second := strings.TrimSpace(TextContent([]*Node{cells[1]}))
		third := strings.TrimSpace(TextContent([]*Node{cells[2]}))
		if second == "✔" && third == "✔" {
			matchingFirstCells = append(matchingFirstCells, strings.TrimSpace(TextContent([]*Node{cells[0]})))
		}
	}

	require.Equal(t, []string{
		"Headlights",
		"Interior Lights",
		"Electric locomotive operating sounds",
	}, matchingFirstCells)
}

func TestQueryExcelClipboardTable(t *testing.T) {
	tree := Parse(excelClipboardHTML)

	tables := GetElementsByTagName("table", tree)
	require.Len(t, tables, 1)

	table := tables[0]
	require.Equal(t, "0", GetValue("border", table.Attr))
	require.Equal(t, "216", GetValue("width", table.Attr))

	tds := GetElementsByTagName("td", tree)
	require.Len(t, tds, 18)
}

func TestCreateDicts(t *testing.T) {
	tree := Parse(`<div id="a" class="x y"><span id="b" class="y z">hi</span></div>`)

	ids := CreateIDDict(tree)
	require.Len(t, ids["a"], 1)
	require.Len(t, ids["b"], 1)

	tags := CreateTagDict(tree)
	require.Len(t, tags["div"], 1)
	require.Len(t, tags["span"], 1)

	classes := CreateClassDict(tree)
	require.Len(t, classes["x"], 1)
	require.Len(t, classes["y"], 2)
	require.Len(t, classes["z"], 1)
}

func TestFindElement(t *testing.T) {
	tree := Parse(`<div><p id="target">hi</p><p>bye</p></div>`)

	found := FindElement(func(tag string, attrs []Attribute) bool {
		return GetID(attrs) == "target"
	}, tree)
	require.NotNil(t, found)
	require.Equal(t, "hi", TextContent(found.Children))

	all := FindElements(func(tag string, _ []Attribute) bool {
		return tag == "p"
	}, tree)
	require.Len(t, all, 2)
}

func TestGetElementByID(t *testing.T) {
	tree := Parse(`<div><span id="x">one</span><span id="x">two</span></div>`)
	found := GetElementByID("x", tree)
	require.Len(t, found, 1)
	require.Equal(t, "one", TextContent(found[0].Children))

	require.Nil(t, GetElementByID("missing", tree))
}

func TestMapFilterTopLevelOnly(t *testing.T) {
	tree := Parse(`<a></a><b><a></a></b>`)

	tags := MapElements(func(tag string, _ []Attribute, _ []*Node) string {
		return tag
	}, tree)
	require.Equal(t, []string{"a", "b"}, tags)

	as := FilterElements(func(tag string, _ []Attribute, _ []*Node) bool {
		return tag == "a"
	}, tree)
	require.Len(t, as, 1)
}
