package api

import (
	"fmt"
	"math"
	"strings"
	"testing"

	dom "github.com/gompdf/pagelinks/internal/parser/html"
	htmlrender "github.com/gompdf/pagelinks/internal/render/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xhtml "golang.org/x/net/html"
)

type recordingRenderer struct {
	calls   int
	infos   []PageInfo
	layouts []PageLayout
}

func (r *recordingRenderer) RenderControl(info PageInfo, layout PageLayout) {
	r.calls++
	r.infos = append(r.infos, info)
	r.layouts = append(r.layouts, layout)
}

func listDocument(t *testing.T, n int) *Document {
	t.Helper()
	var b strings.Builder
	b.WriteString(`<html><body><ul id="list">`)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, `<li class="item">%d</li>`, i)
	}
	b.WriteString(`</ul><div id="pager"></div></body></html>`)
	doc, err := ParseHTMLString(b.String())
	require.NoError(t, err)
	return doc
}

func childTexts(n *xhtml.Node) []string {
	var out []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, dom.TextContent(c))
	}
	return out
}

func TestControllerCountSource(t *testing.T) {
	c := New(WithItemCount(95), WithItemsPerPage(10))

	info := c.Info()
	assert.Equal(t, 10, info.TotalPages)
	assert.True(t, info.IsFirstPage)
	assert.Equal(t, 0, info.FirstItemIndex)
	assert.Equal(t, 9, info.LastItemIndex)

	c.SetPage(9)
	info = c.Info()
	assert.True(t, info.IsLastPage)
	assert.Equal(t, 90, info.FirstItemIndex)
	assert.Equal(t, 94, info.LastItemIndex)
	assert.Empty(t, c.CurrentItems())
}

func TestControllerZeroItems(t *testing.T) {
	c := New(WithItemCount(0))
	info := c.Info()
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, 0, info.CurrentPage)
	assert.Equal(t, 0, info.FirstItemIndex)
	assert.Equal(t, 0, info.LastItemIndex)
}

func TestControllerStartingPageIsClamped(t *testing.T) {
	assert.Equal(t, 3, New(WithItemCount(50), WithStartingPage(3)).Info().CurrentPage)
	assert.Equal(t, 4, New(WithItemCount(50), WithStartingPage(100)).Info().CurrentPage)
	assert.Equal(t, 0, New(WithItemCount(50), WithStartingPage(-7)).Info().CurrentPage)
}

func TestControllerHooks(t *testing.T) {
	var created []int
	var selected []int
	c := New(
		WithItemCount(95),
		WithOnPagesCreated(func(totalPages int) { created = append(created, totalPages) }),
		WithOnPageSelected(func(info PageInfo) { selected = append(selected, info.CurrentPage) }),
		WithStartingPage(2),
	)
	c.Next()
	c.Prev()
	c.SetPage(50)
	c.Redo()

	assert.Equal(t, []int{10}, created)
	assert.Equal(t, []int{2, 3, 2, 9, 0}, selected)
}

func TestControllerNextPrevMoveByOne(t *testing.T) {
	c := New(WithItemCount(100), WithIncrementStep(3))

	c.Next()
	assert.Equal(t, 1, c.Info().CurrentPage)
	assert.Equal(t, 4, c.Info().NextTarget)
	c.Next()
	assert.Equal(t, 2, c.Info().CurrentPage)
	c.Prev()
	c.Prev()
	c.Prev()
	assert.Equal(t, 0, c.Info().CurrentPage)

	c.SetPage(9)
	c.Next()
	assert.Equal(t, 9, c.Info().CurrentPage)
}

func TestControllerRedoResetsToFirstPage(t *testing.T) {
	c := New(WithItemCount(95), WithStartingPage(5))
	require.Equal(t, 5, c.Info().CurrentPage)

	c.Redo(WithItemsPerPage(20))
	info := c.Info()
	assert.Equal(t, 0, info.CurrentPage)
	assert.Equal(t, 5, info.TotalPages)
	assert.Equal(t, 20, info.ItemsPerPage)
}

func TestControllerRedoWithUnusableItemsKeepsTotal(t *testing.T) {
	c := New(WithItemCount(95))
	c.Redo(WithItems(map[string]int{}))
	assert.Equal(t, 95, c.Info().TotalItemCount)
	assert.Equal(t, 10, c.Info().TotalPages)
}

func TestControllerRedoWithUnusableItemsKeepsElements(t *testing.T) {
	doc := listDocument(t, 25)
	c := New(WithDocument(doc), WithItems("#list li"))
	list := doc.QuerySelector("#list")

	c.Redo(WithItems(map[string]int{}))
	assert.Equal(t, 25, c.Info().TotalItemCount)
	assert.Len(t, c.CurrentItems(), 10)

	c.SetPage(2)
	assert.Equal(t, []string{"21", "22", "23", "24", "25"}, childTexts(list))
}

func TestControllerUnusableItemsOnConstruction(t *testing.T) {
	c := New(WithItems(struct{}{}))
	assert.Equal(t, 0, c.Info().TotalItemCount)
	assert.Equal(t, 1, c.Info().TotalPages)
}

func TestSetPageValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{name: "int", value: 4, want: 4},
		{name: "int64", value: int64(3), want: 3},
		{name: "uint", value: uint(2), want: 2},
		{name: "float truncates", value: 5.9, want: 5},
		{name: "numeric string", value: "7", want: 7},
		{name: "string with suffix", value: " 6px", want: 6},
		{name: "negative string clamps", value: "-3", want: 0},
		{name: "plus sign", value: "+8", want: 8},
		{name: "not a number", value: "abc", want: 0},
		{name: "empty", value: "", want: 0},
		{name: "nan", value: math.NaN(), want: 0},
		{name: "nil", value: nil, want: 0},
		{name: "bool", value: true, want: 0},
		{name: "out of range", value: "400", want: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(WithItemCount(100), WithStartingPage(1))
			c.SetPageValue(tt.value)
			assert.Equal(t, tt.want, c.Info().CurrentPage)
		})
	}
}

func TestControllerRendersOnlyWhenPaginated(t *testing.T) {
	r := &recordingRenderer{}
	c := New(WithItemCount(5), WithRenderer(r))
	assert.Equal(t, 0, r.calls)
	c.SetPage(0)
	assert.Equal(t, 0, r.calls)

	always := &recordingRenderer{}
	New(WithItemCount(5), WithRenderer(always), WithAlwaysShowControl(true))
	assert.Equal(t, 1, always.calls)

	many := &recordingRenderer{}
	c = New(WithItemCount(500), WithRenderer(many))
	c.SetPage(25)
	require.Equal(t, 2, many.calls)
	assert.Equal(t, 25, many.infos[1].CurrentPage)
	assert.Equal(t, []int{0, 1}, many.layouts[1].LeftMarginPages)
	assert.Equal(t, []int{23, 24, 25, 26, 27}, many.layouts[1].CenterPages)
	assert.Equal(t, []int{48, 49}, many.layouts[1].RightMarginPages)
}

func TestControllerReentrantHookLastCallWins(t *testing.T) {
	doc := listDocument(t, 30)
	var c *Controller
	redirected := false
	c = New(
		WithDocument(doc),
		WithItems("li.item"),
		WithOnPageSelected(func(info PageInfo) {
			if info.CurrentPage == 1 && !redirected {
				redirected = true
				c.SetPage(2)
			}
		}),
	)
	c.SetPage(1)

	assert.Equal(t, 2, c.Info().CurrentPage)
	list := doc.QuerySelector("#list")
	assert.Equal(t, "21", childTexts(list)[0])
}

func TestControllerHTML(t *testing.T) {
	doc := listDocument(t, 25)
	c := New(
		WithDocument(doc),
		WithItems("#list li"),
		WithPaginateContainer("#pager"),
		WithElementTag("a"),
	)

	list := doc.QuerySelector("#list")
	pager := doc.QuerySelector("#pager")

	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, childTexts(list))
	assert.Equal(t, []string{"First", "Prev", "1", "2", "3", "Next", "Last"}, childTexts(pager))
	assert.Len(t, c.CurrentItems(), 10)

	// Click the "3" link
	var three *xhtml.Node
	for n := pager.FirstChild; n != nil; n = n.NextSibling {
		if dom.TextContent(n) == "3" {
			three = n
		}
	}
	require.NotNil(t, three)
	assert.Equal(t, "a", three.Data)
	assert.True(t, c.HandleClick(three))

	assert.Equal(t, 2, c.Info().CurrentPage)
	assert.Equal(t, []string{"21", "22", "23", "24", "25"}, childTexts(list))

	active := dom.NewDocument(pager).QuerySelectorAll(".page-active")
	require.Len(t, active, 1)
	assert.Equal(t, "3", dom.TextContent(active[0]))

	// Disabled buttons carry no page
	last := pager.LastChild
	assert.True(t, dom.HasClass(last, "page-disabled"))
	_, tagged := dom.Attr(last, htmlrender.PageAttr)
	assert.False(t, tagged)
	assert.False(t, c.HandleClick(last))

	// Clicks outside the container are ignored
	assert.False(t, c.HandleClick(list.FirstChild))
	assert.Equal(t, 2, c.Info().CurrentPage)

	c.Prev()
	assert.Equal(t, "11", childTexts(list)[0])
}

func TestControllerHTMLRedoKeepsElements(t *testing.T) {
	doc := listDocument(t, 25)
	c := New(WithDocument(doc), WithItems("li"), WithPaginateContainer("#pager"), WithStartingPage(2))
	list := doc.QuerySelector("#list")
	require.Len(t, childTexts(list), 5)

	c.Redo(WithItemsPerPage(20))
	assert.Equal(t, 25, c.Info().TotalItemCount)
	assert.Equal(t, 2, c.Info().TotalPages)
	assert.Len(t, childTexts(list), 20)
	assert.Equal(t, "1", childTexts(list)[0])
}

func TestControllerInvalidTagFallsBack(t *testing.T) {
	doc := listDocument(t, 25)
	c := New(WithDocument(doc), WithItems("li"), WithPaginateContainer("#pager"), WithElementTag("script"))

	assert.Equal(t, "span", c.Options().ElementTag)
	pager := doc.QuerySelector("#pager")
	assert.Equal(t, "span", pager.FirstChild.Data)
}

func TestControllerMissingContainer(t *testing.T) {
	doc := listDocument(t, 25)
	c := New(WithDocument(doc), WithItems("li"), WithPaginateContainer("#nowhere"))
	assert.Equal(t, 3, c.Info().TotalPages)
	assert.False(t, c.HandleClick(doc.QuerySelector("li")))
}

func TestControllerEntries(t *testing.T) {
	c := New(WithItemCount(500), WithStartingPage(25), WithSkipLabels(), WithDivider(""))
	var labels []string
	for _, e := range c.Entries() {
		labels = append(labels, e.Label)
	}
	assert.Equal(t, []string{"Prev", "1", "2", "24", "25", "26", "27", "28", "49", "50", "Next"}, labels)
	assert.Equal(t, []int{23, 24, 25, 26, 27}, c.Layout().CenterPages)
}

func TestLeadingInt(t *testing.T) {
	assert.Equal(t, 12, leadingInt("12abc"))
	assert.Equal(t, 0, leadingInt("-"))
	assert.Equal(t, 0, leadingInt("99999999999999999999999"))
}
