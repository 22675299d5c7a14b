package pagination

// Layout lists the page numbers shown by a page-link control, split into
// the left margin, the sliding center window and the right margin.
type Layout struct {
	LeftMarginPages  []int `json:"leftMarginPages"`
	CenterPages      []int `json:"centerPages"`
	RightMarginPages []int `json:"rightMarginPages"`
}

// Pages returns the three groups concatenated in display order
func (l Layout) Pages() []int {
	pages := make([]int, 0, len(l.LeftMarginPages)+len(l.CenterPages)+len(l.RightMarginPages))
	pages = append(pages, l.LeftMarginPages...)
	pages = append(pages, l.CenterPages...)
	pages = append(pages, l.RightMarginPages...)
	return pages
}

// PageRange returns length consecutive page indexes beginning at start.
// example output: [22 23 24 25 26 27]
func PageRange(start, length int) []int {
	if length < 0 {
		length = 0
	}
	pages := make([]int, 0, length)
	for i := start; i < start+length; i++ {
		pages = append(pages, i)
	}
	return pages
}

// ComputeLayout plans which page numbers to show for info.
// Margins disappear on the side where the center window reaches them; the
// center window then grows to cover that edge instead.
func ComputeLayout(info Info, cfg Config) Layout {
	cfg = cfg.Normalize()
	centerOffset := cfg.CenterOffset()

	centerStart := info.CurrentPage - centerOffset
	centerLength := cfg.CenterPageCount

	// Margins may be configured wider than the center window
	maxFromConfig := max(cfg.CenterPageCount, cfg.MarginPageCount)

	if info.IsNearStart {
		centerStart = 0
		centerLength = max(info.CurrentPage+centerOffset+DividerOffset, maxFromConfig)
	}

	if info.IsNearEnd {
		startIndex := info.CurrentPage - centerOffset
		// With few pages both flags are set and the window stays anchored at zero
		if !info.IsNearStart {
			centerStart = min(startIndex, info.TotalPages-maxFromConfig)
		}
		centerLength = info.TotalPages - centerStart
	}

	leftLength := cfg.MarginPageCount
	if info.IsNearStart {
		leftLength = 0
	}
	rightLength := cfg.MarginPageCount
	if info.IsNearEnd {
		rightLength = 0
	}

	return Layout{
		LeftMarginPages:  PageRange(0, leftLength),
		CenterPages:      PageRange(centerStart, centerLength),
		RightMarginPages: PageRange(info.TotalPages-cfg.MarginPageCount, rightLength),
	}
}
