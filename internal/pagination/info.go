package pagination

// Info describes the current page of a pagination.
// A new Info is computed for every page change; it is never updated in place.
type Info struct {
	ItemsPerPage   int `json:"itemsPerPage"`
	TotalItemCount int `json:"totalItemCount"`
	TotalPages     int `json:"totalPages"`
	CurrentPage    int `json:"currentPage"`

	// Inclusive item bounds of the current page
	FirstItemIndex int `json:"firstItemIndex"`
	LastItemIndex  int `json:"lastItemIndex"`

	IsFirstPage bool `json:"isFirstPage"`
	IsLastPage  bool `json:"isLastPage"`

	// Pages the increment buttons lead to
	PrevTarget int `json:"prevTarget"`
	NextTarget int `json:"nextTarget"`

	IsNearStart bool `json:"isNearStart"`
	IsNearEnd   bool `json:"isNearEnd"`
}

// TotalPages returns the number of pages needed for totalItems, never less than one
func TotalPages(totalItems, itemsPerPage int) int {
	if itemsPerPage < 1 {
		itemsPerPage = DefaultItemsPerPage
	}
	pages := totalItems / itemsPerPage
	if totalItems%itemsPerPage != 0 {
		pages++
	}
	return max(pages, 1)
}

// ComputeInfo derives the page information for the requested page.
// Requests outside the valid range are clamped onto the first or last page.
func ComputeInfo(cfg Config, requested int) Info {
	cfg = cfg.Normalize()

	i := Info{
		ItemsPerPage:   cfg.ItemsPerPage,
		TotalItemCount: cfg.TotalItemCount,
		TotalPages:     TotalPages(cfg.TotalItemCount, cfg.ItemsPerPage),
	}

	i.CurrentPage = clamp(requested, 0, i.TotalPages-1)

	i.FirstItemIndex = i.CurrentPage * i.ItemsPerPage
	i.LastItemIndex = i.FirstItemIndex + i.ItemsPerPage - 1

	i.IsFirstPage = i.CurrentPage == 0
	i.IsLastPage = i.CurrentPage == i.TotalPages-1

	// The last page may be partial
	if i.IsLastPage {
		if i.TotalItemCount > 0 {
			i.LastItemIndex = i.TotalItemCount - 1
		} else {
			i.LastItemIndex = 0
		}
	}

	// The prev upper bound is TotalPages, not TotalPages-1. Kept for compatibility.
	i.PrevTarget = clamp(i.CurrentPage-cfg.IncrementStep, 0, i.TotalPages)
	i.NextTarget = clamp(i.CurrentPage+cfg.IncrementStep, 0, i.TotalPages-1)

	centerOffset := cfg.CenterOffset()
	if i.TotalPages <= cfg.CenterPageCount+2*cfg.MarginPageCount+2*DividerOffset {
		// Too few pages to split into margins and center
		i.IsNearStart = true
		i.IsNearEnd = true
	} else {
		i.IsNearStart = i.CurrentPage-centerOffset < cfg.MarginPageCount+DividerOffset
		i.IsNearEnd = i.CurrentPage+centerOffset >= i.TotalPages-cfg.MarginPageCount-DividerOffset
	}

	return i
}

// clamp bounds n to [lo, hi], checking the lower bound first
func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
