package pagination

// DividerOffset is the slack kept between a margin group and the center window.
const DividerOffset = 1

// Default values applied by Normalize
const (
	DefaultItemsPerPage    = 10
	DefaultMarginPageCount = 2
	DefaultCenterPageCount = 5
	DefaultIncrementStep   = 1
)

// Config holds the numeric configuration the calculator and planner work from
type Config struct {
	TotalItemCount  int
	ItemsPerPage    int
	MarginPageCount int
	// CenterPageCount should be at least 3; smaller values are accepted as-is.
	CenterPageCount int
	// IncrementStep is how far the prev/next targets jump.
	IncrementStep int
}

// DefaultConfig returns a configuration with no items and default windowing
func DefaultConfig() Config {
	return Config{
		ItemsPerPage:    DefaultItemsPerPage,
		MarginPageCount: DefaultMarginPageCount,
		CenterPageCount: DefaultCenterPageCount,
		IncrementStep:   DefaultIncrementStep,
	}
}

// CenterOffset returns the number of center pages shown on each side of the current page
func (c Config) CenterOffset() int {
	return c.CenterPageCount / 2
}

// Normalize replaces out-of-range values with their defaults.
// Negative counts become zero; sizes below one fall back to the default.
func (c Config) Normalize() Config {
	if c.TotalItemCount < 0 {
		c.TotalItemCount = 0
	}
	if c.ItemsPerPage < 1 {
		c.ItemsPerPage = DefaultItemsPerPage
	}
	if c.MarginPageCount < 0 {
		c.MarginPageCount = 0
	}
	if c.CenterPageCount < 1 {
		c.CenterPageCount = DefaultCenterPageCount
	}
	if c.IncrementStep < 1 {
		c.IncrementStep = DefaultIncrementStep
	}
	return c
}
