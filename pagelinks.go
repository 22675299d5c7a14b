package pagelinks

import (
	"github.com/gompdf/pagelinks/pkg/api"
)

type Controller = api.Controller
type Options = api.Options
type Option = api.Option
type PageInfo = api.PageInfo
type PageLayout = api.PageLayout
type ControlEntry = api.ControlEntry
type ControlRenderer = api.ControlRenderer
type Document = api.Document

func New(opts ...Option) *Controller             { return api.New(opts...) }
func NewWithOptions(options Options) *Controller { return api.NewWithOptions(options) }
func DefaultOptions() Options                    { return api.DefaultOptions() }

var (
	ParseHTML               = api.ParseHTML
	ParseHTMLString         = api.ParseHTMLString
	WithItems               = api.WithItems
	WithItemCount           = api.WithItemCount
	WithDocument            = api.WithDocument
	WithItemsPerPage        = api.WithItemsPerPage
	WithStartingPage        = api.WithStartingPage
	WithPaginateContainer   = api.WithPaginateContainer
	WithClassName           = api.WithClassName
	WithPrefix              = api.WithPrefix
	WithSkipLabels          = api.WithSkipLabels
	WithSkipLabelsInclusive = api.WithSkipLabelsInclusive
	WithIncrementLabels     = api.WithIncrementLabels
	WithIncrementStep       = api.WithIncrementStep
	WithDivider             = api.WithDivider
	WithAlwaysShowControl   = api.WithAlwaysShowControl
	WithMarginPageCount     = api.WithMarginPageCount
	WithCenterPageCount     = api.WithCenterPageCount
	WithElementTag          = api.WithElementTag
	WithRenderer            = api.WithRenderer
	WithDebug               = api.WithDebug
	WithOnPagesCreated      = api.WithOnPagesCreated
	WithOnPageSelected      = api.WithOnPageSelected
)
