package api

import (
	"github.com/gompdf/pagelinks/internal/render"
	htmlrender "github.com/gompdf/pagelinks/internal/render/html"
)

// htmlControl renders the control as elements of the container node
type htmlControl struct {
	renderer *htmlrender.Renderer
	style    render.Style
}

func (h *htmlControl) RenderControl(info PageInfo, layout PageLayout) {
	h.renderer.Render(render.BuildEntries(info, layout, h.style))
}

// style collects the labels and classes used for control entries
func (o Options) style() render.Style {
	return render.Style{
		ClassName:           o.ClassName,
		Prefix:              o.Prefix,
		SkipLabels:          o.SkipLabels,
		SkipLabelsInclusive: o.SkipLabelsInclusive,
		IncrementLabels:     o.IncrementLabels,
		Divider:             o.Divider,
	}
}
