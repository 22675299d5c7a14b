package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	dom "github.com/gompdf/pagelinks/internal/parser/html"
	"github.com/gompdf/pagelinks/internal/render"
	pdfrender "github.com/gompdf/pagelinks/internal/render/pdf"
	"github.com/gompdf/pagelinks/internal/res"
	"github.com/gompdf/pagelinks/pkg/api"
	cli "github.com/urfave/cli/v3"
)

// controllerOptions merges the configuration file with the page flags
func (st *state) controllerOptions(cmd *cli.Command) []api.Option {
	opts := st.cfg.Options()
	if cmd.IsSet("total") {
		opts = append(opts, api.WithItemCount(cmd.Int("total")))
	}
	if cmd.IsSet("per-page") {
		opts = append(opts, api.WithItemsPerPage(cmd.Int("per-page")))
	}
	if cmd.IsSet("page") {
		opts = append(opts, api.WithStartingPage(cmd.Int("page")))
	}
	if cmd.IsSet("margin-pages") {
		opts = append(opts, api.WithMarginPageCount(cmd.Int("margin-pages")))
	}
	if cmd.IsSet("center-pages") {
		opts = append(opts, api.WithCenterPageCount(cmd.Int("center-pages")))
	}
	return opts
}

// countController builds a controller over a plain item count
func (st *state) countController(cmd *cli.Command) (*api.Controller, error) {
	if !cmd.IsSet("total") {
		if _, ok := st.cfg.Items.(int); !ok {
			return nil, fmt.Errorf("--total is required")
		}
	}
	return api.New(st.controllerOptions(cmd)...), nil
}

func infoCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Print the page information for an item count",
		Flags: append(pageFlags(), &cli.BoolFlag{
			Name:  "json",
			Usage: "Print the page information as JSON",
		}),
		Action: func(_ context.Context, cmd *cli.Command) error {
			c, err := st.countController(cmd)
			if err != nil {
				return err
			}
			out := cmd.Root().Writer
			if cmd.Bool("json") {
				return writeJSON(out, c.Info())
			}
			return writeInfo(out, c.Info())
		},
	}
}

func layoutCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "layout",
		Usage: "Print the pages shown by the control for an item count",
		Flags: append(pageFlags(), &cli.BoolFlag{
			Name:  "json",
			Usage: "Print the layout as JSON",
		}),
		Action: func(_ context.Context, cmd *cli.Command) error {
			c, err := st.countController(cmd)
			if err != nil {
				return err
			}
			out := cmd.Root().Writer
			if cmd.Bool("json") {
				return writeJSON(out, c.Layout())
			}
			return writeLayout(out, c.Layout(), c.Entries())
		},
	}
}

func htmlCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "html",
		Usage: "Paginate the elements of an HTML document and render the control into it",
		Flags: append(pageFlags(), documentFlags()...),
		Action: func(_ context.Context, cmd *cli.Command) error {
			doc, c, err := st.documentController(cmd)
			if err != nil {
				return err
			}
			slog.Debug("document paginated", "page", c.Info().CurrentPage, "total_pages", c.Info().TotalPages)

			if output := cmd.String("output"); output != "" {
				var buf bytes.Buffer
				if err := doc.Render(&buf); err != nil {
					return err
				}
				return writeFile(output, buf.Bytes())
			}
			return doc.Render(cmd.Root().Writer)
		},
	}
}

func pdfCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "pdf",
		Usage: "Render one page of items and its control to PDF",
		Flags: append(pageFlags(), append(documentFlags(),
			&cli.StringFlag{
				Name:  "title",
				Usage: "Document title",
				Value: "Page links",
			},
			&cli.BoolFlag{
				Name:  "landscape",
				Usage: "Use landscape orientation",
			},
		)...),
		Action: func(_ context.Context, cmd *cli.Command) error {
			output := cmd.String("output")
			if output == "" {
				return fmt.Errorf("--output is required")
			}

			var (
				c     *api.Controller
				items []string
				err   error
			)
			if cmd.String("input") != "" {
				_, c, err = st.documentController(cmd)
				if err != nil {
					return err
				}
				for _, n := range c.CurrentItems() {
					items = append(items, strings.TrimSpace(dom.TextContent(n)))
				}
			} else {
				c, err = st.countController(cmd)
				if err != nil {
					return err
				}
				items = itemLabels(c.Info())
			}

			renderer := pdfrender.NewRenderer()
			renderer.Debug = st.cfg.Debug
			opts := pdfrender.RenderOptions{
				Title:    cmd.String("title"),
				Creator:  "pagelinks",
				Producer: "pagelinks " + version,
			}
			if cmd.Bool("landscape") {
				opts.Orientation = "L"
			}
			page := pdfrender.Page{
				Heading: cmd.String("title"),
				Info:    c.Info(),
				Items:   items,
				Entries: c.Entries(),
			}
			if err := renderer.RenderFile(output, page, opts); err != nil {
				return err
			}
			slog.Info("wrote pdf", "path", output)
			return nil
		},
	}
}

// documentController loads the input document and paginates it
func (st *state) documentController(cmd *cli.Command) (*api.Document, *api.Controller, error) {
	input := cmd.String("input")
	if input == "" {
		return nil, nil, fmt.Errorf("--input is required")
	}

	items := cmd.String("items")
	if items == "" {
		if s, ok := st.cfg.Items.(string); ok {
			items = s
		}
	}
	if items == "" {
		return nil, nil, fmt.Errorf("--items is required")
	}

	loader := res.NewLoader("")
	if wd, err := os.Getwd(); err == nil {
		loader.AddSearchPath(wd)
	}
	resource, err := loader.LoadHTML(input)
	if err != nil {
		return nil, nil, err
	}
	doc, err := api.ParseHTML(resource.GetReader())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", input, err)
	}

	opts := append(st.controllerOptions(cmd), api.WithDocument(doc), api.WithItems(items))
	if container := cmd.String("container"); container != "" {
		opts = append(opts, api.WithPaginateContainer(container))
	}
	if tag := cmd.String("element"); tag != "" {
		opts = append(opts, api.WithElementTag(tag))
	}
	return doc, api.New(opts...), nil
}

// itemLabels numbers the items of the current page from one
func itemLabels(info api.PageInfo) []string {
	if info.TotalItemCount == 0 {
		return nil
	}
	labels := make([]string, 0, info.LastItemIndex-info.FirstItemIndex+1)
	for i := info.FirstItemIndex; i <= info.LastItemIndex; i++ {
		labels = append(labels, "Item "+strconv.Itoa(i+1))
	}
	return labels
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeInfo(w io.Writer, info api.PageInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		key   string
		value any
	}{
		{"total items", info.TotalItemCount},
		{"items per page", info.ItemsPerPage},
		{"total pages", info.TotalPages},
		{"current page", info.CurrentPage},
		{"first item", info.FirstItemIndex},
		{"last item", info.LastItemIndex},
		{"first page", info.IsFirstPage},
		{"last page", info.IsLastPage},
		{"prev target", info.PrevTarget},
		{"next target", info.NextTarget},
		{"near start", info.IsNearStart},
		{"near end", info.IsNearEnd},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%v\n", row.key, row.value)
	}
	return tw.Flush()
}

func writeLayout(w io.Writer, layout api.PageLayout, entries []api.ControlEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "left\t%s\n", joinPages(layout.LeftMarginPages))
	fmt.Fprintf(tw, "center\t%s\n", joinPages(layout.CenterPages))
	fmt.Fprintf(tw, "right\t%s\n", joinPages(layout.RightMarginPages))
	fmt.Fprintf(tw, "control\t%s\n", strings.Join(render.Labels(entries), " "))
	return tw.Flush()
}

func joinPages(pages []int) string {
	if len(pages) == 0 {
		return "-"
	}
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, " ")
}

func writeFile(path string, data []byte) error {
	const defaultDirPerms = 0o750
	if err := os.MkdirAll(filepath.Dir(path), defaultDirPerms); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	const defaultFilePerms = 0o600
	if err := os.WriteFile(path, data, defaultFilePerms); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
