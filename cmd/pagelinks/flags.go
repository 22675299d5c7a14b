package main

import (
	cli "github.com/urfave/cli/v3"
)

// globalFlags returns the flags shared by every subcommand.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn or error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text or json",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "Write logs to a rotated file instead of stderr",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable verbose logging",
		},
	}
}

// pageFlags returns the flags selecting the item count and page.
func pageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "total",
			Aliases: []string{"n"},
			Usage:   "Total number of items",
		},
		&cli.IntFlag{
			Name:    "per-page",
			Aliases: []string{"p"},
			Usage:   "Items per page",
		},
		&cli.IntFlag{
			Name:  "page",
			Usage: "Zero-based page to select",
		},
		&cli.IntFlag{
			Name:  "margin-pages",
			Usage: "Pages pinned at each end of the control",
		},
		&cli.IntFlag{
			Name:  "center-pages",
			Usage: "Width of the window around the current page",
		},
	}
}

// documentFlags returns the flags of the commands reading an HTML document.
func documentFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "HTML file or URL",
		},
		&cli.StringFlag{
			Name:  "items",
			Usage: "Selector of the paginated elements",
		},
		&cli.StringFlag{
			Name:  "container",
			Usage: "Selector of the element receiving the page links",
		},
		&cli.StringFlag{
			Name:  "element",
			Usage: "Element kind of the page links: div, span, a, li, th or td",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path",
		},
	}
}
