package main

import (
	"fmt"
	"path/filepath"

	"github.com/offgrid/almanac/config"
	"github.com/offgrid/almanac/core"
	"github.com/offgrid/almanac/page"
	"github.com/offgrid/almanac/reader"
	"github.com/offgrid/almanac/render"
	htmlrender "github.com/offgrid/almanac/render/html"
	jsonrender "github.com/offgrid/almanac/render/json"
	"github.com/offgrid/almanac/render/terminal"
	"github.com/urfave/cli/v3"
)

// app holds the renderer registry used by CLI commands.
type app struct {
	renderers map[string]func(cfg *config.Config) render.Renderer
}

func newApp() *app {
	return &app{
		renderers: map[string]func(cfg *config.Config) render.Renderer{
			"terminal": func(*config.Config) render.Renderer { return terminal.New() },
			"json":     func(*config.Config) render.Renderer { return &jsonrender.Renderer{Indent: true} },
			"html": func(cfg *config.Config) render.Renderer {
				r := htmlrender.New()
				r.Markdown = cfg.Markdown
				return r
			},
		},
	}
}

func (a *app) renderer(name string, cfg *config.Config) (render.Renderer, error) {
	fn, ok := a.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return fn(cfg), nil
}

// loadConfig reads --config, falling back to almanac.yaml inside site, then
// applies --locale and --markdown overrides when the command defines them.
func loadConfig(cmd *cli.Command, site string) (*config.Config, error) {
	path := cmd.String("config")
	if path == "" {
		path = filepath.Join(site, config.DefaultFile)
	}

	cfg, err := config.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("locale") {
		cfg.Locale = cmd.String("locale")
	}
	if cmd.IsSet("markdown") {
		cfg.Markdown = cmd.Bool("markdown")
	}
	return cfg, nil
}

// newReader picks the feed source: --data-url when set, else --data, else
// the site directory.
func newReader(cmd *cli.Command, site string) (reader.Reader, error) {
	if u := cmd.String("data-url"); u != "" {
		return reader.NewHTTP(u)
	}
	if dir := cmd.String("data"); dir != "" {
		return reader.Dir(dir), nil
	}
	return reader.Dir(site), nil
}

func newController(cfg *config.Config, r reader.Reader) *page.Controller {
	renderer := htmlrender.New()
	renderer.Markdown = cfg.Markdown

	mounts := make(map[core.Kind]page.Mounts)
	for kind, m := range cfg.MountKinds() {
		mounts[kind] = page.Mounts{Primary: m.Primary, Sources: m.Sources}
	}

	return &page.Controller{
		Router:     page.NewRouter(cfg.RouteKinds()),
		Reader:     r,
		Renderer:   renderer,
		Normalizer: core.NewNormalizer(cfg.Locale),
		Resources:  cfg.ResourceKinds(),
		Limits:     cfg.HistoryKinds(),
		Mounts:     mounts,
	}
}

// feedFlags are shared by every command that fetches feeds.
func feedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "data",
			Usage: "Directory feeds are read from (default: the site directory)",
		},
		&cli.StringFlag{
			Name:  "data-url",
			Usage: "Base URL feeds are fetched from, e.g. https://example.com/",
		},
		&cli.StringFlag{
			Name:  "locale",
			Usage: "Date locale: pt-BR, en-US, en-GB",
		},
		&cli.BoolFlag{
			Name:  "markdown",
			Usage: "Render reflection bodies as Markdown",
		},
	}
}
