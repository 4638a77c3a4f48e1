package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/offgrid/almanac/core"
	"github.com/urfave/cli/v3"
)

func previewCmd() *cli.Command {
	return &cli.Command{
		Name:  "preview",
		Usage: "Fetch a feed and print its view without touching any page",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "site",
				Aliases: []string{"s"},
				Usage:   "Site directory",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Usage:   "Content kind: reflections, motivation",
				Value:   string(core.KindReflections),
			},
			&cli.StringFlag{
				Name:  "o",
				Usage: "Output format: terminal, json, html",
				Value: "terminal",
			},
		}, feedFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			kind, ok := core.ParseKind(cmd.String("kind"))
			if !ok || kind == core.KindNone {
				return fmt.Errorf("unknown content kind %q", cmd.String("kind"))
			}

			site := cmd.String("site")
			cfg, err := loadConfig(cmd, site)
			if err != nil {
				return err
			}
			r, err := newReader(cmd, site)
			if err != nil {
				return err
			}

			rnd, err := newApp().renderer(cmd.String("o"), cfg)
			if err != nil {
				return err
			}

			view, fetched := newController(cfg, r).View(ctx, kind)
			if !fetched {
				log.Warn("feed unavailable, showing empty view", "kind", kind)
			}
			if err := rnd.Render(os.Stdout, view); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			return nil
		},
	}
}
