package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Render one page and write the result to stdout",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "page",
				Aliases:  []string{"p"},
				Usage:    "Path to the page markup",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "location",
				Usage: "Location used for routing (default: the page file name)",
			},
		}, feedFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			pagePath := cmd.String("page")
			site := filepath.Dir(pagePath)

			cfg, err := loadConfig(cmd, site)
			if err != nil {
				return err
			}
			r, err := newReader(cmd, site)
			if err != nil {
				return err
			}

			location := cmd.String("location")
			if location == "" {
				location = filepath.Base(pagePath)
			}

			f, err := os.Open(pagePath)
			if err != nil {
				return fmt.Errorf("open page: %w", err)
			}
			defer f.Close()

			kind, err := newController(cfg, r).LoadPage(ctx, location, f, os.Stdout)
			if err != nil {
				return err
			}
			log.Info("rendered", "page", pagePath, "kind", kind)
			return nil
		},
	}
}
