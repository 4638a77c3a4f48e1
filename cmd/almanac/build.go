package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/offgrid/almanac/core"
	"github.com/offgrid/almanac/page"
	"github.com/offgrid/almanac/watch"
	"github.com/urfave/cli/v3"
)

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Render every routed page of a site into an output directory",
		Description: `Walks the site directory. Routed HTML pages are rendered with their
feed content; every other file is copied unchanged.`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "site",
				Aliases: []string{"s"},
				Usage:   "Site directory",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:     "out",
				Aliases:  []string{"o"},
				Usage:    "Output directory",
				Required: true,
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Rebuild whenever a file in the site changes",
			},
		}, feedFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			site := cmd.String("site")

			cfg, err := loadConfig(cmd, site)
			if err != nil {
				return err
			}
			r, err := newReader(cmd, site)
			if err != nil {
				return err
			}

			c := newController(cfg, r)
			out := cmd.String("out")

			n, err := buildSite(ctx, c, site, out)
			if err != nil {
				return err
			}
			log.Info("built", "site", site, "out", out, "pages", n)

			if !cmd.Bool("watch") {
				return nil
			}

			w, err := watch.New(site, out)
			if err != nil {
				return fmt.Errorf("watch %s: %w", site, err)
			}
			log.Info("watching", "site", site)
			return w.Run(ctx, func() {
				n, err := buildSite(ctx, c, site, out)
				if err != nil {
					log.Error("rebuild", "err", err)
					return
				}
				log.Info("rebuilt", "pages", n)
			})
		},
	}
}

// buildSite mirrors site into out, rendering routed pages. It returns the
// number of pages rendered.
func buildSite(ctx context.Context, c *page.Controller, site, out string) (int, error) {
	outAbs, err := filepath.Abs(out)
	if err != nil {
		return 0, err
	}

	rendered := 0
	err = filepath.WalkDir(site, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		if abs == outAbs {
			return filepath.SkipDir
		}

		rel, err := filepath.Rel(site, p)
		if err != nil {
			return err
		}
		dst := filepath.Join(out, rel)
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}

		location := filepath.ToSlash(rel)
		if !strings.HasSuffix(location, ".html") || c.Router.Resolve(location) == core.KindNone {
			return copyFile(p, dst)
		}

		if err := renderFile(ctx, c, location, p, dst); err != nil {
			return err
		}
		rendered++
		return nil
	})
	return rendered, err
}

func renderFile(ctx context.Context, c *page.Controller, location, src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	kind, err := c.LoadPage(ctx, location, in, out)
	if err != nil {
		return err
	}
	log.Debug("rendered page", "page", location, "kind", kind)
	return out.Close()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
