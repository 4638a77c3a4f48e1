package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/offgrid/almanac/server"
	"github.com/urfave/cli/v3"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve a site locally, rendering routed pages on every request",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "site",
				Aliases: []string{"s"},
				Usage:   "Site directory",
				Value:   ".",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
				Value: 8080,
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

			s := &server.Server{
				Site:       os.DirFS(site),
				Controller: newController(cfg, r),
			}

			addr := fmt.Sprintf(":%d", cmd.Int("port"))
			srv := &http.Server{Addr: addr, Handler: s.Handler()}
			go func() {
				<-ctx.Done()
				srv.Close()
			}()

			routes := s.Controller.Router.Routes()
			for _, id := range slices.Sorted(maps.Keys(routes)) {
				log.Info("route", "page", "/"+id, "kind", routes[id])
			}
			log.Info("serving", "addr", "http://localhost"+addr, "site", site)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}
