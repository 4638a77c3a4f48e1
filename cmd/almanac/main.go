package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "almanac",
		Usage: "Render daily reflections and motivational quotes into static site pages",
		Description: `
       _
  __ _| |_ __  __ _ _ _  __ _ __
 / _' | | '  \/ _' | ' \/ _' / _|
 \__,_|_|_|_|_\__,_|_||_\__,_\__|

 Fills page mounts with the latest entry of a JSON feed and its history.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "error",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the site config file (default: <site>/almanac.yaml)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			renderCmd(),
			buildCmd(),
			serveCmd(),
			previewCmd(),
			initCmd(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
