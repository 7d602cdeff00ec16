// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Command spacectl manages scientists, planets, and missions.  It
// normally talks to a running spaced server:
//
//     spacectl --url http://localhost:5555/ scientist list
//     spacectl planet add --name Mars --distance 225 --star Sun
//     spacectl mission add --name Survey --scientist 1 --planet 2
//     spacectl mission list --planet 2
//
// With --backend it instead opens a storage backend directly, such as
// --backend sqlite:app.db.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/diffeo/go-spacelab/backend"
	"github.com/diffeo/go-spacelab/restclient"
	"github.com/diffeo/go-spacelab/space"
	"github.com/urfave/cli"
)

// ctl holds the state shared by every command.
type ctl struct {
	Store space.Store
	Out   io.Writer
}

func newApp(out io.Writer) *cli.App {
	c := &ctl{Out: out}
	var storage backend.Backend

	app := cli.NewApp()
	app.Name = "spacectl"
	app.Usage = "manage the spacelab registry"
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "url",
			Value:  "http://localhost:5555/",
			Usage:  "base URL of the spacelab REST API",
			EnvVar: "SPACELAB_URL",
		},
		cli.GenericFlag{
			Name:  "backend",
			Value: &storage,
			Usage: "use this database URI or impl:[address] instead of the REST API",
		},
	}
	app.Commands = []cli.Command{
		c.scientistCommand(),
		c.planetCommand(),
		c.missionCommand(),
	}
	app.Before = func(ctx *cli.Context) (err error) {
		if storage.Implementation != "" {
			c.Store, err = storage.Store()
		} else {
			c.Store, err = restclient.New(ctx.String("url"))
		}
		return
	}
	return app
}

func main() {
	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
