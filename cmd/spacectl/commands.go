// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/diffeo/go-spacelab/space"
	"github.com/urfave/cli"
)

// idArg parses the single positional ID argument of a command.
func idArg(ctx *cli.Context) (int, error) {
	if ctx.NArg() != 1 {
		return 0, errors.New("expected exactly one ID argument")
	}
	id, err := strconv.Atoi(ctx.Args().First())
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", ctx.Args().First())
	}
	return id, nil
}

// table runs f with a tabwriter on the command output and flushes it.
func (c *ctl) table(header string, f func(w *tabwriter.Writer)) error {
	w := tabwriter.NewWriter(c.Out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, header)
	f(w)
	return w.Flush()
}

func (c *ctl) scientistCommand() cli.Command {
	return cli.Command{
		Name:  "scientist",
		Usage: "manage scientists",
		Subcommands: []cli.Command{
			{
				Name:  "list",
				Usage: "list all scientists",
				Action: func(ctx *cli.Context) error {
					scientists, err := c.Store.Scientists()
					if err != nil {
						return err
					}
					return c.table("ID\tNAME\tFIELD OF STUDY", func(w *tabwriter.Writer) {
						for _, sci := range scientists {
							fmt.Fprintf(w, "%d\t%s\t%s\n", sci.ID, sci.Name, sci.FieldOfStudy)
						}
					})
				},
			},
			{
				Name:      "show",
				Usage:     "show one scientist and their missions",
				ArgsUsage: "ID",
				Action: func(ctx *cli.Context) error {
					id, err := idArg(ctx)
					if err != nil {
						return err
					}
					sci, err := c.Store.Scientist(id)
					if err != nil {
						return err
					}
					missions, err := c.Store.Missions(space.MissionQuery{ScientistID: id})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.Out, "%d: %s (%s)\n", sci.ID, sci.Name, sci.FieldOfStudy)
					return c.missionTable(missions)
				},
			},
			{
				Name:  "add",
				Usage: "create a new scientist",
				Flags: []cli.Flag{
					cli.StringFlag{Name: "name", Usage: "scientist's name"},
					cli.StringFlag{Name: "field", Usage: "field of study"},
				},
				Action: func(ctx *cli.Context) error {
					sci, err := c.Store.AddScientist(space.Scientist{
						Name:         ctx.String("name"),
						FieldOfStudy: ctx.String("field"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintln(c.Out, sci.ID)
					return nil
				},
			},
			{
				Name:      "rm",
				Usage:     "delete a scientist and their missions",
				ArgsUsage: "ID",
				Action: func(ctx *cli.Context) error {
					id, err := idArg(ctx)
					if err != nil {
						return err
					}
					return c.Store.DestroyScientist(id)
				},
			},
		},
	}
}

func (c *ctl) planetCommand() cli.Command {
	return cli.Command{
		Name:  "planet",
		Usage: "manage planets",
		Subcommands: []cli.Command{
			{
				Name:  "list",
				Usage: "list all planets",
				Action: func(ctx *cli.Context) error {
					planets, err := c.Store.Planets()
					if err != nil {
						return err
					}
					return c.table("ID\tNAME\tDISTANCE\tNEAREST STAR", func(w *tabwriter.Writer) {
						for _, planet := range planets {
							fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", planet.ID, planet.Name,
								planet.DistanceFromEarth, planet.NearestStar)
						}
					})
				},
			},
			{
				Name:      "show",
				Usage:     "show one planet and its missions",
				ArgsUsage: "ID",
				Action: func(ctx *cli.Context) error {
					id, err := idArg(ctx)
					if err != nil {
						return err
					}
					planet, err := c.Store.Planet(id)
					if err != nil {
						return err
					}
					missions, err := c.Store.Missions(space.MissionQuery{PlanetID: id})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.Out, "%d: %s (%d from Earth, near %s)\n", planet.ID,
						planet.Name, planet.DistanceFromEarth, planet.NearestStar)
					return c.missionTable(missions)
				},
			},
			{
				Name:  "add",
				Usage: "create a new planet",
				Flags: []cli.Flag{
					cli.StringFlag{Name: "name", Usage: "planet's name"},
					cli.IntFlag{Name: "distance", Usage: "distance from Earth"},
					cli.StringFlag{Name: "star", Usage: "nearest star"},
				},
				Action: func(ctx *cli.Context) error {
					planet, err := c.Store.AddPlanet(space.Planet{
						Name:              ctx.String("name"),
						DistanceFromEarth: ctx.Int("distance"),
						NearestStar:       ctx.String("star"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintln(c.Out, planet.ID)
					return nil
				},
			},
			{
				Name:      "rm",
				Usage:     "delete a planet and its missions",
				ArgsUsage: "ID",
				Action: func(ctx *cli.Context) error {
					id, err := idArg(ctx)
					if err != nil {
						return err
					}
					return c.Store.DestroyPlanet(id)
				},
			},
		},
	}
}

func (c *ctl) missionTable(missions []space.Mission) error {
	return c.table("ID\tNAME\tSCIENTIST\tPLANET", func(w *tabwriter.Writer) {
		for _, m := range missions {
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", m.ID, m.Name, m.ScientistID, m.PlanetID)
		}
	})
}

func (c *ctl) missionCommand() cli.Command {
	return cli.Command{
		Name:  "mission",
		Usage: "manage missions",
		Subcommands: []cli.Command{
			{
				Name:  "list",
				Usage: "list missions",
				Flags: []cli.Flag{
					cli.IntFlag{Name: "scientist", Usage: "only missions of this scientist ID"},
					cli.IntFlag{Name: "planet", Usage: "only missions to this planet ID"},
				},
				Action: func(ctx *cli.Context) error {
					missions, err := c.Store.Missions(space.MissionQuery{
						ScientistID: ctx.Int("scientist"),
						PlanetID:    ctx.Int("planet"),
					})
					if err != nil {
						return err
					}
					return c.missionTable(missions)
				},
			},
			{
				Name:      "show",
				Usage:     "show one mission",
				ArgsUsage: "ID",
				Action: func(ctx *cli.Context) error {
					id, err := idArg(ctx)
					if err != nil {
						return err
					}
					m, err := c.Store.Mission(id)
					if err != nil {
						return err
					}
					return c.missionTable([]space.Mission{m})
				},
			},
			{
				Name:  "add",
				Usage: "send a scientist to a planet",
				Flags: []cli.Flag{
					cli.StringFlag{Name: "name", Usage: "mission name"},
					cli.IntFlag{Name: "scientist", Usage: "scientist ID"},
					cli.IntFlag{Name: "planet", Usage: "planet ID"},
				},
				Action: func(ctx *cli.Context) error {
					m, err := c.Store.AddMission(space.Mission{
						Name:        ctx.String("name"),
						ScientistID: ctx.Int("scientist"),
						PlanetID:    ctx.Int("planet"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintln(c.Out, m.ID)
					return nil
				},
			},
			{
				Name:      "rm",
				Usage:     "delete a mission",
				ArgsUsage: "ID",
				Action: func(ctx *cli.Context) error {
					id, err := idArg(ctx)
					if err != nil {
						return err
					}
					return c.Store.DestroyMission(id)
				},
			},
		},
	}
}
