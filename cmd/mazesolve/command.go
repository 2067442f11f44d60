package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/floodmaze/maze"
	"github.com/katalvlaran/floodmaze/render"
)

var (
	// errNoDescription is returned when neither an argument, --maze nor
	// --file supplies a maze.
	errNoDescription = errors.New("no maze description given")
	// errUnsolvable is returned when the start cannot reach the goal.
	errUnsolvable = errors.New("maze has no path from start to goal")
)

// newCommand builds the root command. log receives progress and diagnostics;
// results go to the command's Writer.
func newCommand(log *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:      AppName,
		Usage:     "solve a w<W>h<H>s<S>g<G>#<tiles> maze by flood fill",
		Version:   Version,
		ArgsUsage: "[description]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "maze",
				Aliases: []string{"m"},
				Usage:   "maze description",
				Sources: cli.EnvVars("MAZE"),
			},
			&cli.StringFlag{
				Name:      "file",
				Aliases:   []string{"f"},
				Usage:     "read the maze description from `FILE`",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:      "png",
				Usage:     "also write the solved maze as PNG to `FILE`",
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:  "straight",
				Usage: "prefer continuing in the same direction on ties",
			},
			&cli.BoolFlag{
				Name:  "distances",
				Usage: "print the flood fill distance table",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("MAZE_DEBUG"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("debug") {
				log.SetLevel(logrus.DebugLevel)
			}
			return solve(cmd, log)
		},
	}
}

// solve runs decode → flood fill → solve and prints the result.
func solve(cmd *cli.Command, log *logrus.Logger) error {
	desc, err := description(cmd)
	if err != nil {
		return err
	}
	m, err := maze.Decode(desc)
	if err != nil {
		return fmt.Errorf("decoding maze: %w", err)
	}
	log.WithFields(logrus.Fields{
		"width":  m.Width(),
		"height": m.Height(),
		"start":  m.Start(),
		"goal":   m.Goal(),
	}).Debug("maze decoded")

	m.FloodFill()

	var opts []maze.Option
	if cmd.Bool("straight") {
		opts = append(opts, maze.WithTieBreak(maze.TieBreakStraight))
	}
	opts = append(opts, maze.WithOnStep(func(i, d int) {
		x, y := m.Coordinate(i)
		log.WithFields(logrus.Fields{"index": i, "x": x, "y": y, "distance": d}).Debug("step")
	}))
	path, ok := m.Solve(opts...)

	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}
	if cmd.Bool("distances") {
		fmt.Fprint(out, render.DistanceText(m))
		fmt.Fprintln(out)
	}
	if !ok {
		fmt.Fprint(out, render.Text(m, nil))
		log.WithFields(logrus.Fields{
			"regions":   len(m.Regions()),
			"connected": m.Connected(m.Start(), m.Goal()),
			"startTile": m.Tile(m.Start()).String(),
		}).Warn("start is not reachable from goal")
		return errUnsolvable
	}

	fmt.Fprint(out, render.Text(m, path))
	fmt.Fprintf(out, "steps: %d\n", len(path)-1)
	fmt.Fprintf(out, "path: %s\n", joinInts(path))

	if file := cmd.String("png"); file != "" {
		if err := writePNG(file, m, path); err != nil {
			return err
		}
		log.WithField("file", file).Info("image written")
	}
	return nil
}

// description picks the maze text: positional argument first, then --maze,
// then --file.
func description(cmd *cli.Command) (string, error) {
	if arg := cmd.Args().First(); arg != "" {
		return strings.TrimSpace(arg), nil
	}
	if s := cmd.String("maze"); s != "" {
		return strings.TrimSpace(s), nil
	}
	if file := cmd.String("file"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return "", errNoDescription
}

func writePNG(file string, m *maze.Maze, path []int) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("creating %s: %w", file, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", file, cerr)
		}
	}()
	return render.WritePNG(f, m, path)
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
