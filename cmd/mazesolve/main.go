// Command mazesolve decodes a maze description, floods it from the goal and
// prints the shortest path from the start.
//
// The description comes from the first argument, the --maze flag (or MAZE
// environment variable) or a file given with --file. A .env file in the
// working directory is loaded first, so MAZE and MAZE_DEBUG may live there.
//
// Examples:
//
//	mazesolve w5h5s10g0#0000011101000011010100100
//	mazesolve --straight --distances -f maze.txt
//	mazesolve --png out.png w7h7s7g41#1111111000010111101011000101101110110000001111111
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "mazesolve"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Warn("error loading .env file")
	}

	if err := newCommand(log).Run(context.Background(), os.Args); err != nil {
		log.WithError(err).Error("mazesolve failed")
		os.Exit(1)
	}
}
