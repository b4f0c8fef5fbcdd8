// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/colourd/constants"
	"github.com/bitmark-inc/colourd/storage"
)

type metadata struct {
	file    string
	config  *Configuration
	store   *storage.Store
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that append to the database
var writeCommands = map[string]bool{
	"add-canvas": true,
	"vote":       true,
	"purchase":   true,
}

func main() {

	app := cli.NewApp()
	app.Name = "colour-cli"
	app.Usage = "record and resolve colour canvases"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "colour-cli.conf",
			Usage: " configuration `FILE`",
		},
	}

	canvasFlag := cli.StringFlag{
		Name:  "canvas, i",
		Value: "",
		Usage: "*canvas `ID`",
	}
	locationFlag := cli.StringFlag{
		Name:  "location, l",
		Value: "",
		Usage: "*location `X,Y,Z`",
	}
	colourFlag := cli.StringFlag{
		Name:  "colour, k",
		Value: "",
		Usage: "*colour `#RRGGBB`",
	}
	creatorFlag := cli.StringFlag{
		Name:  "creator, a",
		Value: "",
		Usage: " creator `NAME` [default from configuration]",
	}

	app.Commands = []cli.Command{
		{
			Name:      "add-canvas",
			Usage:     "define a new canvas",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*canvas `NAME`",
				},
				cli.UintFlag{
					Name:  "width, W",
					Value: 0,
					Usage: "*width `COUNT`",
				},
				cli.UintFlag{
					Name:  "height, H",
					Value: 0,
					Usage: "*height `COUNT`",
				},
				cli.UintFlag{
					Name:  "depth, D",
					Value: 1,
					Usage: " depth `COUNT`",
				},
				cli.StringFlag{
					Name:  "mode, m",
					Value: "",
					Usage: "*governance `MODE` [free_for_all|one_alias_one_vote|...]",
				},
				creatorFlag,
			},
			Action: runAddCanvas,
		},
		{
			Name:   "canvases",
			Usage:  "list all canvases",
			Action: runCanvases,
		},
		{
			Name:      "vote",
			Usage:     "vote for the colour of a location",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{canvasFlag, locationFlag, colourFlag, creatorFlag},
			Action:    runVote,
		},
		{
			Name:      "purchase",
			Usage:     "buy the colour of a location",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				canvasFlag, locationFlag, colourFlag, creatorFlag,
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: " price `AMOUNT`",
				},
			},
			Action: runPurchase,
		},
		{
			Name:      "resolve",
			Usage:     "resolve every location of a canvas by its mode",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{canvasFlag},
			Action:    runResolve,
		},
		{
			Name:      "majority",
			Usage:     "colour with the most votes at a location",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{canvasFlag, locationFlag},
			Action:    runMajority,
		},
		{
			Name:      "latest-vote",
			Usage:     "colour of the newest vote at a location",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{canvasFlag, locationFlag},
			Action:    runLatestVote,
		},
		{
			Name:      "highest-bid",
			Usage:     "colour of the highest purchase at a location",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{canvasFlag, locationFlag},
			Action:    runHighestBid,
		},
		{
			Name:      "latest-purchase",
			Usage:     "colour of the newest purchase at a location",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{canvasFlag, locationFlag},
			Action:    runLatestPurchase,
		},
		{
			Name:      "votes-by",
			Usage:     "all votes of one creator on a canvas",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{canvasFlag, creatorFlag},
			Action:    runVotesBy,
		},
		{
			Name:      "purchases-by",
			Usage:     "all purchases of one creator on a canvas",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{canvasFlag, creatorFlag},
			Action:    runPurchasesBy,
		},
		{
			Name:      "watch",
			Usage:     "re-resolve a canvas periodically and show changed locations",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				canvasFlag,
				cli.DurationFlag{
					Name:  "interval, t",
					Value: constants.WatchInterval,
					Usage: " `DURATION` between passes",
				},
			},
			Action: runWatch,
		},
		{
			Name:      "entry",
			Usage:     "display one log entry",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "log, L",
					Value: "",
					Usage: "*log `NAME`",
				},
				cli.StringFlag{
					Name:  "hash, x",
					Value: "",
					Usage: "*entry `HASH` in hex",
				},
			},
			Action: runEntry,
		},
		{
			Name:  "version",
			Usage: "display colour-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "" == command || "version" == command || "help" == command || "h" == command {
			return nil
		}

		file, err := checkConfigFile(c.GlobalString("config-file"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		variables := map[string]string{
			"command": command,
		}
		config, err := getConfiguration(file, variables)
		if nil != err {
			return err
		}

		// start logging
		if err = logger.Initialise(config.Logging); nil != err {
			return err
		}
		log := logger.New("main")
		log.Infof("command: %s  config: %q", command, file)

		readOnly := !writeCommands[command]
		if verbose {
			fmt.Fprintf(e, "database: %s  read only: %t\n", config.Database.Name, readOnly)
		}

		store, err := storage.Open(config.Database.Name, readOnly)
		if nil != err {
			log.Criticalf("open database: %q  error: %s", config.Database.Name, err)
			logger.Finalise()
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			store:   store,
			log:     log,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	// close the database
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		err := m.store.Close()
		m.log.Infof("finished: %s", m.file)
		logger.Finalise()
		return err
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
