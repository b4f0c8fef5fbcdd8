// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/colourd/canvas"
	"github.com/bitmark-inc/colourd/chain"
	"github.com/bitmark-inc/colourd/storage"
	"github.com/bitmark-inc/colourd/util"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// how to print each entry
type dumper struct {
	w       io.Writer
	paint   util.Painter
	ascii   bool
	decode  bool
	verbose bool
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "reverse", HasArg: getoptions.NO_ARGUMENT, Short: 'r'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "ascii", HasArg: getoptions.NO_ARGUMENT, Short: 'a'},
		{Long: "decode", HasArg: getoptions.NO_ARGUMENT, Short: 'd'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	list := len(options["list"]) > 0

	if len(options["help"]) > 0 || 1 != len(options["file"]) || (!list && 1 != len(arguments)) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--reverse] [--colour] [--ascii] [--decode] [--count=N] --file=DIR (--list | log-name)", program)
	}

	count := 10
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	order := chain.AsStored
	if len(options["reverse"]) > 0 {
		order = chain.NewestFirst
	}

	d := &dumper{
		w:       os.Stdout,
		paint:   util.Painter(len(options["colour"]) > 0),
		ascii:   len(options["ascii"]) > 0,
		decode:  len(options["decode"]) > 0,
		verbose: len(options["verbose"]) > 0,
	}

	filename := options["file"][0]

	logging := logger.Configuration{
		Directory: ".",
		File:      "colour-dumplog.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// start of main processing
	store, err := storage.Open(filename, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer store.Close()

	if list {
		if err := listLogs(d, store); nil != err {
			exitwithstatus.Message("%s: list error: %s", program, err)
		}
		return
	}

	name := arguments[0]
	if d.verbose {
		fmt.Fprintf(d.w, "read log: %q  order: %s  from: %q\n", name, order, filename)
	}

	if err := dumpLog(d, store, name, order, count); nil != err {
		exitwithstatus.Message("%s: dump error: %s", program, err)
	}
}

// names and lengths of all logs
func listLogs(d *dumper, store *storage.Store) error {
	names, err := store.Names()
	if nil != err {
		return err
	}
	for _, name := range names {
		n, head, err := store.Head(name)
		if nil != err {
			return err
		}
		fmt.Fprintf(d.w, "%s  entries: %d  head: %s\n", d.paint.Paint(util.CoCyan, name), n, head)
	}
	return nil
}

// print up to count entries of one log
func dumpLog(d *dumper, store chain.Log, name string, order chain.Order, count int) error {
	n := 0
	err := store.Iterate(name, order, func(entry chain.Entry) bool {
		d.print(n, name, entry)
		n += 1
		return n < count
	})
	if nil != err {
		return err
	}
	if 0 == n {
		fmt.Fprintf(d.w, "*** log: %q is empty\n", name)
	}
	return nil
}

func (d *dumper) print(i int, name string, entry chain.Entry) {
	fmt.Fprintf(d.w, "%d: %s %s\n", i, d.paint.Paint(util.CoCyan, "Hash:"), d.paint.Paint(util.CoRed, entry.Hash.String()))
	if d.verbose {
		fmt.Fprintf(d.w, "%d: %s %s\n", i, d.paint.Paint(util.CoCyan, "Prev:"), entry.Previous)
		fmt.Fprintf(d.w, "%d: %s %s\n", i, d.paint.Paint(util.CoCyan, "Time:"), entry.Timestamp.Format(time.RFC3339Nano))
	}
	fmt.Fprintf(d.w, "%d: %s %s\n", i, d.paint.Paint(util.CoYellow, "Creator:"), entry.Creator)

	if d.ascii {
		colour, reset := d.paint.Codes(util.CoBlue)
		util.HexDump(d.w, fmt.Sprintf("%d: %s ", i, d.paint.Paint(util.CoYellow, "Payload:")+colour), reset, entry.Payload)
	} else {
		fmt.Fprintf(d.w, "%d: %s %s\n", i, d.paint.Paint(util.CoYellow, "Payload:"), d.paint.Paint(util.CoBlue, fmt.Sprintf("%x", entry.Payload)))
	}

	if !d.decode {
		return
	}
	decoded, err := canvas.DecodeEntry(name, entry)
	if nil != err {
		fmt.Fprintf(d.w, "%d: %s %s\n", i, d.paint.Paint(util.CoMagenta, "Invalid:"), err)
		return
	}
	if nil == decoded {
		return
	}
	b, err := json.Marshal(decoded)
	if nil != err {
		fmt.Fprintf(d.w, "%d: %s %s\n", i, d.paint.Paint(util.CoMagenta, "Invalid:"), err)
		return
	}
	fmt.Fprintf(d.w, "%d: %s %s\n", i, d.paint.Paint(util.CoGreen, "Record:"), b)
}
