// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/colourd/aggregate"
	"github.com/bitmark-inc/colourd/background"
	"github.com/bitmark-inc/colourd/canvas"
	"github.com/bitmark-inc/colourd/chain"
	"github.com/bitmark-inc/colourd/colour"
	"github.com/bitmark-inc/colourd/constants"
	"github.com/bitmark-inc/colourd/digest"
	"github.com/bitmark-inc/colourd/fault"
	"github.com/bitmark-inc/colourd/storage"
)

type watchReply struct {
	Canvas  string             `json:"canvas"`
	Pass    uint64             `json:"pass"`
	Changed []resolvedLocation `json:"changed"`
	Report  aggregate.Report   `json:"report"`
}

// re-resolves one canvas at a fixed interval and prints the
// locations whose colour changed since the previous pass
type watcher struct {
	log      *logger.L
	database string
	hash     digest.Digest
	interval time.Duration
	w        io.Writer

	passes   uint64
	resolved map[colour.Location]colour.Colour
}

func newWatcher(database string, hash digest.Digest, interval time.Duration, w io.Writer) *watcher {
	return &watcher{
		log:      logger.New("watch"),
		database: database,
		hash:     hash,
		interval: interval,
		w:        w,
		resolved: make(map[colour.Location]colour.Colour),
	}
}

func (state *watcher) Run(args interface{}, shutdown <-chan struct{}) {

	log := state.log
	log.Infof("starting…  canvas: %s  interval: %s", canvas.ID(state.hash), state.interval)

	delay := time.After(0)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-delay:
			delay = time.After(state.interval)
			if err := state.refresh(); nil != err {
				log.Errorf("pass: %d  error: %s", state.passes, err)
			}
		}
	}

	log.Infof("shutting down…  passes: %d", state.passes)
}

// open the database only for the duration of a pass so that writers
// are not locked out between passes
func (state *watcher) refresh() error {
	store, err := storage.Open(state.database, storage.ReadOnly)
	if nil != err {
		return err
	}
	defer store.Close()

	return state.pass(store)
}

func (state *watcher) pass(source chain.Log) error {

	loader := canvas.NewLoader(source, state.hash)
	found, err := loader.Load(nil)
	if nil != err {
		return err
	}
	if !found {
		return fault.ErrCanvasNotFound
	}

	// a location may be emitted more than once in a pass, the last
	// emission is its colour for this pass
	current := make(map[colour.Location]colour.Colour)
	order := make([]colour.Location, 0, 10)
	report, err := loader.Resolve(func(location colour.Location, paint colour.Colour) {
		if _, ok := current[location]; !ok {
			order = append(order, location)
		}
		current[location] = paint
	})
	if nil != err {
		return err
	}

	changed := make([]resolvedLocation, 0, len(order))
	for _, location := range order {
		paint := current[location]
		previous, ok := state.resolved[location]
		if ok && previous == paint {
			continue
		}
		changed = append(changed, resolvedLocation{
			Location: location,
			Colour:   paint,
		})
	}
	state.resolved = current

	state.passes += 1
	state.log.Debugf("pass: %d  changed: %d  entries: %d", state.passes, len(changed), report.Entries)

	if 1 != state.passes && 0 == len(changed) {
		return nil
	}

	return printJson(state.w, watchReply{
		Canvas:  loader.ID(),
		Pass:    state.passes,
		Changed: changed,
		Report:  report,
	})
}

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	hash, err := checkCanvas(c.String("canvas"))
	if nil != err {
		return err
	}

	interval := c.Duration("interval")
	if interval < constants.MinimumWatchInterval {
		interval = constants.MinimumWatchInterval
	}

	// the watcher opens its own short lived handles
	if err := m.store.Close(); nil != err {
		return err
	}

	w := newWatcher(m.config.Database.Name, hash, interval, m.w)
	processes := background.Start(background.Processes{w}, nil)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	signal.Stop(ch)

	m.log.Infof("received signal: %v", sig)
	if m.verbose {
		fmt.Fprintf(m.e, "stopping on signal: %v\n", sig)
	}

	processes.Stop()
	return nil
}
