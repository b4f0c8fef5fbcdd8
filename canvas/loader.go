// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canvas

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/colourd/aggregate"
	"github.com/bitmark-inc/colourd/chain"
	"github.com/bitmark-inc/colourd/colour"
	"github.com/bitmark-inc/colourd/digest"
	"github.com/bitmark-inc/colourd/fault"
	"github.com/bitmark-inc/colourd/record"
)

// State - progress of a loader
type State int

// possible states
const (
	Unloaded State = iota
	Loaded
	Resolved
)

func (s State) String() string {
	switch s {
	case Unloaded:
		return "Unloaded"
	case Loaded:
		return "Loaded"
	case Resolved:
		return "Resolved"
	default:
		return "*unknown*"
	}
}

// LoadedFunc - told once about a newly loaded canvas
type LoadedFunc func(hash digest.Digest, c colour.Canvas)

// Loader - holds one canvas and resolves it on request
type Loader struct {
	sync.RWMutex

	log        *logger.L
	source     chain.Log
	aggregator *aggregate.Aggregator
	hash       digest.Digest
	canvas     *colour.Canvas
	state      State
}

// NewLoader - a loader for the canvas whose entry has the given hash
func NewLoader(source chain.Log, hash digest.Digest) *Loader {
	return &Loader{
		log:        logger.New("canvas"),
		source:     source,
		aggregator: aggregate.New(source),
		hash:       hash,
		state:      Unloaded,
	}
}

// Load - find the canvas in the canvases log
//
// returns false with a nil error if the canvas does not exist.
// onLoaded is called only by the Load that actually found the canvas,
// later calls return the kept canvas without scanning.
func (l *Loader) Load(onLoaded LoadedFunc) (bool, error) {
	c, found, fresh, err := l.load()
	if nil != err || !found {
		return false, err
	}
	if fresh && nil != onLoaded {
		onLoaded(l.hash, c)
	}
	return true, nil
}

// first caller holds the write lock for the whole scan
func (l *Loader) load() (colour.Canvas, bool, bool, error) {
	l.Lock()
	defer l.Unlock()

	if nil != l.canvas {
		return *l.canvas, true, false, nil
	}

	var c colour.Canvas
	found := false

	err := l.source.Iterate(CanvasesLog, chain.AsStored, func(entry chain.Entry) bool {
		if l.hash != entry.Hash {
			return true
		}
		canvas, err := record.UnpackCanvas(entry.Payload)
		if nil != err {
			l.log.Warnf("canvas: %s  undecodable: %s", ID(l.hash), err)
			return true
		}
		c = canvas
		found = true
		return false
	})
	if nil != err {
		l.log.Errorf("canvas: %s  load error: %s", ID(l.hash), err)
		return c, false, false, fault.Unavailable(CanvasesLog, err)
	}

	if !found {
		l.log.Infof("canvas: %s  not found", ID(l.hash))
		return c, false, false, nil
	}

	l.canvas = &c
	l.state = Loaded

	l.log.Infof("canvas: %s  name: %q  size: %s  mode: %s", ID(l.hash), c.Name, c.Dimensions(), c.Mode)

	return c, true, true, nil
}

// Resolve - push the colour of every decided location to emit
//
// does nothing if no canvas is loaded or its mode has no rule.
// emissions made before an error are not withdrawn.
// a nil emit still scans the logs and returns the report.
func (l *Loader) Resolve(emit aggregate.Emit) (aggregate.Report, error) {
	if nil == emit {
		emit = func(colour.Location, colour.Colour) {}
	}

	l.RLock()
	canvas := l.canvas
	l.RUnlock()

	if nil == canvas {
		l.log.Debugf("canvas: %s  resolve before load", ID(l.hash))
		return aggregate.Report{}, nil
	}

	report := aggregate.Report{}
	var err error

	switch mode := canvas.Mode; mode {

	case colour.FreeForAll:
		report, err = l.aggregator.FirstPurchasePerLocation(PurchasesLog(l.hash), emit)

	case colour.OneAliasOneVote:
		report, err = l.aggregator.FirstVotePerCreator(VotesLog(l.hash), emit)

	case colour.ColourMarket,
		colour.RadicalColourMarket,
		colour.LocationMarket,
		colour.RadicalLocationMarket,
		colour.QuadraticVote:
		l.log.Debugf("canvas: %s  mode: %s  has no resolution rule", ID(l.hash), mode)

	case colour.UnknownMode:
		l.log.Debugf("canvas: %s  mode is unknown", ID(l.hash))

	default:
		l.log.Warnf("canvas: %s  unrecognised mode: %s", ID(l.hash), mode)
	}

	if nil != err {
		return report, err
	}

	l.Lock()
	l.state = Resolved
	l.Unlock()

	l.log.Infof("canvas: %s  resolved  entries: %d  failures: %d", ID(l.hash), report.Entries, report.Failures)

	return report, nil
}

// Hash - identity of the canvas entry
func (l *Loader) Hash() digest.Digest {
	return l.hash
}

// ID - printable identity
func (l *Loader) ID() string {
	return ID(l.hash)
}

// Canvas - the loaded canvas, false if not yet loaded
func (l *Loader) Canvas() (colour.Canvas, bool) {
	l.RLock()
	defer l.RUnlock()

	if nil == l.canvas {
		return colour.Canvas{}, false
	}
	return *l.canvas, true
}

// State - current state
func (l *Loader) State() State {
	l.RLock()
	defer l.RUnlock()
	return l.state
}

// VotesLog - name of this canvas's votes log
func (l *Loader) VotesLog() string {
	return VotesLog(l.hash)
}

// PurchasesLog - name of this canvas's purchases log
func (l *Loader) PurchasesLog() string {
	return PurchasesLog(l.hash)
}

// Aggregator - the aggregator used by Resolve
func (l *Loader) Aggregator() *aggregate.Aggregator {
	return l.aggregator
}
