// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/colourd/canvas"
	"github.com/bitmark-inc/colourd/colour"
	"github.com/bitmark-inc/colourd/digest"
	"github.com/bitmark-inc/colourd/fault"
	"github.com/bitmark-inc/colourd/record"
)

type canvasReply struct {
	ID     string        `json:"id"`
	Hash   digest.Digest `json:"hash"`
	Canvas colour.Canvas `json:"canvas"`
}

func runAddCanvas(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mode, err := colour.ModeFromString(c.String("mode"))
	if nil != err {
		return err
	}

	creator, err := checkCreator(c.String("creator"), m.config.Creator)
	if nil != err {
		return err
	}

	definition := colour.Canvas{
		Name:   c.String("name"),
		Width:  uint32(c.Uint("width")),
		Height: uint32(c.Uint("height")),
		Depth:  uint32(c.Uint("depth")),
		Mode:   mode,
	}
	if err := definition.Validate(); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "canvas: %q  size: %s  mode: %s\n", definition.Name, definition.Dimensions(), definition.Mode)
	}

	hash, err := m.store.Append(canvas.CanvasesLog, creator, record.PackCanvas(definition))
	if nil != err {
		return err
	}
	m.log.Infof("added canvas: %s  name: %q", canvas.ID(hash), definition.Name)

	return printJson(m.w, canvasReply{
		ID:     canvas.ID(hash),
		Hash:   hash,
		Canvas: definition,
	})
}

func runCanvases(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	canvases := make([]canvasReply, 0, 10)
	err := canvas.List(m.store, func(hash digest.Digest, definition colour.Canvas) bool {
		canvases = append(canvases, canvasReply{
			ID:     canvas.ID(hash),
			Hash:   hash,
			Canvas: definition,
		})
		return true
	})
	if nil != err {
		return err
	}

	return printJson(m.w, canvases)
}

// load the canvas named by the --canvas flag
func loadCanvas(c *cli.Context, m *metadata) (*canvas.Loader, colour.Canvas, error) {
	hash, err := checkCanvas(c.String("canvas"))
	if nil != err {
		return nil, colour.Canvas{}, err
	}

	loader := canvas.NewLoader(m.store, hash)
	found, err := loader.Load(func(hash digest.Digest, definition colour.Canvas) {
		if m.verbose {
			fmt.Fprintf(m.e, "loaded canvas: %s  name: %q  mode: %s\n", canvas.ID(hash), definition.Name, definition.Mode)
		}
	})
	if nil != err {
		return nil, colour.Canvas{}, err
	}
	if !found {
		return nil, colour.Canvas{}, fault.ErrCanvasNotFound
	}

	definition, _ := loader.Canvas()
	return loader, definition, nil
}
