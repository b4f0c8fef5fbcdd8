// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canvas_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/colourd/canvas"
	"github.com/bitmark-inc/colourd/chain"
	"github.com/bitmark-inc/colourd/chain/mocks"
	"github.com/bitmark-inc/colourd/colour"
	"github.com/bitmark-inc/colourd/digest"
	"github.com/bitmark-inc/colourd/fault"
	"github.com/bitmark-inc/colourd/fixtures"
	"github.com/bitmark-inc/colourd/record"
	"github.com/bitmark-inc/colourd/storage"
)

const (
	red   = colour.Colour(0xff0000)
	green = colour.Colour(0x00ff00)
	blue  = colour.Colour(0x0000ff)
)

var (
	p1 = colour.At(1, 1, 0)
	p2 = colour.At(2, 3, 0)
)

type emitted struct {
	location colour.Location
	colour   colour.Colour
}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func newCanvas(mode colour.Mode) colour.Canvas {
	return colour.Canvas{
		Name:   "test " + mode.String(),
		Width:  16,
		Height: 16,
		Depth:  1,
		Mode:   mode,
	}
}

// a store holding one canvas plus some filler canvases
func setupCanvas(t *testing.T, mode colour.Mode) (*storage.Store, digest.Digest) {
	s := fixtures.NewStore(t)
	fixtures.AppendCanvas(t, s, canvas.CanvasesLog, newCanvas(colour.QuadraticVote))
	hash := fixtures.AppendCanvas(t, s, canvas.CanvasesLog, newCanvas(mode))
	fixtures.AppendCanvas(t, s, canvas.CanvasesLog, newCanvas(colour.FreeForAll))
	return s, hash
}

func resolveAll(t *testing.T, l *canvas.Loader) []emitted {
	result := []emitted{}
	_, err := l.Resolve(func(location colour.Location, c colour.Colour) {
		result = append(result, emitted{location, c})
	})
	assert.Nil(t, err, "resolve error")
	return result
}

func TestNames(t *testing.T) {
	zero := digest.Digest{}
	assert.Equal(t, strings.Repeat("1", 32), canvas.ID(zero), "wrong zero id")
	assert.Equal(t, "Colour-Vote-"+strings.Repeat("1", 32), canvas.VotesLog(zero), "wrong votes log")
	assert.Equal(t, "Colour-Purchase-"+strings.Repeat("1", 32), canvas.PurchasesLog(zero), "wrong purchases log")

	hash := digest.NewDigest([]byte("canvas"))
	back, err := canvas.IDToHash(canvas.ID(hash))
	assert.Nil(t, err, "id to hash error")
	assert.Equal(t, hash, back, "id does not round trip")

	_, err = canvas.IDToHash("0OIl")
	assert.NotNil(t, err, "accepted characters outside base58")

	_, err = canvas.IDToHash("2g")
	assert.Equal(t, fault.ErrInvalidDigest, err, "accepted a short id")
}

func TestLoad(t *testing.T) {
	s, hash := setupCanvas(t, colour.FreeForAll)

	l := canvas.NewLoader(s, hash)
	assert.Equal(t, canvas.Unloaded, l.State(), "wrong initial state")

	_, ok := l.Canvas()
	assert.False(t, ok, "canvas present before load")

	notified := 0
	found, err := l.Load(func(h digest.Digest, c colour.Canvas) {
		notified += 1
		assert.Equal(t, hash, h, "wrong notified hash")
		assert.Equal(t, newCanvas(colour.FreeForAll), c, "wrong notified canvas")
	})
	assert.Nil(t, err, "load error")
	assert.True(t, found, "canvas not found")
	assert.Equal(t, 1, notified, "wrong notification count")
	assert.Equal(t, canvas.Loaded, l.State(), "wrong state after load")

	c, ok := l.Canvas()
	assert.True(t, ok, "canvas missing after load")
	assert.Equal(t, colour.FreeForAll, c.Mode, "wrong mode")
	assert.Equal(t, canvas.ID(hash), l.ID(), "wrong id")
	assert.Equal(t, canvas.VotesLog(hash), l.VotesLog(), "wrong votes log")
	assert.Equal(t, canvas.PurchasesLog(hash), l.PurchasesLog(), "wrong purchases log")

	found, err = l.Load(func(digest.Digest, colour.Canvas) { notified += 1 })
	assert.Nil(t, err, "second load error")
	assert.True(t, found, "canvas lost on second load")
	assert.Equal(t, 1, notified, "second load notified")
}

func TestLoadNotFound(t *testing.T) {
	s, _ := setupCanvas(t, colour.FreeForAll)

	l := canvas.NewLoader(s, digest.NewDigest([]byte("absent")))
	found, err := l.Load(func(digest.Digest, colour.Canvas) {
		t.Error("notified for a missing canvas")
	})
	assert.Nil(t, err, "missing canvas gave an error")
	assert.False(t, found, "missing canvas found")
	assert.Equal(t, canvas.Unloaded, l.State(), "wrong state")
}

func TestLoadUndecodableCanvas(t *testing.T) {
	s := fixtures.NewStore(t)
	hash := fixtures.AppendRaw(t, s, canvas.CanvasesLog, fixtures.Alice, []byte{0x0a, 0x05})

	found, err := canvas.NewLoader(s, hash).Load(nil)
	assert.Nil(t, err, "undecodable canvas gave an error")
	assert.False(t, found, "undecodable canvas found")
}

func TestLoadScansOnce(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	payload := record.PackCanvas(newCanvas(colour.OneAliasOneVote))
	entry := chain.Entry{Hash: digest.NewDigest(payload), Creator: fixtures.Alice, Payload: payload}

	source := mocks.NewMockLog(ctl)
	source.EXPECT().
		Iterate(canvas.CanvasesLog, chain.AsStored, gomock.Any()).
		DoAndReturn(func(_ string, _ chain.Order, fn chain.EntryFunc) error {
			fn(entry)
			return nil
		}).
		Times(1)

	l := canvas.NewLoader(source, entry.Hash)
	for i := 0; i < 3; i += 1 {
		found, err := l.Load(nil)
		assert.Nil(t, err, "load error: %d", i)
		assert.True(t, found, "not found: %d", i)
	}
}

func TestLoadUnavailable(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	source := mocks.NewMockLog(ctl)
	source.EXPECT().
		Iterate(canvas.CanvasesLog, chain.AsStored, gomock.Any()).
		Return(errors.New("timeout")).
		Times(1)

	found, err := canvas.NewLoader(source, digest.Digest{}).Load(nil)
	assert.False(t, found, "found with an unavailable log")
	assert.True(t, fault.IsErrUnavailable(err), "wrong error: %v", err)
}

func TestResolveWithoutCanvas(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no calls expected
	source := mocks.NewMockLog(ctl)

	l := canvas.NewLoader(source, digest.Digest{})
	result := resolveAll(t, l)
	assert.Equal(t, 0, len(result), "emissions without a canvas")
	assert.Equal(t, canvas.Unloaded, l.State(), "state changed")
}

func TestResolveFreeForAll(t *testing.T) {
	s, hash := setupCanvas(t, colour.FreeForAll)

	fixtures.AppendPurchases(t, s, canvas.PurchasesLog(hash),
		fixtures.Purchase(fixtures.Alice, p1, red, 5),
		fixtures.Purchase(fixtures.Bob, p1, blue, 50),
		fixtures.Purchase(fixtures.Carol, p2, green, 1),
	)
	fixtures.AppendVotes(t, s, canvas.VotesLog(hash),
		fixtures.Vote(fixtures.Alice, p2, red),
	)

	l := canvas.NewLoader(s, hash)
	found, err := l.Load(nil)
	assert.Nil(t, err, "load error")
	assert.True(t, found, "canvas not found")

	expected := []emitted{{p1, red}, {p2, green}}
	assert.Equal(t, expected, resolveAll(t, l), "wrong emissions")
	assert.Equal(t, canvas.Resolved, l.State(), "wrong state after resolve")

	// each resolve is a fresh scan
	fixtures.AppendPurchases(t, s, canvas.PurchasesLog(hash),
		fixtures.Purchase(fixtures.Alice, colour.At(0, 0, 0), blue, 1),
	)
	expected = append(expected, emitted{colour.At(0, 0, 0), blue})
	assert.Equal(t, expected, resolveAll(t, l), "wrong emissions on second resolve")
}

func TestResolveWithoutSink(t *testing.T) {
	for _, mode := range []colour.Mode{colour.FreeForAll, colour.OneAliasOneVote} {
		s, hash := setupCanvas(t, mode)

		fixtures.AppendPurchases(t, s, canvas.PurchasesLog(hash),
			fixtures.Purchase(fixtures.Alice, p1, red, 5),
		)
		fixtures.AppendVotes(t, s, canvas.VotesLog(hash),
			fixtures.Vote(fixtures.Bob, p2, green),
		)

		l := canvas.NewLoader(s, hash)
		found, err := l.Load(nil)
		assert.Nil(t, err, "%s: load error", mode)
		assert.True(t, found, "%s: canvas not found", mode)

		report, err := l.Resolve(nil)
		assert.Nil(t, err, "%s: resolve error", mode)
		assert.Equal(t, uint64(1), report.Records, "%s: wrong records", mode)
		assert.Equal(t, canvas.Resolved, l.State(), "%s: wrong state", mode)
	}
}

func TestResolveOneAliasOneVote(t *testing.T) {
	s, hash := setupCanvas(t, colour.OneAliasOneVote)

	fixtures.AppendVotes(t, s, canvas.VotesLog(hash),
		fixtures.Vote(fixtures.Alice, p1, red),
		fixtures.Vote(fixtures.Alice, p2, blue),
		fixtures.Vote(fixtures.Bob, p1, green),
	)
	fixtures.AppendPurchases(t, s, canvas.PurchasesLog(hash),
		fixtures.Purchase(fixtures.Carol, p2, blue, 1),
	)

	l := canvas.NewLoader(s, hash)
	_, err := l.Load(nil)
	assert.Nil(t, err, "load error")

	assert.Equal(t, []emitted{{p1, red}, {p1, green}}, resolveAll(t, l), "wrong emissions")
}

func TestResolveModesWithoutRule(t *testing.T) {
	modes := []colour.Mode{
		colour.UnknownMode,
		colour.ColourMarket,
		colour.RadicalColourMarket,
		colour.LocationMarket,
		colour.RadicalLocationMarket,
		colour.QuadraticVote,
		colour.Mode(42),
	}

	for _, mode := range modes {
		s, hash := setupCanvas(t, mode)
		fixtures.AppendVotes(t, s, canvas.VotesLog(hash), fixtures.Vote(fixtures.Alice, p1, red))
		fixtures.AppendPurchases(t, s, canvas.PurchasesLog(hash), fixtures.Purchase(fixtures.Alice, p1, red, 1))

		l := canvas.NewLoader(s, hash)
		found, err := l.Load(nil)
		assert.Nil(t, err, "load error: %s", mode)
		assert.True(t, found, "not found: %s", mode)

		result := resolveAll(t, l)
		assert.Equal(t, 0, len(result), "emissions for mode: %s", mode)
	}
}

func TestResolveUnavailable(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	payload := record.PackCanvas(newCanvas(colour.FreeForAll))
	entry := chain.Entry{Hash: digest.NewDigest(payload), Creator: fixtures.Alice, Payload: payload}
	purchase := chain.Entry{
		Creator: fixtures.Bob,
		Payload: record.PackPurchase(fixtures.Purchase("", p1, red, 9)),
	}

	source := mocks.NewMockLog(ctl)
	gomock.InOrder(
		source.EXPECT().
			Iterate(canvas.CanvasesLog, chain.AsStored, gomock.Any()).
			DoAndReturn(func(_ string, _ chain.Order, fn chain.EntryFunc) error {
				fn(entry)
				return nil
			}),
		source.EXPECT().
			Iterate(canvas.PurchasesLog(entry.Hash), chain.AsStored, gomock.Any()).
			DoAndReturn(func(_ string, _ chain.Order, fn chain.EntryFunc) error {
				fn(purchase)
				return errors.New("disconnected")
			}),
	)

	l := canvas.NewLoader(source, entry.Hash)
	_, err := l.Load(nil)
	assert.Nil(t, err, "load error")

	result := []emitted{}
	_, err = l.Resolve(func(location colour.Location, c colour.Colour) {
		result = append(result, emitted{location, c})
	})
	assert.True(t, fault.IsErrUnavailable(err), "wrong error: %v", err)
	assert.Equal(t, []emitted{{p1, red}}, result, "partial emission lost")
	assert.Equal(t, canvas.Loaded, l.State(), "resolved despite the error")
}

func TestList(t *testing.T) {
	s, hash := setupCanvas(t, colour.OneAliasOneVote)
	fixtures.AppendRaw(t, s, canvas.CanvasesLog, fixtures.Bob, []byte{0xff})

	hashes := []digest.Digest{}
	modes := []colour.Mode{}
	err := canvas.List(s, func(h digest.Digest, c colour.Canvas) bool {
		hashes = append(hashes, h)
		modes = append(modes, c.Mode)
		return true
	})
	assert.Nil(t, err, "list error")
	assert.Equal(t, []colour.Mode{colour.QuadraticVote, colour.OneAliasOneVote, colour.FreeForAll}, modes, "wrong modes")
	assert.Equal(t, hash, hashes[1], "wrong hash")

	count := 0
	err = canvas.List(s, func(digest.Digest, colour.Canvas) bool {
		count += 1
		return false
	})
	assert.Nil(t, err, "list error")
	assert.Equal(t, 1, count, "list did not stop")
}

func TestDecodeEntry(t *testing.T) {
	definition := newCanvas(colour.FreeForAll)
	hash := digest.NewDigest([]byte("canvas"))

	tests := []struct {
		name     string
		payload  []byte
		expected interface{}
		fails    bool
	}{
		{canvas.CanvasesLog, record.PackCanvas(definition), definition, false},
		{canvas.VotesLog(hash), record.PackVote(colour.Vote{Location: p1, Colour: red}), fixtures.Vote(fixtures.Bob, p1, red), false},
		{canvas.PurchasesLog(hash), record.PackPurchase(colour.Purchase{Location: p2, Colour: blue, Price: 4}), fixtures.Purchase(fixtures.Bob, p2, blue, 4), false},
		{canvas.VotesLog(hash), []byte{0x0a}, nil, true},
		{canvas.CanvasesLog, []byte{0x0a}, nil, true},
		{"Some-Other-Log", []byte{0x0a}, nil, false},
	}

	for i, item := range tests {
		entry := chain.Entry{Creator: fixtures.Bob, Payload: item.payload}
		decoded, err := canvas.DecodeEntry(item.name, entry)
		if item.fails {
			assert.NotNil(t, err, "no error: %d", i)
		} else {
			assert.Nil(t, err, "error: %d", i)
		}
		assert.Equal(t, item.expected, decoded, "wrong record: %d", i)
	}
}
