// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run long lived tasks until told to stop
package background

import (
	"sync"
)

// Process - a long lived task
//
// Run must return soon after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a started set of processes
type T struct {
	shutdown chan struct{}
	stop     sync.Once
	wg       sync.WaitGroup
}

// Start - run each process in its own goroutine
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
	}

	for _, p := range processes {
		register.wg.Add(1)
		go func(p Process) {
			defer register.wg.Done()
			p.Run(args, register.shutdown)
		}(p)
	}
	return register
}

// Stop - signal all processes and wait for them to return
//
// safe to call more than once
func (t *T) Stop() {
	t.stop.Do(func() {
		close(t.shutdown)
	})
	t.wg.Wait()
}

// Done - closed once Stop has been called
func (t *T) Done() <-chan struct{} {
	return t.shutdown
}
