/*
DESCRIPTION
  workerpool.go provides the default fork/join WorkerPool implementation:
  each task runs in its own goroutine, joined with a sync.WaitGroup, in the
  style of the wg sync.WaitGroup pattern used to join processing routines
  in revid/revid.go.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package workerpool provides the default fork/join task runner used by the
// PV3/PV4 frame decoder to decode a frame's independent sub-bitstreams
// concurrently.
package workerpool

import "sync"

// Default runs every task in its own goroutine and waits for all of them to
// finish. Since a PV3/PV4 frame only ever splits into 2 or 4 independent
// sub-bitstreams, no goroutine limit is needed; a caller wanting bounded
// concurrency can supply its own pv3.WorkerPool.
type Default struct{}

// Run launches each task in tasks concurrently and blocks until all have
// returned, then returns the first non-nil error encountered (if any).
// Every task always runs to completion even if an earlier one failed.
func (Default) Run(tasks []func() error) error {
	var wg sync.WaitGroup
	errs := make([]error, len(tasks))

	wg.Add(len(tasks))
	for i, task := range tasks {
		i, task := i, task
		go func() {
			defer wg.Done()
			errs[i] = task()
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
