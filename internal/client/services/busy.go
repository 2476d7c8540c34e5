package services

import "sync/atomic"

// busy serializes the mutating calls of one view-model. A call that cannot
// acquire it fails fast with common.ErrBusy instead of queueing.
type busy struct {
	flag atomic.Bool
}

func (b *busy) acquire() bool { return b.flag.CompareAndSwap(false, true) }

func (b *busy) release() { b.flag.Store(false) }

func (b *busy) Busy() bool { return b.flag.Load() }
