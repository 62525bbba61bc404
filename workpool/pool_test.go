// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package workpool

import (
	"sync/atomic"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_poolRunsAllTasks checks every enqueued task runs exactly once
// before WaitAll returns.
func Test_poolRunsAllTasks(tst *testing.T) {
	p := New(4)
	defer p.Close()

	var count int64
	const n = 200
	for i := 0; i < n; i++ {
		p.Enqueue(func() {
			atomic.AddInt64(&count, 1)
		})
	}
	p.WaitAll()
	chk.IntAssert(int(count), n)
}

// Test_poolColorBarrier checks WaitAll forms a real barrier: a second
// wave of tasks only starts being counted after the first wave is done.
func Test_poolColorBarrier(tst *testing.T) {
	p := New(2)
	defer p.Close()

	var phase1, phase2 int64
	for i := 0; i < 50; i++ {
		p.Enqueue(func() { atomic.AddInt64(&phase1, 1) })
	}
	p.WaitAll()
	if atomic.LoadInt64(&phase1) != 50 {
		tst.Fatalf("phase1 incomplete before barrier: %d", phase1)
	}
	for i := 0; i < 50; i++ {
		p.Enqueue(func() { atomic.AddInt64(&phase2, 1) })
	}
	p.WaitAll()
	chk.IntAssert(int(phase2), 50)
}
