// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package arena implements a page-chained bump allocator whose lifetime
// is a single draw call (§4.1). It is grounded on the single-buffer
// bump-and-double allocator of the original C implementation
// (src/arena.c: arenaAlloc/arenaReset/freeArena), generalized to a page
// chain so that Reset can return memory to a free list instead of
// realloc'ing a single ever-growing buffer.
package arena

// defaultPageSize is the size of a freshly allocated page, matching the
// "≈1 MiB" default named in §4.1.
const defaultPageSize = 1 << 20

const alignment = 8

// page is one bump-allocated block in the chain.
type page struct {
	buf    []byte
	offset int
}

func newPage(size int) *page {
	if size < defaultPageSize {
		size = defaultPageSize
	}
	return &page{buf: make([]byte, size)}
}

func (p *page) remaining() int { return len(p.buf) - p.offset }

func (p *page) alloc(n int) ([]byte, bool) {
	aligned := align(p.offset, alignment)
	if aligned+n > len(p.buf) {
		return nil, false
	}
	b := p.buf[aligned : aligned+n]
	p.offset = aligned + n
	return b, true
}

func align(n, a int) int {
	return (n + a - 1) &^ (a - 1)
}

// Arena is a bump allocator: every allocation made during a draw is
// valid until the next Reset, no allocation ever moves, and no
// allocation can be freed individually (§4.1 contract).
//
// Arena is not safe for concurrent use; the single-context, single-draw
// model in §5 makes that unnecessary.
type Arena struct {
	pages    []*page // pages[0] is the first page; new pages append and the last one is current
	free     []*page // pages returned by Reset, reused before allocating new ones
	peakUsed int      // total bytes used across all pages in the cycle just finished
}

// New creates an arena with one page sized to hold at least initialHint
// bytes (rounded up to defaultPageSize).
func New(initialHint int) *Arena {
	a := &Arena{}
	a.pages = []*page{newPage(initialHint)}
	return a
}

// Alloc returns n bytes aligned to 8, valid until the next Reset. Growth
// allocates and chains a new page rather than moving existing data, so
// no previously returned slice is ever invalidated before Reset.
func (a *Arena) Alloc(n int) []byte {
	if n < 0 {
		panic("arena: negative allocation size")
	}
	if n == 0 {
		return nil
	}
	cur := a.pages[len(a.pages)-1]
	if b, ok := cur.alloc(n); ok {
		return b
	}

	// Current page is full: grab a free page big enough, or allocate one.
	size := n
	for i, p := range a.free {
		if len(p.buf) >= n {
			a.free = append(a.free[:i], a.free[i+1:]...)
			p.offset = 0
			a.pages = append(a.pages, p)
			b, ok := p.alloc(n)
			if !ok {
				panic("arena: allocation failed on a page sized for it")
			}
			return b
		}
	}
	np := newPage(size)
	a.pages = append(a.pages, np)
	b, ok := np.alloc(n)
	if !ok {
		panic("arena: allocation failed on a freshly sized page")
	}
	return b
}

// AllocZero behaves like Alloc but guarantees the returned bytes are
// zeroed (make([]byte, n) already zeroes, but reused free-list pages do
// not, since Reset does not scrub memory).
func (a *Arena) AllocZero(n int) []byte {
	b := a.Alloc(n)
	for i := range b {
		b[i] = 0
	}
	return b
}

// Reset ends the current draw's allocation cycle. All pages but the
// first are returned to the free list for reuse by the next draw,
// unless this cycle's total usage exceeded a single page, in which case
// the pages are coalesced into one larger page sized to the high-water
// mark — so a draw that needed N pages this time starts with one large
// enough page next time instead of re-chaining through N small ones.
func (a *Arena) Reset() {
	used := 0
	for _, p := range a.pages {
		used += p.offset
	}

	if used > len(a.pages[0].buf) && len(a.pages) > 1 {
		coalesced := newPage(used)
		a.pages = []*page{coalesced}
		a.free = nil
		a.peakUsed = used
		return
	}

	first := a.pages[0]
	first.offset = 0
	a.free = append(a.free, a.pages[1:]...)
	a.pages = a.pages[:1]
	a.pages[0] = first
	a.peakUsed = used
}

// Used returns the total bytes allocated since the last Reset. Intended
// for diagnostics/tests, not part of the allocation contract.
func (a *Arena) Used() int {
	used := 0
	for _, p := range a.pages {
		used += p.offset
	}
	return used
}
