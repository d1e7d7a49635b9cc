package model

import (
	"encoding/binary"
	"strconv"
	"sync/atomic"

	"github.com/zeebo/blake3"
)

// memo caches a structural hash. Concurrent first computations may race;
// they compute the same value, so whichever store lands is correct.
type memo struct {
	done atomic.Bool
	sum  atomic.Uint64
}

func (m *memo) get(compute func() uint64) uint64 {
	if m.done.Load() {
		return m.sum.Load()
	}
	s := compute()
	m.sum.Store(s)
	m.done.Store(true)
	return s
}

type memoized interface {
	hashMemo() *memo
}

// Hash returns the structural hash of e. Equal elements hash equally. The
// value is computed on first use and memoized in built instances.
func Hash(e Element) uint64 {
	if e == nil {
		return 0
	}
	if m, ok := e.(memoized); ok {
		if mm := m.hashMemo(); mm != nil {
			return mm.get(func() uint64 { return computeHash(e) })
		}
	}
	return computeHash(e)
}

func computeHash(e Element) uint64 {
	h := blake3.New()
	w := &hashWriter{h: h}
	for _, ev := range Events(e) {
		ev.writeTo(w)
	}
	var sum [32]byte
	h.Sum(sum[:0])
	return binary.LittleEndian.Uint64(sum[:8])
}

type hashWriter struct {
	h   *blake3.Hasher
	buf []byte
}

func (w *hashWriter) str(s string) {
	w.buf = binary.AppendUvarint(w.buf[:0], uint64(len(s)))
	w.buf = append(w.buf, s...)
	_, _ = w.h.Write(w.buf)
}

func (w *hashWriter) tag(b byte) {
	_, _ = w.h.Write([]byte{b})
}

func (w *hashWriter) int(i int) {
	w.str(strconv.Itoa(i))
}
