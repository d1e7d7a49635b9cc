package validate

import (
	"strconv"
	"sync"
)

// pathBuilder builds instance paths ("MedicationKnowledge.cost[0].cost")
// in a reusable buffer.
type pathBuilder struct {
	buf []byte
}

var pathBuilderPool = sync.Pool{
	New: func() any {
		return &pathBuilder{buf: make([]byte, 0, 128)}
	},
}

func acquirePathBuilder() *pathBuilder {
	pb := pathBuilderPool.Get().(*pathBuilder)
	pb.buf = pb.buf[:0]
	return pb
}

func (b *pathBuilder) release() {
	if cap(b.buf) <= 4096 {
		pathBuilderPool.Put(b)
	}
}

func (b *pathBuilder) appendSegment(s string) {
	if len(b.buf) > 0 {
		b.buf = append(b.buf, '.')
	}
	b.buf = append(b.buf, s...)
}

func (b *pathBuilder) appendIndex(i int) {
	b.buf = append(b.buf, '[')
	b.buf = strconv.AppendInt(b.buf, int64(i), 10)
	b.buf = append(b.buf, ']')
}

// childPath returns parent.name, with [index] for list members (index >= 0).
func childPath(parent, name string, index int) string {
	pb := acquirePathBuilder()
	defer pb.release()
	pb.buf = append(pb.buf, parent...)
	pb.appendSegment(name)
	if index >= 0 {
		pb.appendIndex(index)
	}
	return string(pb.buf)
}
