package walk

import (
	"iter"
	"time"

	"chatnav/internal/element"
)

// Defaults for Descendants.
const (
	DefaultMaxDepth = 10
	DefaultTimeout  = 10 * time.Second
)

// Options bounds a walk.
type Options struct {
	MaxDepth int           // 0 = DefaultMaxDepth
	Timeout  time.Duration // 0 = DefaultTimeout
	Now      func() time.Time
}

func (o Options) withDefaults() Options {
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Descendants yields root's descendants breadth-first as a lazy, finite,
// non-restartable sequence. The root itself is never yielded.
//
// Breadth-first matters here: sibling regions sit at the same shallow
// depth but one may have hundreds of descendants, and a depth-first walk
// would exhaust the time budget inside one sibling before reaching the
// next. Children of leaf-role nodes are never enqueued.
//
// The timeout is checked once per dequeue. On expiry the walk simply
// stops producing elements; a short sequence means "incomplete", never
// failure.
func Descendants(root element.Handle, opts Options) iter.Seq[element.Handle] {
	opts = opts.withDefaults()
	return func(yield func(element.Handle) bool) {
		if root == nil {
			return
		}
		start := opts.Now()

		type entry struct {
			h     element.Handle
			depth int
		}
		queue := []entry{{root, 0}}
		for len(queue) > 0 {
			if opts.Now().Sub(start) > opts.Timeout {
				return
			}
			cur := queue[0]
			queue = queue[1:]

			if cur.depth > 0 && !yield(cur.h) {
				return
			}
			if cur.depth >= opts.MaxDepth {
				continue
			}
			if cur.depth > 0 && cur.h.Role().Leaf() {
				continue
			}
			for _, child := range Children(cur.h) {
				queue = append(queue, entry{child, cur.depth + 1})
			}
		}
	}
}
