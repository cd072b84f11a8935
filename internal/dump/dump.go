// Package dump renders a plain-text snapshot of the remote accessibility
// tree for human inspection. It is diagnostic output, not part of the
// programmatic contract.
package dump

import (
	"fmt"
	"strings"
	"time"

	"chatnav/internal/element"
	"chatnav/internal/finder"
	"chatnav/internal/walk"
)

const (
	// budget bounds the dump's walk separately from the engine walker.
	budget = 8 * time.Second
	// maxNodes stops the dump on pathological trees.
	maxNodes = 500
	// maxIndent stops indentation growth on very deep trees.
	maxIndent = 8
)

// Tree walks the tree breadth-first and returns an indented listing of
// named nodes plus counters: total visited, named, pruned and elapsed
// time. root defaults to the engine's content root, then the foreground
// window.
func Tree(e *finder.Engine, root element.Handle, maxDepth int) string {
	if maxDepth <= 0 {
		maxDepth = 8
	}
	opts := e.WalkOptions()
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	var b strings.Builder
	b.WriteString("=== Accessibility Tree Dump ===\n\n")

	b.WriteString("--- Focus ---\n")
	if focus := e.FocusHandle(); focus != nil {
		fmt.Fprintf(&b, "  role=%s name=%q\n", focus.Role(), clip(focus.Name(), 60))
	} else {
		b.WriteString("  none\n")
	}

	content := e.ContentRoot(nil)
	b.WriteString("--- Content root ---\n")
	if content != nil {
		fmt.Fprintf(&b, "  role=%s name=%q\n", content.Role(), clip(content.Name(), 80))
	} else {
		b.WriteString("  NOT FOUND\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "--- Tree walk (BFS, depth %d, timeout %s) ---\n", maxDepth, budget)
	walkRoot := root
	if walkRoot == nil {
		walkRoot = content
	}
	if walkRoot == nil {
		walkRoot = e.Foreground()
	}
	if walkRoot == nil {
		b.WriteString("  No root available.\n")
		return b.String()
	}

	start := now()
	var total, named, pruned int

	type entry struct {
		h     element.Handle
		depth int
	}
	queue := []entry{{walkRoot, 0}}
	for len(queue) > 0 {
		if now().Sub(start) > budget {
			b.WriteString("... (timed out)\n")
			break
		}
		cur := queue[0]
		queue = queue[1:]

		if cur.depth > 0 {
			total++
			if name := cur.h.Name(); name != "" {
				named++
				indent := strings.Repeat("  ", min(cur.depth, maxIndent))
				fmt.Fprintf(&b, "%sd%d %s: %q\n", indent, cur.depth, cur.h.Role(), clip(name, 100))
			}
		}
		if cur.depth < maxDepth {
			if cur.depth > 0 && cur.h.Role().Leaf() {
				pruned++
				continue
			}
			for _, child := range walk.Children(cur.h) {
				queue = append(queue, entry{child, cur.depth + 1})
			}
		}
		if total > maxNodes {
			fmt.Fprintf(&b, "... (stopped at %d elements)\n", maxNodes)
			break
		}
	}

	elapsed := now().Sub(start)
	fmt.Fprintf(&b, "\n=== %d total, %d named, %d pruned, %.1fs ===\n",
		total, named, pruned, elapsed.Seconds())
	return b.String()
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
