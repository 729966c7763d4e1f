// Package stack turns a debugger backtrace into a bounded per-frame dump plan.
package stack

import (
	"bufio"
	"io"
	"regexp"

	"github.com/ydbtools/ydbgather/internal/domain/entity"
)

const (
	// DefaultWindow is how many frames are kept at each end of a deep stack.
	DefaultWindow = 50

	// frameCountSlack converts a frame count into the last usable zero-based
	// index. gdb's transcript shape makes the count one higher than the top
	// index, so the offset is 2, not 1.
	frameCountSlack = 2

	scannerMaxTokenSize = 1024 * 1024
)

var frameLineRegex = regexp.MustCompile(`^#[0-9]+`)

// CountFrames counts transcript lines beginning with "#<digits>".
// Unreadable input counts as zero.
func CountFrames(r io.Reader) int {
	if r == nil {
		return 0
	}
	count := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), scannerMaxTokenSize)
	for scanner.Scan() {
		if frameLineRegex.MatchString(scanner.Text()) {
			count++
		}
	}
	if scanner.Err() != nil {
		return 0
	}
	return count
}

// LastIndex returns the last valid frame index for frameCount, or -1.
func LastIndex(frameCount int) int {
	if frameCount < frameCountSlack {
		return -1
	}
	return frameCount - frameCountSlack
}

// Planner builds per-frame dump batches.
type Planner struct {
	// Window is the number of frames dumped from each end once the stack
	// reaches 2*Window frames.
	Window int
}

// NewPlanner returns a planner using window, or DefaultWindow when window <= 0.
func NewPlanner(window int) Planner {
	if window <= 0 {
		window = DefaultWindow
	}
	return Planner{Window: window}
}

// Indices returns the frame indices to dump for frameCount, ascending and
// without duplicates.
func (p Planner) Indices(frameCount int) []int {
	window := p.Window
	if window <= 0 {
		window = DefaultWindow
	}
	last := LastIndex(frameCount)
	if last < 0 {
		return nil
	}

	if frameCount < 2*window {
		idx := make([]int, 0, last+1)
		for i := 0; i <= last; i++ {
			idx = append(idx, i)
		}
		return idx
	}

	idx := make([]int, 0, 2*window)
	for i := 0; i < window; i++ {
		idx = append(idx, i)
	}
	topStart := last - window + 1
	if topStart < window {
		topStart = window
	}
	for i := topStart; i <= last; i++ {
		idx = append(idx, i)
	}
	return idx
}

// Plan returns the per-frame dump batch: frame, locals and registers for each
// selected frame, terminated by a single quit.
func (p Planner) Plan(frameCount int) entity.Batch {
	indices := p.Indices(frameCount)
	batch := make(entity.Batch, 0, len(indices)*3+1)
	for _, i := range indices {
		batch = append(batch,
			entity.Frame(i),
			entity.Directive{Kind: entity.DirectiveLocals},
			entity.Directive{Kind: entity.DirectiveRegisters},
		)
	}
	return append(batch, entity.Directive{Kind: entity.DirectiveQuit})
}
