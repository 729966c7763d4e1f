package entity

import "strconv"

// DirectiveKind identifies one debugger batch instruction.
type DirectiveKind int

const (
	DirectiveConfirmOff DirectiveKind = iota
	DirectivePrintElements
	DirectivePrintRepeats
	DirectiveBacktrace
	DirectiveFrame
	DirectiveLocals
	DirectiveRegisters
	DirectiveQuit
)

// Directive is a single typed debugger instruction. Index is only meaningful
// for DirectiveFrame.
type Directive struct {
	Kind  DirectiveKind
	Index int
}

// Frame selects stack frame i.
func Frame(i int) Directive {
	return Directive{Kind: DirectiveFrame, Index: i}
}

// Text renders the directive in gdb's command syntax.
func (d Directive) Text() string {
	switch d.Kind {
	case DirectiveConfirmOff:
		return "set confirm off"
	case DirectivePrintElements:
		return "set print elements 0"
	case DirectivePrintRepeats:
		return "set print repeats 0"
	case DirectiveBacktrace:
		return "backtrace"
	case DirectiveFrame:
		return "frame " + strconv.Itoa(d.Index)
	case DirectiveLocals:
		return "info locals"
	case DirectiveRegisters:
		return "info registers"
	case DirectiveQuit:
		return "quit"
	default:
		return ""
	}
}

func (d Directive) String() string {
	return d.Text()
}

// Batch is an ordered directive sequence sent to one debugger invocation.
type Batch []Directive

// Texts serializes the batch for the debugger's command line.
func (b Batch) Texts() []string {
	out := make([]string, 0, len(b))
	for _, d := range b {
		out = append(out, d.Text())
	}
	return out
}

// Frames returns the frame indices selected by the batch, in order.
func (b Batch) Frames() []int {
	var idx []int
	for _, d := range b {
		if d.Kind == DirectiveFrame {
			idx = append(idx, d.Index)
		}
	}
	return idx
}

// PrintPreamble disables prompts and output truncation so long or repetitive
// strings (embedded query text) print in full.
func PrintPreamble() Batch {
	return Batch{
		{Kind: DirectiveConfirmOff},
		{Kind: DirectivePrintElements},
		{Kind: DirectivePrintRepeats},
	}
}

// BacktraceBatch is the batch used to capture a backtrace.
func BacktraceBatch() Batch {
	b := PrintPreamble()
	return append(b, Directive{Kind: DirectiveBacktrace}, Directive{Kind: DirectiveQuit})
}
