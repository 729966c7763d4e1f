package cmd

import (
	"github.com/ydbtools/ydbgather/internal/application/usecase"
	"github.com/ydbtools/ydbgather/internal/cli/styles"
)

func targetSummaries(results []*usecase.InspectTargetOutput) []styles.TargetSummary {
	out := make([]styles.TargetSummary, 0, len(results))
	for _, r := range results {
		out = append(out, styles.TargetSummary{
			Target:      r.Target.Raw,
			Kind:        string(r.Target.Kind),
			Executable:  r.Executable,
			FrameCount:  r.FrameCount,
			Dumped:      len(r.DumpedFrames),
			DebuggerRan: r.DebuggerRan,
		})
	}
	return out
}
