package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureNames(cs []Capture) []string {
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, c.Name)
	}
	return names
}

func TestDefaultCaptures_JournalSince(t *testing.T) {
	for _, c := range DefaultCaptures("") {
		if c.Tool == "journalctl" {
			assert.Equal(t, []string{"--no-pager", "--since", DefaultJournalSince}, c.Args)
		}
	}
	for _, c := range DefaultCaptures("2026-01-01") {
		if c.Tool == "journalctl" {
			assert.Equal(t, "2026-01-01", c.Args[2])
		}
	}
}

func TestDefaultCaptures_UniqueFiles(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range DefaultCaptures("") {
		assert.False(t, seen[c.File], "duplicate file %s", c.File)
		seen[c.File] = true
	}
}

func TestFilterCaptures(t *testing.T) {
	all := DefaultCaptures("")

	assert.Equal(t, captureNames(all), captureNames(FilterCaptures(all, nil)))
	assert.Equal(t, []string{"disk", "kernel"}, captureNames(FilterCaptures(all, []string{"kernel", "disk", "unknown"})))
}
