package entity

// Capture is one OS command whose combined output is saved to File.
type Capture struct {
	Name string
	Tool string
	Args []string
	File string
}

// DefaultJournalSince bounds the journal capture.
const DefaultJournalSince = "-24h"

// DefaultCaptures is the catalogue of host commands collected alongside the
// system snapshot. journalSince is passed to journalctl --since; empty selects
// DefaultJournalSince.
func DefaultCaptures(journalSince string) []Capture {
	if journalSince == "" {
		journalSince = DefaultJournalSince
	}
	return []Capture{
		{Name: "uname", Tool: "uname", Args: []string{"-a"}, File: "uname.txt"},
		{Name: "disk", Tool: "df", Args: []string{"-h"}, File: "df.txt"},
		{Name: "memory", Tool: "free", Args: []string{"-m"}, File: "free.txt"},
		{Name: "processes", Tool: "ps", Args: []string{"-ef"}, File: "ps.txt"},
		{Name: "ipc", Tool: "ipcs", Args: []string{"-a"}, File: "ipcs.txt"},
		{Name: "kernel", Tool: "dmesg", File: "dmesg.txt"},
		{Name: "journal", Tool: "journalctl", Args: []string{"--no-pager", "--since", journalSince}, File: "journalctl.txt"},
	}
}

// FilterCaptures keeps the captures whose Name is listed in enabled. A nil or
// empty enabled list keeps every capture.
func FilterCaptures(captures []Capture, enabled []string) []Capture {
	if len(enabled) == 0 {
		return captures
	}
	keep := make(map[string]struct{}, len(enabled))
	for _, name := range enabled {
		keep[name] = struct{}{}
	}
	out := make([]Capture, 0, len(captures))
	for _, c := range captures {
		if _, ok := keep[c.Name]; ok {
			out = append(out, c)
		}
	}
	return out
}
