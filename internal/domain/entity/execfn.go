package entity

import "strings"

const execFnMarker = "execfn"

// ParseExecFn extracts the executable path from file-type inspector output for
// a core dump. The output is a comma-separated field list; the field of
// interest looks like `execfn: '/usr/bin/foo'` (some builds print
// `execfn='/usr/bin/foo'`). Surrounding quotes are stripped. Returns "" when no
// execfn field is present.
func ParseExecFn(output string) string {
	for _, field := range strings.Split(output, ",") {
		field = strings.TrimSpace(field)
		if !strings.HasPrefix(field, execFnMarker) {
			continue
		}
		value := strings.TrimPrefix(field, execFnMarker)
		value = strings.TrimLeft(value, " \t")
		if value == "" || (value[0] != ':' && value[0] != '=') {
			continue
		}
		value = strings.TrimSpace(value[1:])
		value = strings.Trim(value, `'"`)
		return strings.TrimSpace(value)
	}
	return ""
}
