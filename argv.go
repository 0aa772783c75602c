package optargs

import (
	"strings"
)

// JoinArgs assembles a raw argument vector, as delivered by a process's
// argument vector, into a single command line in the grammar the engine
// expects. Elements not starting with '-' are wrapped in double quotes
// with any contained quotes escaped; elements are joined with a single
// space.
func JoinArgs(argv []string) string {
	parts := make([]string, len(argv))
	for i, arg := range argv {
		if strings.HasPrefix(arg, "-") {
			parts[i] = arg
		} else {
			parts[i] = `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
		}
	}
	return strings.Join(parts, " ")
}
