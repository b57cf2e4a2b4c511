package command

import (
	"fmt"
	"strconv"
)

// maxRunSteps is the largest suffix a compressed FW/BW run may carry;
// a run that would exceed it starts a new command instead of overflowing.
const maxRunSteps = 90

// compress merges consecutive FW (resp. BW) commands by summing their
// decimal suffixes, stopping a run once it reaches maxRunSteps.
func compress(commands []string) []string {
	if len(commands) == 0 {
		return commands
	}

	out := []string{commands[0]}
	for _, cmd := range commands[1:] {
		last := out[len(out)-1]
		if runPrefix(cmd) != "" && runPrefix(cmd) == runPrefix(last) {
			steps, err := strconv.Atoi(last[2:])
			if err == nil && steps != maxRunSteps {
				out[len(out)-1] = fmt.Sprintf("%s%d", runPrefix(last), steps+10)
				continue
			}
		}
		out = append(out, cmd)
	}

	return out
}

func runPrefix(cmd string) string {
	if len(cmd) < 2 {
		return ""
	}
	if cmd[:2] == "FW" || cmd[:2] == "BW" {
		return cmd[:2]
	}

	return ""
}
