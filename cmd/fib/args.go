package main

import (
	"strconv"

	"go.uber.org/zap"
)

// parseArg reads args[i] as an unsigned 32-bit decimal with an optional
// leading '+'. Absent or unparseable tokens yield def.
func parseArg(args []string, i int, def uint, log *zap.Logger) uint {
	if i >= len(args) {
		return def
	}

	v, err := strconv.ParseUint(trimPlus(args[i]), 10, 32)
	if err != nil {
		log.Warn("unparseable argument, using default",
			zap.Int("position", i+1),
			zap.String("token", args[i]),
			zap.Uint("default", def),
			zap.Error(err))
		return def
	}
	return uint(v)
}

// trimPlus drops a single '+' sign when a digit follows it.
func trimPlus(s string) string {
	if len(s) > 1 && s[0] == '+' && s[1] >= '0' && s[1] <= '9' {
		return s[1:]
	}
	return s
}
