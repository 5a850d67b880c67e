package common

import (
	"strconv"

	units "github.com/docker/go-units"
)

const MB = "1mb"

// ResolveUnionIntOrStringValue accepts a plain byte count or a size such as
// "1mb" or "512kb" (binary units). Invalid values resolve to 0.
func ResolveUnionIntOrStringValue(value string) int {
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	n, err := units.RAMInBytes(value)
	if err != nil {
		return 0
	}
	return int(n)
}
