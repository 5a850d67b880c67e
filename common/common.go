package common

import "unsafe"

type EndFunc func()

func ToByte(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Tag formats a single instrumentation tag as "name:value".
func Tag(name, value string) string {
	return name + ":" + value
}
