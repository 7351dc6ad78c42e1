// Package logging provides the logger interface used across the
// toolkit. Plugin stdout belongs to the menu protocol, so all logging
// goes to stderr.
package logging

import "unsafe"

type DebugLogger interface {
	Debug(args ...interface{})
}

// Debug logs through log when it is non-nil, including typed nils.
func Debug(log DebugLogger, args ...interface{}) {
	if !isNilValue(log) {
		log.Debug(args...)
	}
}

func isNilValue(i interface{}) bool {
	return i == nil || (*[2]uintptr)(unsafe.Pointer(&i))[1] == 0
}
