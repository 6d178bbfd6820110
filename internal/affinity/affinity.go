// Package affinity pins OS threads to logical processors. Platform
// implementations live in separate files behind build tags.
package affinity

// Pin binds the calling OS thread to the given logical CPU. Callers
// should hold runtime.LockOSThread so the goroutine stays on the pinned
// thread. On unsupported platforms Pin returns an error.
func Pin(cpuID int) error {
	return pin(cpuID)
}
