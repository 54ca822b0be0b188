package fabricmock

import "sync"

var (
	defaultMu      sync.Mutex
	defaultManager *Manager
)

// Default returns the process-wide manager, creating it on first use.
// Code written against UIManager can reach the emulator through it without
// being handed an instance.
func Default() *Manager {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultManager == nil {
		defaultManager = New()
	}
	return defaultManager
}

// Install makes m the process-wide manager and returns a function that puts
// the previous one back. Tests typically defer the restore function.
func Install(m *Manager) (restore func()) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	previous := defaultManager
	defaultManager = m
	return func() {
		defaultMu.Lock()
		defer defaultMu.Unlock()
		defaultManager = previous
	}
}

// Reset clears the state of the process-wide manager, if one exists.
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultManager != nil {
		defaultManager.Reset()
	}
}
