package careclient

// ResetDefault clears the default client between tests.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultClient = nil
}
