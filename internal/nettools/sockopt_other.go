//go:build !darwin && !linux
// +build !darwin,!linux

package nettools

func setReusePort(uintptr) error {
	return nil
}
