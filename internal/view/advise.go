//go:build linux || darwin || freebsd

package view

import "golang.org/x/sys/unix"

// advise tells the kernel the mapping is read front to back, so it reads
// ahead aggressively and drops pages early.
func advise(b []byte) error {
	return unix.Madvise(b, unix.MADV_SEQUENTIAL)
}
