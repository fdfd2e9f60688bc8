//go:build unix && !(linux && amd64)

package xmem

// No native flag to request a low mapping here, so the low request is
// best-effort only.
const map32Bit = 0
