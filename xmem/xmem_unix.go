//go:build unix

package xmem

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// alignedParents maps the base address of each aligned allocation to the
// over-sized mapping it was carved from. Munmap only releases slices it
// handed out itself, so the parent mapping must be kept whole and released
// whole when the aligned region is freed.
var (
	alignedMu      sync.Mutex
	alignedParents = map[uintptr][]byte{}
)

// AllocateExecutable maps size bytes of anonymous memory with read, write
// and execute permission. A non-positive size is rejected before mapping,
// so a returned slice is never empty. When low is set the mapping is
// requested below the 2 GiB boundary; the request is best-effort on
// platforms without a native flag for it, but where the flag exists a
// mapping that still lands too high is an error.
func AllocateExecutable(size int, low bool) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid executable allocation size %d", size)
	}
	flags := unix.MAP_ANON | unix.MAP_PRIVATE
	if low {
		flags |= map32Bit
	}
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC, flags)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate executable memory: %s", err)
	}
	if low && map32Bit != 0 {
		if end := uintptr(unsafe.Pointer(&mem[0])) + uintptr(size); end > lowLimit {
			unix.Munmap(mem)
			return nil, fmt.Errorf("executable memory ended up above 2 GiB")
		}
	}
	return mem, nil
}

// AllocatePages maps size bytes of anonymous read-write memory.
func AllocatePages(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid allocation size %d", size)
	}
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate memory pages: %s", err)
	}
	return mem, nil
}

// AllocateAligned maps size bytes of read-write memory whose base address
// is a multiple of alignment, which must be a power of two. Alignments up
// to the page size are satisfied by any mapping; larger ones are carved
// out of an over-sized mapping that stays mapped until FreeAligned.
func AllocateAligned(size, alignment int) ([]byte, error) {
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		return nil, fmt.Errorf("invalid alignment %d", alignment)
	}
	page := unix.Getpagesize()
	if alignment <= page {
		return AllocatePages(size)
	}

	size = roundUp(size, page)
	mem, err := unix.Mmap(-1, 0, size+alignment, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate aligned memory: %s", err)
	}

	addr := uintptr(unsafe.Pointer(&mem[0]))
	off := int((uintptr(alignment) - addr%uintptr(alignment)) % uintptr(alignment))
	aligned := mem[off : off+size : off+size]

	alignedMu.Lock()
	alignedParents[uintptr(unsafe.Pointer(&aligned[0]))] = mem
	alignedMu.Unlock()
	return aligned, nil
}

// FreePages releases a mapping obtained from AllocatePages or
// AllocateExecutable.
func FreePages(mem []byte) error {
	if mem == nil {
		return nil
	}
	return unix.Munmap(mem)
}

// FreeAligned releases a mapping obtained from AllocateAligned.
func FreeAligned(mem []byte) error {
	if mem == nil {
		return nil
	}
	alignedMu.Lock()
	parent, ok := alignedParents[uintptr(unsafe.Pointer(&mem[0]))]
	if ok {
		delete(alignedParents, uintptr(unsafe.Pointer(&mem[0])))
	}
	alignedMu.Unlock()
	if ok {
		return unix.Munmap(parent)
	}
	return unix.Munmap(mem)
}

// SetProtection flips mem between writable and executable. Generated code
// is never left writable and executable at the same time.
func SetProtection(mem []byte, executable bool) error {
	prot := unix.PROT_READ | unix.PROT_WRITE
	if executable {
		prot = unix.PROT_READ | unix.PROT_EXEC
	}
	if err := unix.Mprotect(mem, prot); err != nil {
		return fmt.Errorf("failed to change memory protection: %s", err)
	}
	return nil
}
