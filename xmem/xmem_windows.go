package xmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// allocationGranularity is the VirtualAlloc placement granularity; every
// allocation base is a multiple of it.
const allocationGranularity = 64 * 1024

func base(mem []byte) uintptr {
	return uintptr(unsafe.Pointer(&mem[0]))
}

// AllocateExecutable reserves and commits size bytes with read, write and
// execute permission. VirtualAlloc has no placement flag for the low
// request, so it is best-effort only here.
func AllocateExecutable(size int, low bool) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid executable allocation size %d", size)
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_EXECUTE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate executable memory: %s", err)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

// AllocatePages reserves and commits size bytes of read-write memory.
func AllocatePages(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid allocation size %d", size)
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate memory pages: %s", err)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

// AllocateAligned allocates size bytes whose base is a multiple of
// alignment. VirtualAlloc bases are already multiples of the allocation
// granularity, which covers every alignment the emitter asks for.
func AllocateAligned(size, alignment int) ([]byte, error) {
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		return nil, fmt.Errorf("invalid alignment %d", alignment)
	}
	if alignment > allocationGranularity {
		return nil, fmt.Errorf("alignment %d exceeds the allocation granularity", alignment)
	}
	return AllocatePages(size)
}

// FreePages releases a mapping obtained from AllocatePages or
// AllocateExecutable.
func FreePages(mem []byte) error {
	if mem == nil {
		return nil
	}
	return windows.VirtualFree(base(mem), 0, windows.MEM_RELEASE)
}

// FreeAligned releases a mapping obtained from AllocateAligned.
func FreeAligned(mem []byte) error {
	return FreePages(mem)
}

// SetProtection flips mem between writable and executable.
func SetProtection(mem []byte, executable bool) error {
	prot := uint32(windows.PAGE_READWRITE)
	if executable {
		prot = windows.PAGE_EXECUTE_READ
	}
	var old uint32
	if err := windows.VirtualProtect(base(mem), uintptr(len(mem)), prot, &old); err != nil {
		return fmt.Errorf("failed to change memory protection: %s", err)
	}
	return nil
}
