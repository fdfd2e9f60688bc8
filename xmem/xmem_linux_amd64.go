package xmem

import "golang.org/x/sys/unix"

// MAP_32BIT makes the kernel place the mapping in the low 2 GiB.
const map32Bit = unix.MAP_32BIT
