package main

import "github.com/Rih0z/os/kernel/kmain"

// main is the only Go symbol the rt0 code calls into. It forwards to
// kmain.Kmain and exists so the linker keeps the kernel code reachable.
//
// main is not expected to return. If it does, the rt0 code halts the CPU.
func main() {
	kmain.Kmain()
}
