package cpu

import "testing"

func TestAPICID(t *testing.T) {
	defer func() {
		cpuidFn = ID
	}()

	specs := []struct {
		maxLeaf uint32
		ebx     uint32
		exp     uint32
	}{
		{0xd, 0x00000800, 0},
		{0xd, 0x03010800, 3},
		{0x1, 0xff000000, 0xff},
		// Leaf 1 is not supported; its EBX must be ignored.
		{0x0, 0x03010800, 0},
	}

	for specIndex, spec := range specs {
		var leaves []uint32
		cpuidFn = func(leaf uint32) (uint32, uint32, uint32, uint32) {
			leaves = append(leaves, leaf)
			if leaf == 0 {
				return spec.maxLeaf, 0x756e6547, 0x6c65746e, 0x49656e69
			}
			return 0, spec.ebx, 0, 0
		}

		if got := APICID(); got != spec.exp {
			t.Errorf("[spec %d] expected APICID to return %d; got %d", specIndex, spec.exp, got)
		}

		if len(leaves) == 0 || leaves[0] != 0 {
			t.Errorf("[spec %d] expected CPUID leaf 0 to be queried first; got %v", specIndex, leaves)
		}
		if queried := len(leaves) == 2 && leaves[1] == 1; queried != (spec.maxLeaf >= 1) {
			t.Errorf("[spec %d] unexpected CPUID leaves queried: %v", specIndex, leaves)
		}
	}
}
