package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/spectral/core"
)

func ExampleApplySamplerOptions() {
	cfg := core.ApplySamplerOptions(core.WithFixedRange(400, 700))

	fmt.Printf("fixed=[%.0f, %.0f] seeded=%t\n", cfg.FixedMin, cfg.FixedMax, cfg.Source != nil)

	// Output:
	// fixed=[400, 700] seeded=false
}

func ExampleClamp() {
	fmt.Println(core.Clamp(1.5, 0, 1), core.ClampMin(-2, 0))

	// Output:
	// 1 0
}
