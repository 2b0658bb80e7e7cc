// Command psoreflect prints the fragment output interface of a WGSL shader.
//
// The output lists each color output the shader writes, with its name and
// slot, in the form consumed by pipeline linking.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gogpu/pso/shade"
)

func main() {
	var entry = flag.String("entry", "", "fragment entry point (default: the sole fragment entry)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: psoreflect [-entry name] shader.wgsl\n")
		os.Exit(2)
	}

	source, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read shader: %v", err)
	}

	outs, err := shade.Reflect(string(source), *entry)
	if err != nil {
		log.Fatalf("Failed to reflect: %v", err)
	}

	if len(outs) == 0 {
		fmt.Println("no color outputs")
		return
	}
	for _, out := range outs {
		name := out.Name
		if name == "" {
			name = "(anonymous)"
		}
		fmt.Printf("@location(%d)\t%s\n", out.Slot, name)
	}
}
