// vmregen compiles a pattern ahead of time and emits a Go source file
// embedding the resulting program, or dumps its instruction listing.
//
// Usage:
//
//	vmregen -pattern 'a(b|c)*d' -name Foo -pkg patterns -o foo_gen.go
//	vmregen -pattern 'a(b|c)*d' -dump
package main

import (
	"flag"
	"fmt"
	"os"

	"vmre"
)

func main() {
	var (
		pattern = flag.String("pattern", "", "pattern to compile")
		name    = flag.String("name", "Pattern", "exported name for the generated machine")
		pkg     = flag.String("pkg", "main", "package name of the generated file")
		output  = flag.String("o", "", "output file (default stdout)")
		dump    = flag.Bool("dump", false, "print the instruction listing instead of generating code")
	)
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "vmregen: -pattern is required")
		flag.Usage()
		os.Exit(2)
	}

	re, err := vmre.Compile(*pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, "vmregen:", err)
		os.Exit(2)
	}

	if *dump {
		fmt.Print(re.Prog().String())
		return
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintln(os.Stderr, "vmregen:", err)
			os.Exit(2)
		}
		defer f.Close()
		out = f
	}

	if err := vmre.GenerateGo(out, *pkg, *name, re); err != nil {
		fmt.Fprintln(os.Stderr, "vmregen:", err)
		os.Exit(2)
	}
}
