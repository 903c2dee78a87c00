// vmgrep prints the lines of a file that contain a match of a pattern.
//
// Usage:
//
//	vmgrep PATTERN FILE
//
// A FILE of "-" reads from standard input.
package main

import (
	"bufio"
	"fmt"
	"os"

	"vmre"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: vmgrep PATTERN FILE")
		os.Exit(2)
	}
	pattern, path := os.Args[1], os.Args[2]

	re, err := vmre.Compile(pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, "vmgrep:", err)
		os.Exit(2)
	}

	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "vmgrep:", err)
			os.Exit(2)
		}
		defer f.Close()
		in = f
	}

	matched := false
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		ok, err := re.MatchString(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "vmgrep:", err)
			os.Exit(2)
		}
		if ok {
			fmt.Println(line)
			matched = true
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "vmgrep:", err)
		os.Exit(2)
	}
	if !matched {
		os.Exit(1)
	}
}
