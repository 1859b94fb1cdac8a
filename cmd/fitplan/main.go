package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(loadServices).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(1)
	}
}
