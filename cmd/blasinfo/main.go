// Command blasinfo inspects the axpby/rot kernel dispatcher.
//
// Usage:
//
//	blasinfo backends
//	blasinfo plan [flags]
//	blasinfo bench [flags]
//
// Examples:
//
//	blasinfo backends
//	blasinfo plan --rows 4096 --cols 8 --layout left --alpha 2 --beta -1
//	blasinfo plan --cols 24 --layout right --coeffs
//	blasinfo bench --sizes 1024,65536 --workers 4
//	blasinfo --backend generic -v bench --op rot
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
