// Command motioncraft — CLI анализатора конкурентов: текст, скриншот или HTTP-сервер.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗", err)
		os.Exit(1)
	}
}
