package main

import (
	"fmt"
	"os"
)

// @title Take-Home Pay API
// @version 1.0
// @description Take-home pay calculator, exchange rates and profile completion scoring.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
