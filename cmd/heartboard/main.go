// Package main provides the heartboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A local .env may carry the admin password or webhook address.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
