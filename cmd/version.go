package cmd

import "fmt"

// Version is the release version of the concierge binary.
const Version = "0.1.0"

// runVersion prints version information.
func runVersion() {
	fmt.Printf("concierge %s\n", Version)
}
