// Command authctl is the command-line client of the auth server.
package main

import "os"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
