package main

import "os"

func main() {
	cmd := buildRootCommand()
	if err := cmd.Execute(); err != nil || helpRequested {
		os.Exit(1)
	}
}
