package main

import (
	"os"

	// IANA zones for --time-source=location on hosts without zoneinfo
	_ "time/tzdata"
)

func main() {
	if err := execute(newRootCmd(NewApp), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
