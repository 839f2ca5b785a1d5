package main

import (
	"log"

	"github.com/thiagokokada/gitnav/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		log.Fatalf("gitnav: %v", err)
	}
}
