package main

import (
	"log"
	"os"

	"github.com/Arch-Angel-Agency-LLC/starcom-app-sub011/cmd"
)

func main() {
	err := cmd.Run()
	if err != nil {
		log.Printf(err.Error())
		os.Exit(1)
	}
}
