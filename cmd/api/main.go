package main

import (
	"os"

	"github.com/metinatakli/show-reservation-engine/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
