package main

import (
	"os"

	"github.com/alaaabdelzaher/web-sub000/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
