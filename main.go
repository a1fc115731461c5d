package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ccmm-tools/ccmm-go/app"
)

func main() {
	if err := app.Run(os.Stdout, os.Stderr); err != nil {
		logrus.Fatal(err)
	}
}
