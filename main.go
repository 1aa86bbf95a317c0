package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/checkers/internal/checkers/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := checkers(); err != nil {
		logrus.Fatal(err)
	}
}

func checkers() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
