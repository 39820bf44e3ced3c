package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		logger.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
