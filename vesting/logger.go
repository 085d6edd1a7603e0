package vesting

import (
	"os"

	"github.com/sirupsen/logrus"
)

const logLevelEnv = "CHAINCODE_LOG_LEVEL"

var Logger = newLogger()

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(os.Getenv(logLevelEnv))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func categoryLogger(vestingType VestingType) *logrus.Entry {
	return Logger.WithField("vestingType", vestingType.String())
}
