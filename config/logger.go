package config

import (
	"github.com/MonkyMars/gecho"
)

var logger *gecho.Logger = gecho.NewDefaultLogger()

// InitializeLogger builds the process logger at the level matching the environment.
func InitializeLogger() *gecho.Logger {
	logLevel := gecho.ParseLogLevel(GetLogLevel())
	logger = gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(!IsProduction()), gecho.WithLogLevel(logLevel)))
	return logger
}

func GetLogger() *gecho.Logger {
	return logger
}
