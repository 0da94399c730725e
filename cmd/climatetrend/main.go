package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("climatetrend failed", "error", err.Error())
		os.Exit(1)
	}
}
