package main

import (
	"fmt"
	"os"
	"time"

	"psych-portal-api/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	// Record fatal panics to crash.log before dying so operators can
	// inspect unattended crashes.
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("%s uncaught panic: %v\n", time.Now().Format(time.RFC3339), r)
			os.WriteFile("crash.log", []byte(msg), 0644)
			logrus.Fatalf("Uncaught panic: %v", r)
		}
	}()

	// Initialize application with all dependencies
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	// Run the application
	app.Run()
}
