package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-mdfront/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time and configuration.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
	Config *config.Config // Replaced by the loaded config file, if any
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
		Config: config.DefaultConfig(),
	}
}
