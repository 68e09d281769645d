//go:build !windows

package main

import (
	"os"
	"os/signal"
	"syscall"
)

// termsigs lists the signals whose default action would otherwise leave
// a half-written temp file behind; signalHandler uses them to delete the
// file before the process dies.
var termsigs = []os.Signal{
	syscall.SIGHUP,
	syscall.SIGINT,
	syscall.SIGQUIT,
	syscall.SIGTERM,
	syscall.SIGXCPU,
	syscall.SIGXFSZ,
}

func notifySignals(ch chan<- os.Signal) { signal.Notify(ch, termsigs...) }

func stopSignals(ch chan os.Signal) { signal.Stop(ch) }
