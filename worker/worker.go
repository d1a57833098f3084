// Package worker runs a process-wide pool of background goroutines for
// CPU-bound work, such as decoding pose assets off the simulation path.
package worker

import (
	"runtime"

	"github.com/getsentry/sentry-go"
)

var queue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go run()
	}
}

func run() {
	defer sentry.Recover()

	for f := range queue {
		f()
	}
}

// Submit schedules f on the pool. It blocks while every worker is busy, which
// keeps callers from outrunning the pool.
func Submit(f func()) {
	queue <- f
}
