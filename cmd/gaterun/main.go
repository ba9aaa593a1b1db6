// Command gaterun launches a command behind a gate, optionally holds it
// so instrumentation can attach, then releases it and reports how the
// target died.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/probekit/go-gate/child"
)

var (
	hold time.Duration
	poll time.Duration
)

func main() {
	flag.Usage = printUsage
	flag.DurationVar(&hold, "hold", 0, "Hold the gate for a duration before releasing")
	flag.DurationVar(&poll, "poll", 100*time.Millisecond, "Liveness poll interval")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
	}

	proc, err := child.New(strings.Join(args, " "))
	if err != nil {
		log.Fatalln("gaterun:", err)
	}
	defer proc.Close()

	log.Println("forked gated child:", proc.Pid())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	if hold > 0 {
		select {
		case <-time.After(hold):
		case s := <-sig:
			log.Println("received", s, "while gated, terminating")
			proc.Terminate(true)
			os.Exit(1)
		}
	}

	if err := proc.Run(); err != nil {
		log.Fatalln("gaterun:", err)
	}

	tick := time.NewTicker(poll)
	defer tick.Stop()
	for proc.IsAlive() {
		select {
		case s := <-sig:
			log.Println("received", s, ", terminating child")
			proc.Terminate(true)
		case <-tick.C:
		}
	}

	if code, ok := proc.ExitCode(); ok {
		log.Println("child exited with code", code)
		os.Exit(code)
	}
	if ts, ok := proc.TermSignal(); ok {
		log.Println("child killed by signal", ts)
		os.Exit(128 + int(ts))
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] command ...\n", os.Args[0])
	flag.PrintDefaults()
	os.Exit(2)
}
