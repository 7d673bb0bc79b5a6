package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gravitas-015/hexroute/internal/config"
	"github.com/gravitas-015/hexroute/internal/engine"
	"github.com/gravitas-015/hexroute/internal/metrics"
	"github.com/gravitas-015/hexroute/internal/protocol"
	"github.com/gravitas-015/hexroute/internal/routing"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/hexroute.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		// Configuration never governs protocol correctness, only
		// observability: a corrupt config file falls back to defaults
		// rather than aborting the driver before it reads a command line.
		if config.LevelEnabled(config.Default().Log.Level, "warn") {
			log.Printf("warning: failed to load configuration, using defaults: %v", err)
		}
		cfg = config.Default()
	}

	var collector *metrics.Collector
	var debugServer interface {
		Shutdown(ctx context.Context) error
	}
	if cfg.Observability.Enabled {
		collector = metrics.New()
		debugServer = metrics.StartDebugServer(cfg.Observability.ListenAddr, cfg.Log.Level, collector)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigChan
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := debugServer.Shutdown(ctx); err != nil && config.LevelEnabled(cfg.Log.Level, "warn") {
				log.Printf("error shutting down debug server: %v", err)
			}
			os.Exit(0)
		}()
	}

	run(os.Stdin, os.Stdout, os.Stderr, collector)
}

// run executes the command loop: read a line, dispatch, reply, repeat until
// end of input. No state persists across process invocations.
func run(in *os.File, out, errOut *os.File, collector *metrics.Collector) {
	world := engine.New(collector)
	scanner := bufio.NewScanner(in)
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	for scanner.Scan() {
		cmd, result, token := protocol.Parse(scanner.Text())
		switch result {
		case protocol.Skip:
			continue
		case protocol.Unrecognized:
			fmt.Fprintf(errOut, "KO: %s not a command\n", token)
			continue
		}

		dispatch(world, cmd, writer)
		writer.Flush()
	}
}

func dispatch(world *engine.World, cmd protocol.Command, out *bufio.Writer) {
	start := time.Now()
	var ok bool
	var reply string

	switch cmd.Verb {
	case protocol.Init:
		if err := world.Init(cmd.Args[0], cmd.Args[1]); err != nil {
			fmt.Fprintln(os.Stderr, "KO")
			os.Exit(1)
		}
		ok, reply = true, "OK"

	case protocol.ChangeCost:
		if world.ChangeCost(cmd.Args[0], cmd.Args[1], cmd.Args[2], cmd.Args[3]) {
			ok, reply = true, "OK"
		} else {
			reply = "KO"
		}

	case protocol.ToggleAirRoute:
		if world.ToggleAirRoute(cmd.Args[0], cmd.Args[1], cmd.Args[2], cmd.Args[3]) {
			ok, reply = true, "OK"
		} else {
			reply = "KO"
		}

	case protocol.TravelCost:
		cost := world.TravelCost(cmd.Args[0], cmd.Args[1], cmd.Args[2], cmd.Args[3])
		ok = cost != routing.Unreachable
		reply = strconv.Itoa(cost)
	}

	fmt.Fprintln(out, reply)

	result := "error"
	if ok {
		result = "ok"
	}
	world.RecordCommand(verbName(cmd.Verb), result, time.Since(start).Seconds())
}

func verbName(v protocol.Verb) string {
	switch v {
	case protocol.Init:
		return "init"
	case protocol.ChangeCost:
		return "change_cost"
	case protocol.ToggleAirRoute:
		return "toggle_air_route"
	case protocol.TravelCost:
		return "travel_cost"
	default:
		return "unknown"
	}
}
