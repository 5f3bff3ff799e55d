package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/koppilab/cryodaq-go/acquire"
	"github.com/koppilab/cryodaq-go/models"
	serialpkg "github.com/koppilab/cryodaq-go/serial"
	"github.com/koppilab/cryodaq-go/thermo"
	"github.com/koppilab/cryodaq-go/ui"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config.json")
		sim        = flag.Bool("sim", false, "run against the simulated source")
	)
	flag.Parse()
	if *configPath == "" && flag.NArg() > 0 {
		*configPath = flag.Arg(0)
	}
	if *configPath == "" {
		fmt.Println("usage: daqcli -config config.json [-sim]")
		os.Exit(2)
	}

	p, err := models.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	ui.DebugPrintf(p.DEBUG, "config: %+v\n", p)

	var src acquire.Source
	var bridge *serialpkg.Bridge
	if *sim || p.SERIAL == nil {
		ui.WarningPrintf("No serial section (or -sim set); using simulated source.\n")
		src = acquire.NewSimSource(p, time.Now().UnixNano())
	} else {
		if strings.TrimSpace(p.SERIAL.PORT) == "" {
			detected := serialpkg.AutoDetectPort(p)
			if detected == "" {
				log.Fatalf("could not auto-detect serial port")
			}
			ui.GreenPrintf("Auto-detected bridge on %s\n", detected)
			p.SERIAL.PORT = detected
		}
		bridge, err = serialpkg.Open(p.SERIAL, p.CHANNELS)
		if err != nil {
			log.Fatalf("open bridge: %v", err)
		}
		defer bridge.Close()
		maj, min, patch, err := bridge.GetVersion()
		if err != nil {
			log.Fatalf("bridge version probe: %v", err)
		}
		ui.GreenPrintf("Bridge firmware %d.%d.%d on %s\n", maj, min, patch, p.SERIAL.PORT)
		src = acquire.NewBridgeSource(bridge, p.FREQ, p.NSAMPLES)
	}

	var logger *acquire.Logger
	if p.LOGFILE != "" {
		logger, err = acquire.NewLogger(p)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer logger.Close()
		ui.GreenPrintf("Logging to %s\n", p.LOGFILE)
	}

	labels := p.Labels()
	cfg := acquire.Config{
		Multipliers: p.Multipliers(),
		ThermCh:     p.THERMCH,
		Curve:       thermo.Name(p.CALIB),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keys := ui.StartKeyEvents()
	ui.DrainKeys()
	ui.GreenPrintf("Measuring. Press q or Esc to stop.\n")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return acquire.Run(ctx, src, p, func() acquire.Config { return cfg }, func(b acquire.Batch) {
			if logger != nil {
				if werr := logger.WriteBatch(b); werr != nil {
					ui.WarningPrintf("log write: %v\n", werr)
				}
			}
			printBatch(b, labels, p.THERMCH)
		})
	})
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case r, ok := <-keys:
				if !ok {
					return ctx.Err()
				}
				if r == 'q' || r == 'Q' || r == 27 {
					cancel()
					return context.Canceled
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("measurement stopped: %v", err)
	}
	ui.GreenPrintf("\nStopped.\n")
}

// printBatch shows the newest row so the operator can watch the run
// without opening the log file.
func printBatch(b acquire.Batch, labels []string, thermCh int) {
	if len(b.Rows) == 0 {
		return
	}
	row := b.Rows[len(b.Rows)-1]
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s", time.Unix(int64(row[0]), 0).Format("15:04:05"))
	for i, label := range labels {
		if i+1 >= len(row) {
			break
		}
		unit := ""
		if i == thermCh {
			unit = " K"
		}
		fmt.Fprintf(&sb, "  %s=%.4g%s", label, row[i+1], unit)
	}
	ui.GreenPrintf("%s\n", sb.String())
}
