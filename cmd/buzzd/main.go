// Command buzzd hosts configured buzzer devices on a Linux board and
// drives them from an interactive command line.
//
// Usage:
//
//	buzzd -config devices.json [-log "<root>=INFO"]
//
// Each input line is one command and its arguments, e.g.
//
//	sound_buzzer frequency=880 duration=0.5
//	play_harry_potter
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/google/shlex"
	"github.com/juju/loggo"
	"golang.org/x/sync/errgroup"

	"buzzercode-go/board"
	"buzzercode-go/board/periphboard"
	"buzzercode-go/registry"

	// Register device builders.
	_ "buzzercode-go/buzzer"
)

var logger = loggo.GetLogger("buzzer.buzzd")

// localBoardName is the dependency name devices refer to the host board by.
const localBoardName = "local"

type fileConfig struct {
	Devices []deviceConfig `json:"devices"`
}

type deviceConfig struct {
	ID         string         `json:"id"`
	Kind       string         `json:"type"`
	Attributes map[string]any `json:"attributes"`
}

func main() {
	configPath := flag.String("config", "buzzd.json", "path to the device config file")
	logSpec := flag.String("log", "<root>=INFO", "loggo logger configuration")
	flag.Parse()

	if err := loggo.ConfigureLoggers(*logSpec); err != nil {
		fmt.Fprintf(os.Stderr, "bad -log spec: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath); err != nil {
		logger.Criticalf("%v", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	pb, err := periphboard.New()
	if err != nil {
		return err
	}
	deps := board.Dependencies{localBoardName: pb}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	devices, err := buildDevices(ctx, cfg, deps)
	if err != nil {
		return err
	}
	defer closeDevices(devices)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		return nil
	})
	g.Go(func() error {
		defer stop() // EOF or quit ends the process
		return commandLoop(ctx, devices)
	})
	return g.Wait()
}

func loadConfig(path string) (fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg fileConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config: %w", err)
	}
	if len(cfg.Devices) == 0 {
		return fileConfig{}, fmt.Errorf("config %s declares no devices", path)
	}
	return cfg, nil
}

func buildDevices(ctx context.Context, cfg fileConfig, deps board.Dependencies) (map[string]registry.Device, error) {
	devices := map[string]registry.Device{}
	for _, dc := range cfg.Devices {
		b, ok := registry.LookupBuilder(dc.Kind)
		if !ok {
			closeDevices(devices)
			return nil, fmt.Errorf("device %q: unknown kind %q (have %v)",
				dc.ID, dc.Kind, registry.Kinds())
		}
		dev, err := b.Build(ctx, registry.BuildInput{
			ID:         dc.ID,
			Attributes: dc.Attributes,
			Deps:       deps,
		})
		if err != nil {
			closeDevices(devices)
			return nil, fmt.Errorf("device %q: %w", dc.ID, err)
		}
		logger.Infof("built device %q (%s)", dc.ID, dc.Kind)
		devices[dc.ID] = dev
	}
	return devices, nil
}

func closeDevices(devices map[string]registry.Device) {
	for id, dev := range devices {
		if err := dev.Close(); err != nil {
			logger.Warningf("closing %q: %v", id, err)
		}
	}
}

// commandLoop reads lines from stdin and dispatches them to every device.
func commandLoop(ctx context.Context, devices map[string]registry.Device) error {
	ids := make([]string, 0, len(devices))
	for id := range devices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("devices: %s\n", strings.Join(ids, ", "))
	fmt.Println(`enter commands ("quit" to exit):`)

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		name, args, err := parseLine(sc.Text())
		if err != nil {
			fmt.Printf("  %v\n", err)
			continue
		}
		if name == "" {
			continue
		}
		if name == "quit" || name == "exit" {
			return nil
		}
		for _, id := range ids {
			for key, val := range devices[id].Do(ctx, map[string]any{name: args}) {
				fmt.Printf("  %s/%s: %v\n", id, key, val)
			}
		}
	}
	return sc.Err()
}

// parseLine splits "name key=value ..." into a command name and arguments.
// Values parse as numbers when they can.
func parseLine(line string) (string, map[string]any, error) {
	fields, err := shlex.Split(line)
	if err != nil {
		return "", nil, fmt.Errorf("bad command line: %w", err)
	}
	if len(fields) == 0 {
		return "", nil, nil
	}
	args := map[string]any{}
	for _, f := range fields[1:] {
		key, val, ok := strings.Cut(f, "=")
		if !ok {
			return "", nil, fmt.Errorf("argument %q is not key=value", f)
		}
		if n, err := strconv.ParseFloat(val, 64); err == nil {
			args[key] = n
		} else {
			args[key] = val
		}
	}
	return fields[0], args, nil
}
