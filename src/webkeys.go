package main

/*
 webkeys translates browser KeyboardEvent key codes into platform-neutral key
 names, the way a web build of a game sees them.

   webkeys 65 16:1 17:2          # code[:location] pairs
   echo "13 18:1" | webkeys      # same, read from stdin
   webkeys -s "LeftShift+A Enter"  # strokes typing a key sequence
   webkeys -l                    # live keys from evdev keyboards

 Config (TOML) adds codes the built-in table leaves unmapped, look at
 embeddedConfig for the defaults.
*/

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"webkeys/config"
	"webkeys/evdevkeys"
	"webkeys/keycodes"

	"github.com/kballard/go-shellquote"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

const DAEMON_NAME = "webkeys"

var (
	CONFIG_PATH string = "/etc/webkeys/webkeys.conf"

	debug    bool
	verbose  bool
	sequence bool
	listen   bool
	watch    bool
)

// flags parses the command line and returns the positional arguments.
func flags(args []string) ([]string, error) {
	if env_config, ok := os.LookupEnv("CONFIG"); ok {
		CONFIG_PATH = env_config
	}
	_, debug = os.LookupEnv("DEBUG")
	_, verbose = os.LookupEnv("VERBOSE")

	F := flag.NewFlagSet(DAEMON_NAME, flag.ContinueOnError)
	F.StringVarP(&CONFIG_PATH, "conf", "c", CONFIG_PATH, "Non-default config location")
	F.BoolVarP(&debug, "debug", "d", debug, "Debug log level")
	F.BoolVarP(&verbose, "verbose", "v", verbose, "Increase log level to INFO")
	F.BoolVarP(&sequence, "sequence", "s", false, "Arguments are key sequences like \"LeftShift+A Enter\"")
	F.BoolVarP(&listen, "listen", "l", false, "Print keys pressed on evdev keyboards")
	F.BoolVarP(&watch, "watch", "w", false, "Reload the config file when it changes. No effect with --listen")
	if err := F.Parse(args); err != nil {
		return nil, err
	}

	switch {
	case debug:
		log.SetLevel(log.DebugLevel)
	case verbose:
		log.SetLevel(log.InfoLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}
	return F.Args(), nil
}

// parseCode parses "code" or "code:location".
func parseCode(token string) (code, location int, err error) {
	c, l, found := strings.Cut(token, ":")
	if code, err = strconv.Atoi(c); err != nil {
		return 0, 0, fmt.Errorf("invalid key code %q", token)
	}
	if found {
		if location, err = strconv.Atoi(l); err != nil {
			return 0, 0, fmt.Errorf("invalid location %q", token)
		}
	}
	return code, location, nil
}

func translate(w io.Writer, table *keycodes.Table, token string) error {
	code, location, err := parseCode(token)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d:%d %s\n", code, location, table.Translate(code, location))
	return nil
}

func strokes(w io.Writer, seq string) error {
	s, err := keycodes.ForSequence(seq)
	if err != nil {
		return err
	}
	for _, stroke := range s {
		fmt.Fprintf(w, "%s %s\n", stroke, keycodes.ForWeb(stroke.Code, stroke.Location))
	}
	return nil
}

// Handle one token, an argument or a word from stdin.
func process(w io.Writer, table *keycodes.Table, token string) error {
	if sequence {
		return strokes(w, token)
	}
	return translate(w, table, token)
}

func readStdin(ctx context.Context, r io.Reader, w io.Writer, table *keycodes.Table) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		words, err := shellquote.Split(scanner.Text())
		if err != nil {
			log.Warnf("Skipping line %q: %v", scanner.Text(), err)
			continue
		}
		for _, word := range words {
			if err := process(w, table, word); err != nil {
				log.Warn(err)
			}
		}
	}
	return scanner.Err()
}

func listenKeys(ctx context.Context, w io.Writer, conf *config.Config) error {
	devices, err := evdevkeys.Keyboards(conf.ScanDevices.Search, conf.ScanDevices.BypassRE)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		return fmt.Errorf("no keyboards found at %q", conf.ScanDevices.Search)
	}
	for _, device := range devices {
		log.Infof("keyboard: %s", device.Name)
	}

	events := make(chan evdevkeys.Event, 8)
	done := make(chan struct{})
	go func() {
		evdevkeys.Listen(ctx, devices, events)
		close(done)
	}()

	for {
		select {
		case event := <-events:
			if event.Value != 1 { // Presses only
				continue
			}
			fmt.Fprintf(w, "%s %s\n", event.Device, event.Key)
		case <-done:
			return nil
		}
	}
}

// watchConfig keeps the table's extras in sync with the config file. Failing
// to watch is not fatal, the config loaded at start-up stays in effect.
func watchConfig(ctx context.Context, path string, table *keycodes.Table) bool {
	err := config.Watch(ctx, path, func(c *config.Config) {
		table.SetExtra(c.Extra)
	})
	if err != nil {
		log.Warnf("Not watching %s: %v", path, err)
		return false
	}
	return true
}

func run(ctx context.Context, args []string) error {
	args, err := flags(args)
	if err != nil {
		return err
	}

	conf, err := config.Load(CONFIG_PATH)
	if err != nil {
		return err
	}
	log.Debugf("Extra codes: %v", conf.Extra)
	table := keycodes.NewTable(conf.Extra)

	if listen {
		if watch {
			log.Warn("--watch has no effect with --listen, evdev codes don't use the extras")
		}
		return listenKeys(ctx, os.Stdout, conf)
	}

	if watch {
		watchConfig(ctx, CONFIG_PATH, table)
	}

	if len(args) == 0 {
		return readStdin(ctx, os.Stdin, os.Stdout, table)
	}
	for _, arg := range args {
		if err := process(os.Stdout, table, arg); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
