// Package config loads the webkeys TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"

	"webkeys/embeddedConfig"
	"webkeys/keys"

	"github.com/pelletier/go-toml"
)

// TScanDevices selects the evdev devices read by "webkeys --listen".
type TScanDevices struct {
	Search   string         `toml:"Search" default:"/dev/input/event*"`
	Bypass   string         `toml:"Bypass" default:"(?i)Video|Camera"`
	BypassRE *regexp.Regexp `toml:"-"`
}

// Config is the parsed webkeys configuration.
type Config struct {
	// Browser key code => key, consulted for codes the built-in table
	// leaves unmapped
	Extra       map[int]keys.Key
	ScanDevices TScanDevices
}

type tomlConfig struct {
	Extra       map[string]string `toml:"Extra"`
	ScanDevices TScanDevices      `toml:"ScanDevices"`
}

// Default returns the embedded configuration.
func Default() *Config {
	conf, err := Parse([]byte(embeddedConfig.Toml))
	if err != nil {
		panic(fmt.Errorf("Config error: embedded config is broken: %w", err))
	}
	return conf
}

// Load reads the config file at path. An empty path, or a file that does not
// exist, yields the embedded configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	conf_, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}
	conf, err := Parse(conf_)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return conf, nil
}

// Parse decodes a TOML document. Missing sections take their defaults.
func Parse(data []byte) (*Config, error) {
	raw := tomlConfig{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	conf := &Config{
		Extra:       make(map[int]keys.Key, len(raw.Extra)),
		ScanDevices: raw.ScanDevices,
	}
	for k, v := range raw.Extra {
		code, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("[Extra]: key code %q is not an integer", k)
		}
		key, err := keys.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("[Extra] %d: %w", code, err)
		}
		if key == keys.None {
			return nil, fmt.Errorf("[Extra] %d: None can't be mapped", code)
		}
		conf.Extra[code] = key
	}

	if conf.ScanDevices.Search == "" {
		conf.ScanDevices.Search = "/dev/input/event*"
	}
	if conf.ScanDevices.Bypass != "" { // An empty regexp would bypass everything
		var err error
		if conf.ScanDevices.BypassRE, err = regexp.Compile(conf.ScanDevices.Bypass); err != nil {
			return nil, fmt.Errorf("[ScanDevices]: invalid regexp for \"Bypass\": %w", err)
		}
	}
	return conf, nil
}
