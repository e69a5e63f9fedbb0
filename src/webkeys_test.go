package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"gotest.tools/v3/assert"

	"webkeys/config"
	"webkeys/keycodes"
	"webkeys/keys"
)

func TestParseCode(t *testing.T) {
	code, location, err := parseCode("16:1")
	assert.NilError(t, err)
	assert.Equal(t, code, 16)
	assert.Equal(t, location, 1)

	code, location, err = parseCode("-5")
	assert.NilError(t, err)
	assert.Equal(t, code, -5)
	assert.Equal(t, location, 0)

	_, _, err = parseCode("A")
	assert.ErrorContains(t, err, `invalid key code "A"`)

	_, _, err = parseCode("16:left")
	assert.ErrorContains(t, err, `invalid location "16:left"`)
}

func TestReadStdin(t *testing.T) {
	sequence = false
	table := keycodes.NewTable(map[int]keys.Key{91: keys.LeftWindows})

	var out bytes.Buffer
	in := strings.NewReader("65 16:1 16:0\n'17:2' bogus 91\n\n1000\n")
	assert.NilError(t, readStdin(context.Background(), in, &out, table))
	assert.Equal(t, out.String(), strings.Join([]string{
		"65:0 A",
		"16:1 LeftShift",
		"16:0 RightShift",
		"17:2 RightControl",
		"91:0 LeftWindows",
		"1000:0 None",
		"",
	}, "\n"))
}

func TestSequenceMode(t *testing.T) {
	sequence = true
	defer func() { sequence = false }()

	var out bytes.Buffer
	in := strings.NewReader("\"LeftAlt+F4\"\n")
	assert.NilError(t, readStdin(context.Background(), in, &out, keycodes.NewTable(nil)))
	assert.Equal(t, out.String(), strings.Join([]string{
		"18:1 down LeftAlt",
		"115:0 down F4",
		"18:1 up LeftAlt",
		"115:0 up F4",
		"",
	}, "\n"))
}

func TestFlags(t *testing.T) {
	t.Setenv("CONFIG", "/tmp/from-env.conf")

	args, err := flags([]string{"-s", "--", "A", "B"})
	assert.NilError(t, err)
	assert.DeepEqual(t, args, []string{"A", "B"})
	assert.Assert(t, sequence)
	assert.Equal(t, CONFIG_PATH, "/tmp/from-env.conf")

	args, err = flags([]string{"-c", "/tmp/flag.conf", "65"})
	assert.NilError(t, err)
	assert.DeepEqual(t, args, []string{"65"})
	assert.Assert(t, !sequence)
	assert.Equal(t, CONFIG_PATH, "/tmp/flag.conf")
}

func TestDefaultExtrasDecodeNumLock(t *testing.T) {
	sequence = false
	table := keycodes.NewTable(config.Default().Extra)

	var out bytes.Buffer
	assert.NilError(t, readStdin(context.Background(), strings.NewReader("14 144\n"), &out, table))
	assert.Equal(t, out.String(), "14:0 NumLock\n144:0 NumLock\n")
}

func loggedWarning(hook *test.Hook, text string) bool {
	for _, entry := range hook.AllEntries() {
		if strings.Contains(entry.Message, text) {
			return true
		}
	}
	return false
}

func TestWatchFailureIsNotFatal(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	missing := filepath.Join(t.TempDir(), "no-such-dir", "webkeys.conf")
	assert.Assert(t, !watchConfig(ctx, missing, keycodes.NewTable(nil)))
	assert.Assert(t, loggedWarning(hook, "Not watching "+missing))

	// Falls back to the embedded config and carries on
	assert.NilError(t, run(ctx, []string{"-w", "-c", missing, "65"}))
}

func TestWatchIgnoredWhenListening(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "webkeys.conf")
	conf := "[ScanDevices]\nSearch = \"" + filepath.Join(dir, "event*") + "\"\n"
	assert.NilError(t, os.WriteFile(path, []byte(conf), 0o644))

	err := run(context.Background(), []string{"-l", "-w", "-c", path})
	assert.Assert(t, err != nil) // No keyboards in an empty directory
	assert.Assert(t, loggedWarning(hook, "--watch has no effect with --listen"))
	assert.Assert(t, !loggedWarning(hook, "Not watching"))
}
