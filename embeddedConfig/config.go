// Package embeddedConfig holds the configuration used when no config file
// can be read.
package embeddedConfig

const Toml = `
# Codes the built-in browser table leaves unmapped.
# Keys are KeyboardEvent.keyCode values, values are key names.
[Extra]
91 = "LeftWindows"
92 = "RightWindows"
93 = "Apps"
44 = "PrintScreen"
144 = "NumLock"

# Devices read by "webkeys --listen".
[ScanDevices]
Search = "/dev/input/event*"
Bypass = "(?i)Video|Camera"
`
