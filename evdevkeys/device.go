package evdevkeys

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"webkeys/keys"

	"github.com/gvalkov/golang-evdev"
	log "github.com/sirupsen/logrus"
)

// Event is one EV_KEY event read from a device.
type Event struct {
	Device string
	Code   uint16
	Key    keys.Key
	Value  int32 // 1=press 2=repeat 0=release
}

func (e Event) String() string {
	return fmt.Sprintf("%s:%d", e.Key, e.Value)
}

// Keyboards lists the devices matching the search glob that report key
// events, skipping those whose name matches bypass. A nil bypass skips
// nothing.
func Keyboards(search string, bypass *regexp.Regexp) ([]*evdev.InputDevice, error) {
	devices, err := evdev.ListInputDevices(search)
	if err != nil {
		return nil, fmt.Errorf("unable to list devices %q: %w", search, err)
	}

	keyboards := make([]*evdev.InputDevice, 0, len(devices))
	for _, device := range devices {
		if bypass != nil && bypass.MatchString(device.Name) {
			log.Debugf("Bypassing device %q", device.Name)
			device.File.Close()
			continue
		}
		if !isKeyboard(device) {
			device.File.Close()
			continue
		}
		keyboards = append(keyboards, device)
	}
	return keyboards, nil
}

func isKeyboard(device *evdev.InputDevice) bool {
	for ev := range device.Capabilities {
		switch ev.Type {
		case evdev.EV_ABS, evdev.EV_REL:
			return false // Mice and touchpads also have EV_KEY buttons
		}
	}
	for ev := range device.Capabilities {
		if ev.Type == evdev.EV_KEY {
			return true
		}
	}
	return false
}

// Listen reads key events from all devices into events until ctx is done or
// every device failed. Devices are closed on return. events is not closed.
func Listen(ctx context.Context, devices []*evdev.InputDevice, events chan<- Event) {
	var wg sync.WaitGroup
	for _, device := range devices {
		wg.Add(1)
		go func(device *evdev.InputDevice) {
			defer wg.Done()
			read(ctx, device, events)
		}(device)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return
	case <-ctx.Done():
	}

	// Unblock the readers
	for _, device := range devices {
		device.File.Close()
	}
	<-done
}

func read(ctx context.Context, device *evdev.InputDevice, events chan<- Event) {
	for {
		event, err := device.ReadOne()
		if err != nil {
			if ctx.Err() == nil {
				log.Warnf("Closing device %q due to an error: %v", device.Name, err)
				device.File.Close()
			}
			return
		}
		if event.Type != evdev.EV_KEY {
			continue
		}

		select {
		case events <- Event{Device: device.Name, Code: event.Code, Key: FromEvdev(event.Code), Value: event.Value}:
		case <-ctx.Done():
			return
		}
	}
}
