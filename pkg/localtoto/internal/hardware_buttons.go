//go:build linux

package internal

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/holoplot/go-evdev"

	"github.com/localtoto/localtoto/pkg/localtoto/constants"
)

// HardwareKeyMap maps evdev key codes of handheld front buttons.
var HardwareKeyMap = map[evdev.EvCode]constants.VirtualButton{
	evdev.KEY_UP:     constants.VirtualButtonUp,
	evdev.KEY_DOWN:   constants.VirtualButtonDown,
	evdev.KEY_LEFT:   constants.VirtualButtonLeft,
	evdev.KEY_RIGHT:  constants.VirtualButtonRight,
	evdev.KEY_ENTER:  constants.VirtualButtonA,
	evdev.KEY_OK:     constants.VirtualButtonA,
	evdev.KEY_BACK:   constants.VirtualButtonB,
	evdev.KEY_ESC:    constants.VirtualButtonB,
	evdev.KEY_MENU:   constants.VirtualButtonMenu,
	evdev.KEY_POWER:  constants.VirtualButtonMenu,
	evdev.BTN_START:  constants.VirtualButtonStart,
	evdev.BTN_SOUTH:  constants.VirtualButtonA,
	evdev.BTN_EAST:   constants.VirtualButtonB,
	evdev.BTN_SELECT: constants.VirtualButtonMenu,
}

// ReadHardwareButtons reads key events from an evdev node and sends the
// mapped buttons to out until ctx is done or the device goes away. Key
// auto-repeat (value 2) is forwarded as a repeated press.
func ReadHardwareButtons(ctx context.Context, path string, out chan<- Event) error {
	dev, err := evdev.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	name, _ := dev.Name()
	GetInternalLogger().Info("hardware buttons attached", "device", path, "name", name)

	go func() {
		<-ctx.Done()
		dev.Close()
	}()

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return fmt.Errorf("read %s: %w", path, err)
		}
		mapped, ok := translateKey(ev.Type, ev.Code, ev.Value)
		if !ok {
			continue
		}
		select {
		case out <- mapped:
		case <-ctx.Done():
			return nil
		default:
			GetInternalLogger().Debug("hardware button dropped", "button", mapped.Button.GetName())
		}
	}
}

func translateKey(typ evdev.EvType, code evdev.EvCode, value int32) (Event, bool) {
	if typ != evdev.EV_KEY {
		return Event{}, false
	}
	button, ok := HardwareKeyMap[code]
	if !ok {
		return Event{}, false
	}
	return Event{Button: button, Pressed: value != 0, Repeat: value == 2}, true
}
