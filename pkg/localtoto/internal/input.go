package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/localtoto/localtoto/pkg/localtoto/constants"
)

// Event is a virtual button press or release.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
}

// InputProcessor maps keyboard and game controller events to virtual buttons.
type InputProcessor struct {
	keys        map[sdl.Keycode]constants.VirtualButton
	buttons     map[sdl.GameControllerButton]constants.VirtualButton
	controllers map[sdl.JoystickID]*sdl.GameController
}

var inputProcessor *InputProcessor

// DefaultKeyMap is used in dev mode and on devices that expose a keyboard.
var DefaultKeyMap = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:     constants.VirtualButtonUp,
	sdl.K_DOWN:   constants.VirtualButtonDown,
	sdl.K_LEFT:   constants.VirtualButtonLeft,
	sdl.K_RIGHT:  constants.VirtualButtonRight,
	sdl.K_RETURN: constants.VirtualButtonA,
	sdl.K_ESCAPE: constants.VirtualButtonB,
	sdl.K_TAB:    constants.VirtualButtonStart,
	sdl.K_F10:    constants.VirtualButtonMenu,
}

// DefaultControllerMap follows the SDL game controller layout.
var DefaultControllerMap = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_A:          constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_B:          constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_START:      constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_GUIDE:      constants.VirtualButtonMenu,
	sdl.CONTROLLER_BUTTON_BACK:       constants.VirtualButtonMenu,
}

func InitInputProcessor() {
	inputProcessor = NewInputProcessor(DefaultKeyMap, DefaultControllerMap)
	for i := 0; i < sdl.NumJoysticks(); i++ {
		inputProcessor.openController(i)
	}
}

func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

func NewInputProcessor(keys map[sdl.Keycode]constants.VirtualButton, buttons map[sdl.GameControllerButton]constants.VirtualButton) *InputProcessor {
	return &InputProcessor{
		keys:        keys,
		buttons:     buttons,
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
	}
}

// Process maps an SDL event. ok is false for events that are not button input.
func (p *InputProcessor) Process(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		button, found := p.keys[e.Keysym.Sym]
		if !found {
			return Event{}, false
		}
		return Event{Button: button, Pressed: e.State == sdl.PRESSED, Repeat: e.Repeat != 0}, true
	case *sdl.ControllerButtonEvent:
		button, found := p.buttons[sdl.GameControllerButton(e.Button)]
		if !found {
			return Event{}, false
		}
		return Event{Button: button, Pressed: e.State == sdl.PRESSED}, true
	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			p.closeController(sdl.JoystickID(e.Which))
		}
	}
	return Event{}, false
}

func (p *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	c := sdl.GameControllerOpen(index)
	if c == nil {
		GetInternalLogger().Warn("failed to open controller", "index", index, "error", sdl.GetError())
		return
	}
	id := c.Joystick().InstanceID()
	p.controllers[id] = c
	GetInternalLogger().Info("controller connected", "name", c.Name(), "id", id)
}

func (p *InputProcessor) closeController(id sdl.JoystickID) {
	if c, ok := p.controllers[id]; ok {
		c.Close()
		delete(p.controllers, id)
		GetInternalLogger().Info("controller removed", "id", id)
	}
}

func CloseAllControllers() {
	if inputProcessor == nil {
		return
	}
	for id := range inputProcessor.controllers {
		inputProcessor.closeController(id)
	}
}
