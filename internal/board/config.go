package board

// ButtonConfig selects the input device and key code that act as the
// physical button.
type ButtonConfig struct {
	Device string `help:"evdev input device for the physical button (empty disables it)" env:"HIDBRIDGE_BUTTON_DEVICE"`
	Code   uint16 `help:"Key code of the button on that device (default BTN_0)" default:"256" env:"HIDBRIDGE_BUTTON_CODE"`
	Invert bool   `help:"Report the button as pressed while the key is up (pull-up wiring)" env:"HIDBRIDGE_BUTTON_INVERT"`
}

// IndicatorConfig points at the LED mirrored by the indicator toggle.
type IndicatorConfig struct {
	LED string `help:"LED class brightness file mirrored by POST / (empty only tracks state)" env:"HIDBRIDGE_INDICATOR_LED"`
}

// Pressed converts an EV_KEY value (0 up, 1 down, 2 repeat) to the button
// status, honouring Invert.
func (c ButtonConfig) Pressed(value int32) bool {
	down := value != 0
	if c.Invert {
		return !down
	}
	return down
}
