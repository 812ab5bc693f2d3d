//go:build samd11

package clock

// Family is the chip family whose channel set this build carries.
const Family = "SAMD11"

const (
	// hasManualWrite reports whether NVMCTRL.CTRLB.MANW exists.
	hasManualWrite = false
	// waitsForLock reports whether a crystal referenced DFLL48M is awaited until it locks.
	waitsForLock = false
)

// Peripheral clock channels. Values equal the CLKCTRL.ID encoding.
const (
	DFLL48 ChannelID = iota
	FDPLL
	FDPLL32K
	WDT
	RTC
	EIC
	USB
	EVSYS0
	EVSYS1
	EVSYS2
	EVSYS3
	EVSYS4
	EVSYS5
	SERCOMxSlow
	SERCOM0Core
	SERCOM1Core
	SERCOM2Core
	TCC0
	TC1TC2
	ADC
	ACDig
	ACAna
	DAC
	PTC
)

// NumChannels is the number of peripheral clock channels.
const NumChannels = 24

var channelNames = [NumChannels]string{
	DFLL48:      "DFLL48",
	FDPLL:       "FDPLL",
	FDPLL32K:    "FDPLL32K",
	WDT:         "WDT",
	RTC:         "RTC",
	EIC:         "EIC",
	USB:         "USB",
	EVSYS0:      "EVSYS_0",
	EVSYS1:      "EVSYS_1",
	EVSYS2:      "EVSYS_2",
	EVSYS3:      "EVSYS_3",
	EVSYS4:      "EVSYS_4",
	EVSYS5:      "EVSYS_5",
	SERCOMxSlow: "SERCOMX_SLOW",
	SERCOM0Core: "SERCOM0_CORE",
	SERCOM1Core: "SERCOM1_CORE",
	SERCOM2Core: "SERCOM2_CORE",
	TCC0:        "TCC0",
	TC1TC2:      "TC1_TC2",
	ADC:         "ADC",
	ACDig:       "AC_DIG",
	ACAna:       "AC_ANA",
	DAC:         "DAC",
	PTC:         "PTC",
}

// Channel marker types. A Token[C] proves channel C was enabled.
type (
	TCC0Clock        struct{}
	TC1TC2Clock      struct{}
	SERCOM0CoreClock struct{}
	SERCOM1CoreClock struct{}
	SERCOM2CoreClock struct{}
	RTCClock         struct{}
	ADCClock         struct{}
	WDTClock         struct{}
	EICClock         struct{}
	EVSYS0Clock      struct{}
	EVSYS1Clock      struct{}
	EVSYS2Clock      struct{}
	EVSYS3Clock      struct{}
	EVSYS4Clock      struct{}
	EVSYS5Clock      struct{}
	ACAnaClock       struct{}
	ACDigClock       struct{}
	DACClock         struct{}
)

func (TCC0Clock) ID() ChannelID        { return TCC0 }
func (TC1TC2Clock) ID() ChannelID      { return TC1TC2 }
func (SERCOM0CoreClock) ID() ChannelID { return SERCOM0Core }
func (SERCOM1CoreClock) ID() ChannelID { return SERCOM1Core }
func (SERCOM2CoreClock) ID() ChannelID { return SERCOM2Core }
func (RTCClock) ID() ChannelID         { return RTC }
func (ADCClock) ID() ChannelID         { return ADC }
func (WDTClock) ID() ChannelID         { return WDT }
func (EICClock) ID() ChannelID         { return EIC }
func (EVSYS0Clock) ID() ChannelID      { return EVSYS0 }
func (EVSYS1Clock) ID() ChannelID      { return EVSYS1 }
func (EVSYS2Clock) ID() ChannelID      { return EVSYS2 }
func (EVSYS3Clock) ID() ChannelID      { return EVSYS3 }
func (EVSYS4Clock) ID() ChannelID      { return EVSYS4 }
func (EVSYS5Clock) ID() ChannelID      { return EVSYS5 }
func (ACAnaClock) ID() ChannelID       { return ACAna }
func (ACDigClock) ID() ChannelID       { return ACDig }
func (DACClock) ID() ChannelID         { return DAC }

// TCC0 routes generator h to the TCC0 channel.
func (c *Controller) TCC0(h GeneratorHandle) (Token[TCC0Clock], bool) {
	return Enable[TCC0Clock](c, h)
}

// TC1TC2 routes generator h to the TC1_TC2 channel.
func (c *Controller) TC1TC2(h GeneratorHandle) (Token[TC1TC2Clock], bool) {
	return Enable[TC1TC2Clock](c, h)
}

// SERCOM0Core routes generator h to the SERCOM0_CORE channel.
func (c *Controller) SERCOM0Core(h GeneratorHandle) (Token[SERCOM0CoreClock], bool) {
	return Enable[SERCOM0CoreClock](c, h)
}

// SERCOM1Core routes generator h to the SERCOM1_CORE channel.
func (c *Controller) SERCOM1Core(h GeneratorHandle) (Token[SERCOM1CoreClock], bool) {
	return Enable[SERCOM1CoreClock](c, h)
}

// SERCOM2Core routes generator h to the SERCOM2_CORE channel.
func (c *Controller) SERCOM2Core(h GeneratorHandle) (Token[SERCOM2CoreClock], bool) {
	return Enable[SERCOM2CoreClock](c, h)
}

// RTC routes generator h to the RTC channel.
func (c *Controller) RTC(h GeneratorHandle) (Token[RTCClock], bool) {
	return Enable[RTCClock](c, h)
}

// ADC routes generator h to the ADC channel.
func (c *Controller) ADC(h GeneratorHandle) (Token[ADCClock], bool) {
	return Enable[ADCClock](c, h)
}

// WDT routes generator h to the WDT channel.
func (c *Controller) WDT(h GeneratorHandle) (Token[WDTClock], bool) {
	return Enable[WDTClock](c, h)
}

// EIC routes generator h to the EIC channel.
func (c *Controller) EIC(h GeneratorHandle) (Token[EICClock], bool) {
	return Enable[EICClock](c, h)
}

// EVSYS0 routes generator h to the EVSYS_0 channel.
func (c *Controller) EVSYS0(h GeneratorHandle) (Token[EVSYS0Clock], bool) {
	return Enable[EVSYS0Clock](c, h)
}

// EVSYS1 routes generator h to the EVSYS_1 channel.
func (c *Controller) EVSYS1(h GeneratorHandle) (Token[EVSYS1Clock], bool) {
	return Enable[EVSYS1Clock](c, h)
}

// EVSYS2 routes generator h to the EVSYS_2 channel.
func (c *Controller) EVSYS2(h GeneratorHandle) (Token[EVSYS2Clock], bool) {
	return Enable[EVSYS2Clock](c, h)
}

// EVSYS3 routes generator h to the EVSYS_3 channel.
func (c *Controller) EVSYS3(h GeneratorHandle) (Token[EVSYS3Clock], bool) {
	return Enable[EVSYS3Clock](c, h)
}

// EVSYS4 routes generator h to the EVSYS_4 channel.
func (c *Controller) EVSYS4(h GeneratorHandle) (Token[EVSYS4Clock], bool) {
	return Enable[EVSYS4Clock](c, h)
}

// EVSYS5 routes generator h to the EVSYS_5 channel.
func (c *Controller) EVSYS5(h GeneratorHandle) (Token[EVSYS5Clock], bool) {
	return Enable[EVSYS5Clock](c, h)
}

// ACAna routes generator h to the AC_ANA channel.
func (c *Controller) ACAna(h GeneratorHandle) (Token[ACAnaClock], bool) {
	return Enable[ACAnaClock](c, h)
}

// ACDig routes generator h to the AC_DIG channel.
func (c *Controller) ACDig(h GeneratorHandle) (Token[ACDigClock], bool) {
	return Enable[ACDigClock](c, h)
}

// DAC routes generator h to the DAC channel.
func (c *Controller) DAC(h GeneratorHandle) (Token[DACClock], bool) {
	return Enable[DACClock](c, h)
}
