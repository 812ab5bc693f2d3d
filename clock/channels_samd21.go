//go:build !samd11

package clock

// Family is the chip family whose channel set this build carries.
const Family = "SAMD21"

const (
	// hasManualWrite reports whether NVMCTRL.CTRLB.MANW exists.
	hasManualWrite = true
	// waitsForLock reports whether a crystal referenced DFLL48M is awaited until it locks.
	waitsForLock = true
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
	EVSYS6
	EVSYS7
	EVSYS8
	EVSYS9
	EVSYS10
	EVSYS11
	SERCOMxSlow
	SERCOM0Core
	SERCOM1Core
	SERCOM2Core
	SERCOM3Core
	SERCOM4Core
	SERCOM5Core
	TCC0TCC1
	TCC2TC3
	TC4TC5
	TC6TC7
	ADC
	ACDig
	ACAna
	DAC
	PTC
	I2S0
	I2S1
)

// NumChannels is the number of peripheral clock channels.
const NumChannels = 37

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
	EVSYS6:      "EVSYS_6",
	EVSYS7:      "EVSYS_7",
	EVSYS8:      "EVSYS_8",
	EVSYS9:      "EVSYS_9",
	EVSYS10:     "EVSYS_10",
	EVSYS11:     "EVSYS_11",
	SERCOMxSlow: "SERCOMX_SLOW",
	SERCOM0Core: "SERCOM0_CORE",
	SERCOM1Core: "SERCOM1_CORE",
	SERCOM2Core: "SERCOM2_CORE",
	SERCOM3Core: "SERCOM3_CORE",
	SERCOM4Core: "SERCOM4_CORE",
	SERCOM5Core: "SERCOM5_CORE",
	TCC0TCC1:    "TCC0_TCC1",
	TCC2TC3:     "TCC2_TC3",
	TC4TC5:      "TC4_TC5",
	TC6TC7:      "TC6_TC7",
	ADC:         "ADC",
	ACDig:       "AC_DIG",
	ACAna:       "AC_ANA",
	DAC:         "DAC",
	PTC:         "PTC",
	I2S0:        "I2S_0",
	I2S1:        "I2S_1",
}

// Channel marker types. A Token[C] proves channel C was enabled.
type (
	TCC0TCC1Clock    struct{}
	TCC2TC3Clock     struct{}
	TC4TC5Clock      struct{}
	TC6TC7Clock      struct{}
	SERCOM0CoreClock struct{}
	SERCOM1CoreClock struct{}
	SERCOM2CoreClock struct{}
	SERCOM3CoreClock struct{}
	SERCOM4CoreClock struct{}
	SERCOM5CoreClock struct{}
	USBClock         struct{}
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
	EVSYS6Clock      struct{}
	EVSYS7Clock      struct{}
	EVSYS8Clock      struct{}
	EVSYS9Clock      struct{}
	EVSYS10Clock     struct{}
	EVSYS11Clock     struct{}
	ACAnaClock       struct{}
	ACDigClock       struct{}
	DACClock         struct{}
	I2S0Clock        struct{}
	I2S1Clock        struct{}
)

func (TCC0TCC1Clock) ID() ChannelID    { return TCC0TCC1 }
func (TCC2TC3Clock) ID() ChannelID     { return TCC2TC3 }
func (TC4TC5Clock) ID() ChannelID      { return TC4TC5 }
func (TC6TC7Clock) ID() ChannelID      { return TC6TC7 }
func (SERCOM0CoreClock) ID() ChannelID { return SERCOM0Core }
func (SERCOM1CoreClock) ID() ChannelID { return SERCOM1Core }
func (SERCOM2CoreClock) ID() ChannelID { return SERCOM2Core }
func (SERCOM3CoreClock) ID() ChannelID { return SERCOM3Core }
func (SERCOM4CoreClock) ID() ChannelID { return SERCOM4Core }
func (SERCOM5CoreClock) ID() ChannelID { return SERCOM5Core }
func (USBClock) ID() ChannelID         { return USB }
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
func (EVSYS6Clock) ID() ChannelID      { return EVSYS6 }
func (EVSYS7Clock) ID() ChannelID      { return EVSYS7 }
func (EVSYS8Clock) ID() ChannelID      { return EVSYS8 }
func (EVSYS9Clock) ID() ChannelID      { return EVSYS9 }
func (EVSYS10Clock) ID() ChannelID     { return EVSYS10 }
func (EVSYS11Clock) ID() ChannelID     { return EVSYS11 }
func (ACAnaClock) ID() ChannelID       { return ACAna }
func (ACDigClock) ID() ChannelID       { return ACDig }
func (DACClock) ID() ChannelID         { return DAC }
func (I2S0Clock) ID() ChannelID        { return I2S0 }
func (I2S1Clock) ID() ChannelID        { return I2S1 }

// TCC0TCC1 routes generator h to the TCC0_TCC1 channel.
func (c *Controller) TCC0TCC1(h GeneratorHandle) (Token[TCC0TCC1Clock], bool) {
	return Enable[TCC0TCC1Clock](c, h)
}

// TCC2TC3 routes generator h to the TCC2_TC3 channel.
func (c *Controller) TCC2TC3(h GeneratorHandle) (Token[TCC2TC3Clock], bool) {
	return Enable[TCC2TC3Clock](c, h)
}

// TC4TC5 routes generator h to the TC4_TC5 channel.
func (c *Controller) TC4TC5(h GeneratorHandle) (Token[TC4TC5Clock], bool) {
	return Enable[TC4TC5Clock](c, h)
}

// TC6TC7 routes generator h to the TC6_TC7 channel.
func (c *Controller) TC6TC7(h GeneratorHandle) (Token[TC6TC7Clock], bool) {
	return Enable[TC6TC7Clock](c, h)
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

// SERCOM3Core routes generator h to the SERCOM3_CORE channel.
func (c *Controller) SERCOM3Core(h GeneratorHandle) (Token[SERCOM3CoreClock], bool) {
	return Enable[SERCOM3CoreClock](c, h)
}

// SERCOM4Core routes generator h to the SERCOM4_CORE channel.
func (c *Controller) SERCOM4Core(h GeneratorHandle) (Token[SERCOM4CoreClock], bool) {
	return Enable[SERCOM4CoreClock](c, h)
}

// SERCOM5Core routes generator h to the SERCOM5_CORE channel.
func (c *Controller) SERCOM5Core(h GeneratorHandle) (Token[SERCOM5CoreClock], bool) {
	return Enable[SERCOM5CoreClock](c, h)
}

// USB routes generator h to the USB channel.
func (c *Controller) USB(h GeneratorHandle) (Token[USBClock], bool) {
	return Enable[USBClock](c, h)
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

// EVSYS6 routes generator h to the EVSYS_6 channel.
func (c *Controller) EVSYS6(h GeneratorHandle) (Token[EVSYS6Clock], bool) {
	return Enable[EVSYS6Clock](c, h)
}

// EVSYS7 routes generator h to the EVSYS_7 channel.
func (c *Controller) EVSYS7(h GeneratorHandle) (Token[EVSYS7Clock], bool) {
	return Enable[EVSYS7Clock](c, h)
}

// EVSYS8 routes generator h to the EVSYS_8 channel.
func (c *Controller) EVSYS8(h GeneratorHandle) (Token[EVSYS8Clock], bool) {
	return Enable[EVSYS8Clock](c, h)
}

// EVSYS9 routes generator h to the EVSYS_9 channel.
func (c *Controller) EVSYS9(h GeneratorHandle) (Token[EVSYS9Clock], bool) {
	return Enable[EVSYS9Clock](c, h)
}

// EVSYS10 routes generator h to the EVSYS_10 channel.
func (c *Controller) EVSYS10(h GeneratorHandle) (Token[EVSYS10Clock], bool) {
	return Enable[EVSYS10Clock](c, h)
}

// EVSYS11 routes generator h to the EVSYS_11 channel.
func (c *Controller) EVSYS11(h GeneratorHandle) (Token[EVSYS11Clock], bool) {
	return Enable[EVSYS11Clock](c, h)
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

// I2S0 routes generator h to the I2S_0 channel.
func (c *Controller) I2S0(h GeneratorHandle) (Token[I2S0Clock], bool) {
	return Enable[I2S0Clock](c, h)
}

// I2S1 routes generator h to the I2S_1 channel.
func (c *Controller) I2S1(h GeneratorHandle) (Token[I2S1Clock], bool) {
	return Enable[I2S1Clock](c, h)
}
