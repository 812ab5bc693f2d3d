package clock

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// GeneratorID names one of the generic clock generators.
type GeneratorID uint8

const (
	GCLK0 GeneratorID = iota
	GCLK1
	GCLK2
	GCLK3
	GCLK4
	GCLK5
	GCLK6
	GCLK7
)

const NumGenerators = 8

// MaxDivider returns the largest linear division factor the generator accepts.
func (id GeneratorID) MaxDivider() uint32 {
	switch id {
	case GCLK1:
		return 1<<16 - 1
	case GCLK2:
		return 1<<5 - 1
	default:
		return 1<<8 - 1
	}
}

func (id GeneratorID) String() string {
	return fmt.Sprintf("GCLK%d", uint8(id))
}

// ParseGenerator parses a generator name such as "GCLK3".
func ParseGenerator(s string) (GeneratorID, error) {
	digits, ok := strings.CutPrefix(strings.ToUpper(s), "GCLK")
	if !ok {
		return 0, errors.Wrapf(ErrUnknownGenerator, "%q", s)
	}
	n, err := strconv.ParseUint(digits, 10, 8)
	if err != nil || n >= NumGenerators {
		return 0, errors.Wrapf(ErrUnknownGenerator, "%q", s)
	}
	return GeneratorID(n), nil
}

// ChannelID names one peripheral clock channel.
type ChannelID uint8

const MaxChannels = 64

func (ch ChannelID) String() string {
	if int(ch) < len(channelNames) {
		return channelNames[ch]
	}
	return fmt.Sprintf("Channel(%d)", uint8(ch))
}

// ParseChannel parses a channel name of the chip family, such as "SERCOM0_CORE".
func ParseChannel(s string) (ChannelID, error) {
	for i, name := range channelNames {
		if strings.EqualFold(name, s) {
			return ChannelID(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownChannel, "%q on %s", s, Family)
}

// Channels returns every channel of the chip family in ascending order.
func Channels() []ChannelID {
	channels := make([]ChannelID, NumChannels)
	for i := range channels {
		channels[i] = ChannelID(i)
	}
	return channels
}

// Source is the input of a generator. Values equal the GENCTRL.SRC encoding.
type Source uint8

const (
	SourceXOSC Source = iota
	SourceGCLKIN
	SourceGCLKGEN1
	SourceOSCULP32K
	SourceOSC32K
	SourceXOSC32K
	SourceOSC8M
	SourceDFLL48M
	SourceDPLL96M
)

var sourceNames = []string{
	SourceXOSC:      "XOSC",
	SourceGCLKIN:    "GCLKIN",
	SourceGCLKGEN1:  "GCLKGEN1",
	SourceOSCULP32K: "OSCULP32K",
	SourceOSC32K:    "OSC32K",
	SourceXOSC32K:   "XOSC32K",
	SourceOSC8M:     "OSC8M",
	SourceDFLL48M:   "DFLL48M",
	SourceDPLL96M:   "DPLL96M",
}

func (s Source) String() string {
	if int(s) < len(sourceNames) {
		return sourceNames[s]
	}
	return fmt.Sprintf("Source(%d)", uint8(s))
}

// Frequency returns the nominal output of an oscillator or multiplier, or 0 for inputs whose
// frequency is not known up front.
func (s Source) Frequency() Hertz {
	switch s {
	case SourceOSC32K, SourceXOSC32K, SourceOSCULP32K:
		return OSC32K
	case SourceOSC8M:
		return OSC8M
	case SourceDFLL48M:
		return OSC48M
	case SourceDPLL96M:
		return DPLL96M
	default:
		return 0
	}
}

// ParseSource parses a source name such as "OSC8M". Matching ignores case.
func ParseSource(s string) (Source, error) {
	for i, name := range sourceNames {
		if strings.EqualFold(name, s) {
			return Source(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedSource, "%q", s)
}

// UsageSet records which channels have been enabled. Bit i stands for channel i.
type UsageSet uint64

func (u UsageSet) Has(ch ChannelID) bool {
	return ch < MaxChannels && u&(1<<ch) != 0
}

func (u UsageSet) with(ch ChannelID) UsageSet {
	return u | 1<<ch
}

// Len returns the number of channels in the set.
func (u UsageSet) Len() int {
	return bits.OnesCount64(uint64(u))
}

// Channels returns the members of the set in ascending order.
func (u UsageSet) Channels() []ChannelID {
	channels := make([]ChannelID, 0, u.Len())
	for rest := uint64(u); rest != 0; rest &= rest - 1 {
		channels = append(channels, ChannelID(bits.TrailingZeros64(rest)))
	}
	return channels
}
