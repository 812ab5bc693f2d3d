// Package board describes the clock configuration of a board in YAML and applies it to a clock
// controller.
//
// A profile names the chip, the reference the DFLL48M is brought up with, and the generators and
// peripheral channels the board needs on top of the bring-up:
//
//	chip: atsamd21g18a
//	reference: osc32k
//	generators:
//	  GCLK3: {source: OSC8M, divider: 8}
//	  GCLK4: {source: GCLKGEN1, divider: 32, standby: true}
//	channels:
//	  SERCOM0_CORE: GCLK0
//	  RTC: GCLK4
package board

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidProfile = errors.New("invalid board profile")
	ErrReserved       = errors.New("generator is configured by the bring-up")
	ErrUnknownRoute   = errors.New("channel routed to a generator that does not run")
)

// Profile is the YAML form of a board's clock configuration.
type Profile struct {
	Name       string                     `yaml:"name"`
	Chip       string                     `yaml:"chip"`
	Reference  string                     `yaml:"reference"`
	Generators map[string]GeneratorConfig `yaml:"generators"`
	Channels   map[string]string          `yaml:"channels"`
}

// GeneratorConfig configures one generator of a profile.
type GeneratorConfig struct {
	Source           string `yaml:"source"`
	Divider          uint32 `yaml:"divider"`
	ImproveDutyCycle bool   `yaml:"improveDutyCycle"`
	Standby          bool   `yaml:"standby"`
}

// Load decodes a profile. Unknown keys are rejected.
func Load(r io.Reader) (*Profile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrInvalidProfile, "empty document")
		}
		return nil, errors.Wrap(err, "decode board profile")
	}
	if p.Reference == "" {
		p.Reference = "osc32k"
	}
	return &p, nil
}

// LoadFile decodes the profile stored at path.
func LoadFile(path string) (*Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Load(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	if p.Name == "" {
		p.Name = path
	}
	return p, nil
}

// Marshal encodes the profile as YAML.
func (p *Profile) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
