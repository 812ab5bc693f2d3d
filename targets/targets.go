// Package targets is the catalogue of chips whose clock tree can be brought up.
package targets

import (
	_ "embed"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"omibyte.io/clocktree/clock"
)

//go:embed targets.yaml
var rawTargets []byte

var targets Targets

var (
	ErrUnknownSeries  = errors.New("series not found")
	ErrUnknownChip    = errors.New("chip not found")
	ErrWrongFamily    = errors.New("chip belongs to a family this build does not support")
	ErrUnknownChannel = errors.New("channel not found")
)

func All() Targets {
	return targets
}

type Targets []TargetInfo
type TargetInfo struct {
	Series       string        `yaml:"series"`
	Family       string        `yaml:"family"`
	BuildTag     string        `yaml:"buildTag"`
	Cpu          string        `yaml:"cpu"`
	MaxFrequency uint32        `yaml:"maxFrequency"`
	Generators   int           `yaml:"generators"`
	Chips        []string      `yaml:"chips"`
	References   []string      `yaml:"references"`
	Channels     []ChannelInfo `yaml:"channels"`
}

type ChannelInfo struct {
	Name string `yaml:"name"`
	ID   uint8  `yaml:"id"`
}

// Supported reports whether this build carries the channel set of the target's family.
func (t TargetInfo) Supported() bool {
	return strings.EqualFold(t.Family, clock.Family)
}

// Channel looks up a channel by its name, ignoring case.
func (t TargetInfo) Channel(name string) (ChannelInfo, error) {
	i := slices.IndexFunc(t.Channels, func(ch ChannelInfo) bool {
		return strings.EqualFold(ch.Name, name)
	})
	if i < 0 {
		return ChannelInfo{}, errors.Wrapf(ErrUnknownChannel, "%q on %s", name, t.Series)
	}
	return t.Channels[i], nil
}

// HasGenerator reports whether the target implements generator id.
func (t TargetInfo) HasGenerator(id clock.GeneratorID) bool {
	return int(id) < t.Generators
}

// HasReference reports whether the DFLL48M of the target can lock to ref.
func (t TargetInfo) HasReference(ref clock.Reference) bool {
	return slices.Contains(t.References, ref.String())
}

func (t Targets) FindBySeries(name string) (TargetInfo, error) {
	for _, target := range t {
		if target.Series == strings.ToLower(name) {
			return target, nil
		}
	}
	return TargetInfo{}, errors.Wrapf(ErrUnknownSeries, "%q", name)
}

func (t Targets) FindByChip(name string) (TargetInfo, error) {
	for _, target := range t {
		if slices.Contains(target.Chips, strings.ToLower(name)) {
			return target, nil
		}
	}
	return TargetInfo{}, errors.Wrapf(ErrUnknownChip, "%q", name)
}

// Lookup finds the target of chip and fails if this build cannot drive it.
func (t Targets) Lookup(chip string) (TargetInfo, error) {
	target, err := t.FindByChip(chip)
	if err != nil {
		return TargetInfo{}, err
	}
	if !target.Supported() {
		tag := target.BuildTag
		if tag == "" {
			tag = "no"
		}
		return TargetInfo{}, errors.Wrapf(ErrWrongFamily, "%s is a %s, build with %s tag", chip, target.Family, tag)
	}
	return target, nil
}

// Current returns the target of the family this build carries.
func Current() TargetInfo {
	target, err := targets.FindBySeries(clock.Family)
	if err != nil {
		panic(err)
	}
	return target
}

func init() {
	var t struct {
		Elements []TargetInfo `yaml:"targets"`
	}
	if err := yaml.Unmarshal(rawTargets, &t); err != nil {
		panic(err)
	}

	targets = t.Elements
}
