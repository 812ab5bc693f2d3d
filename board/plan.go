package board

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"omibyte.io/clocktree/clock"
	"omibyte.io/clocktree/targets"
)

// Plan is a validated profile resolved to clock identifiers. Generators are in the order they
// have to be configured in.
type Plan struct {
	Name       string
	Target     targets.TargetInfo
	Reference  clock.Reference
	Generators []GeneratorPlan
	Channels   []ChannelPlan
}

type GeneratorPlan struct {
	ID               clock.GeneratorID
	Source           clock.Source
	Divider          uint32
	ImproveDutyCycle bool
	Standby          bool
	Frequency        clock.Hertz
}

type ChannelPlan struct {
	ID        clock.ChannelID
	Generator clock.GeneratorID
	Frequency clock.Hertz
}

// bringup returns the generators every controller configures for ref before a profile applies.
func bringup(ref clock.Reference) []GeneratorPlan {
	switch ref {
	case clock.ReferenceOSC8M:
		return []GeneratorPlan{{ID: clock.GCLK0, Source: clock.SourceOSC8M, Divider: 1, Frequency: clock.OSC8M}}
	case clock.ReferenceOSC32K, clock.ReferenceXOSC32K:
		src := clock.SourceOSC32K
		if ref == clock.ReferenceXOSC32K {
			src = clock.SourceXOSC32K
		}
		return []GeneratorPlan{
			{ID: clock.GCLK0, Source: clock.SourceDFLL48M, Divider: 1, ImproveDutyCycle: true, Frequency: clock.OSC48M},
			{ID: clock.GCLK1, Source: src, Divider: 1, Frequency: clock.OSC32K},
		}
	default:
		return []GeneratorPlan{{ID: clock.GCLK0, Source: clock.SourceDFLL48M, Divider: 1, ImproveDutyCycle: true, Frequency: clock.OSC48M}}
	}
}

// oscillatorRuns reports whether src runs after bringing the tree up for ref.
func oscillatorRuns(src clock.Source, ref clock.Reference) bool {
	switch src {
	case clock.SourceOSC32K:
		return ref == clock.ReferenceOSC32K
	case clock.SourceXOSC32K:
		return ref == clock.ReferenceXOSC32K
	case clock.SourceDFLL48M:
		return ref != clock.ReferenceOSC8M
	default:
		return true
	}
}

// Plan validates the profile against the chip catalogue and resolves it.
func (p *Profile) Plan() (*Plan, error) {
	target, err := targets.All().Lookup(p.Chip)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidProfile, err.Error())
	}
	ref, err := clock.ParseReference(p.Reference)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidProfile, err.Error())
	}
	if !target.HasReference(ref) {
		return nil, errors.Wrapf(ErrInvalidProfile, "%s cannot reference its DFLL48M to %s", p.Chip, ref)
	}

	plan := &Plan{Name: p.Name, Target: target, Reference: ref}

	var (
		freqs   [clock.NumGenerators]clock.Hertz
		running [clock.NumGenerators]bool
	)
	for _, g := range bringup(ref) {
		freqs[g.ID] = g.Frequency
		running[g.ID] = true
	}

	configured := map[clock.GeneratorID]GeneratorPlan{}
	names := maps.Keys(p.Generators)
	slices.Sort(names)
	for _, name := range names {
		g, err := p.generator(name, target, ref, running)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidProfile, "generator %s: %v", name, err)
		}
		if _, dup := configured[g.ID]; dup {
			return nil, errors.Wrapf(ErrInvalidProfile, "generator %s listed twice", name)
		}
		configured[g.ID] = g
	}

	// GCLK1 has to be known before anything divides it.
	if g, ok := configured[clock.GCLK1]; ok {
		freqs[clock.GCLK1] = g.Frequency
		running[clock.GCLK1] = true
	}
	for id, g := range configured {
		if g.Source == clock.SourceGCLKGEN1 {
			if !running[clock.GCLK1] {
				return nil, errors.Wrapf(ErrInvalidProfile, "generator %s: GCLK1 does not run", id)
			}
			g.Frequency = freqs[clock.GCLK1] / clock.Hertz(g.Divider)
			configured[id] = g
		}
		freqs[id] = g.Frequency
		running[id] = true
	}

	chNames := maps.Keys(p.Channels)
	slices.Sort(chNames)
	var routed clock.UsageSet
	for _, name := range chNames {
		ch, err := p.channel(name, target, ref, freqs, running)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidProfile, "channel %s: %v", name, err)
		}
		if routed.Has(ch.ID) {
			return nil, errors.Wrapf(ErrInvalidProfile, "channel %s listed twice", name)
		}
		routed |= 1 << ch.ID
		plan.Channels = append(plan.Channels, ch)
	}
	slices.SortFunc(plan.Channels, func(a, b ChannelPlan) bool {
		return a.ID < b.ID
	})

	order, err := plan.treeWith(configured).Order()
	if err != nil {
		return nil, errors.Wrap(ErrInvalidProfile, err.Error())
	}
	for _, n := range order {
		if n.Kind != clock.KindGenerator {
			continue
		}
		id, _ := clock.ParseGenerator(n.Name)
		if g, ok := configured[id]; ok {
			plan.Generators = append(plan.Generators, g)
		}
	}
	return plan, nil
}

func (p *Profile) generator(name string, target targets.TargetInfo, ref clock.Reference, running [clock.NumGenerators]bool) (GeneratorPlan, error) {
	id, err := clock.ParseGenerator(name)
	if err != nil {
		return GeneratorPlan{}, err
	}
	if !target.HasGenerator(id) {
		return GeneratorPlan{}, errors.Errorf("%s has %d generators", target.Series, target.Generators)
	}
	if running[id] {
		return GeneratorPlan{}, ErrReserved
	}

	cfg := p.Generators[name]
	src, err := clock.ParseSource(cfg.Source)
	if err != nil {
		return GeneratorPlan{}, err
	}
	if src == clock.SourceGCLKGEN1 && id == clock.GCLK1 {
		return GeneratorPlan{}, errors.Wrap(clock.ErrUnsupportedSource, "GCLK1 cannot divide itself")
	}
	if src != clock.SourceGCLKGEN1 && src.Frequency() == 0 {
		return GeneratorPlan{}, errors.Wrapf(clock.ErrUnsupportedSource, "%s", src)
	}
	if !oscillatorRuns(src, ref) {
		return GeneratorPlan{}, errors.Errorf("%s is not started by the %s bring-up", src, ref)
	}
	if cfg.Divider == 0 {
		cfg.Divider = 1
	}
	if cfg.Divider > id.MaxDivider() {
		return GeneratorPlan{}, errors.Wrapf(clock.ErrInvalidDivider, "%d exceeds %d", cfg.Divider, id.MaxDivider())
	}

	g := GeneratorPlan{
		ID:               id,
		Source:           src,
		Divider:          cfg.Divider,
		ImproveDutyCycle: cfg.ImproveDutyCycle,
		Standby:          cfg.Standby,
	}
	if src != clock.SourceGCLKGEN1 {
		g.Frequency = src.Frequency() / clock.Hertz(cfg.Divider)
	}
	return g, nil
}

func (p *Profile) channel(name string, target targets.TargetInfo, ref clock.Reference, freqs [clock.NumGenerators]clock.Hertz, running [clock.NumGenerators]bool) (ChannelPlan, error) {
	info, err := target.Channel(name)
	if err != nil {
		return ChannelPlan{}, err
	}
	id := clock.ChannelID(info.ID)
	if id == clock.DFLL48 && ref != clock.ReferenceOSC8M {
		return ChannelPlan{}, errors.Errorf("taken by the DFLL48M %s reference", ref)
	}

	gen, err := clock.ParseGenerator(p.Channels[name])
	if err != nil {
		return ChannelPlan{}, err
	}
	if !running[gen] {
		return ChannelPlan{}, errors.Wrapf(ErrUnknownRoute, "%s", gen)
	}
	return ChannelPlan{ID: id, Generator: gen, Frequency: freqs[gen]}, nil
}

// Tree returns the clock tree the plan produces, including the bring-up.
func (pl *Plan) Tree() *clock.Tree {
	configured := make(map[clock.GeneratorID]GeneratorPlan, len(pl.Generators))
	for _, g := range pl.Generators {
		configured[g.ID] = g
	}
	return pl.treeWith(configured)
}

func (pl *Plan) treeWith(configured map[clock.GeneratorID]GeneratorPlan) *clock.Tree {
	tree := clock.NewTree()
	var freqs [clock.NumGenerators]clock.Hertz
	for _, g := range bringup(pl.Reference) {
		_ = tree.SetGenerator(g.ID, g.Source, g.Divider, g.Frequency)
		freqs[g.ID] = g.Frequency
	}
	if pl.Reference == clock.ReferenceOSC32K || pl.Reference == clock.ReferenceXOSC32K {
		tree.SetChannel(clock.DFLL48, clock.GCLK1, clock.OSC32K)
	}
	for _, g := range configured {
		_ = tree.SetGenerator(g.ID, g.Source, g.Divider, g.Frequency)
		freqs[g.ID] = g.Frequency
	}
	for _, ch := range pl.Channels {
		tree.SetChannel(ch.ID, ch.Generator, freqs[ch.Generator])
	}
	return tree
}
