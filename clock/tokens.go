package clock

// Channel is implemented by the empty marker type of every peripheral clock channel.
type Channel interface {
	ID() ChannelID
}

// Token proves that channel C has been enabled. At most one token per channel is issued for the
// lifetime of a controller.
type Token[C Channel] struct {
	freq Hertz
}

// Frequency returns the frequency the channel runs at.
func (t Token[C]) Frequency() Hertz {
	return t.freq
}

// Channel returns the channel the token was issued for.
func (t Token[C]) Channel() ChannelID {
	var c C
	return c.ID()
}

// Enable routes the generator behind h to channel C. It reports false if C was already enabled.
func Enable[C Channel](c *Controller, h GeneratorHandle) (Token[C], bool) {
	var ch C
	freq, ok := c.EnableChannel(ch.ID(), h)
	if !ok {
		return Token[C]{}, false
	}
	return Token[C]{freq: freq}, true
}
