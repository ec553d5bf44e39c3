package herald

// Listener hears proclamations.
type Listener interface {
	// Hear handles a Proclamation.
	Hear(p *Proclamation) error
}

// The ListenerFunc type is an adapter to allow the use of ordinary functions as Listener.
type ListenerFunc func(p *Proclamation) error

// Hear calls f(p).
func (f ListenerFunc) Hear(p *Proclamation) error {
	return f(p)
}

// Subscription identifies one registration on a Bus.
type Subscription uint64

type entry struct {
	sub      Subscription
	listener Listener
	once     bool
}
