package fixer

// Status is the lifecycle of one file inside a run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusSkipped
	StatusError
)

// Event is one progress notification emitted while FixAll works.
type Event struct {
	Path     string
	Status   Status
	Removals int
}

// Sink receives progress events. Implementations must be safe for
// concurrent use; FixAll calls OnEvent from multiple workers.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink Sink, evt Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}
