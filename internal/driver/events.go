package driver

// Stage identifies a phase of the per-file pipeline.
type Stage uint8

const (
	StageLoad Stage = iota
	StageParse
)

func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "load"
	case StageParse:
		return "parse"
	}
	return "unknown"
}

// Status is the outcome of a stage for one file.
type Status uint8

const (
	StatusStart Status = iota
	StatusOK
	StatusFail
	StatusCached
)

func (s Status) String() string {
	switch s {
	case StatusStart:
		return "start"
	case StatusOK:
		return "ok"
	case StatusFail:
		return "fail"
	case StatusCached:
		return "cached"
	}
	return "unknown"
}

// Event is one progress notification emitted while checking a directory.
type Event struct {
	File        string
	Stage       Stage
	Status      Status
	Diagnostics int
}

// ProgressSink receives events; implementations must be safe for use from
// multiple worker goroutines.
type ProgressSink interface {
	Publish(Event)
}

// ChannelSink forwards events into a channel, for UI consumers.
type ChannelSink struct {
	ch chan Event
}

func NewChannelSink(buffer int) *ChannelSink {
	return &ChannelSink{ch: make(chan Event, buffer)}
}

func (s *ChannelSink) Publish(ev Event) {
	s.ch <- ev
}

// Events returns the receive side of the sink.
func (s *ChannelSink) Events() <-chan Event {
	return s.ch
}

// Close signals that no further events will be published.
func (s *ChannelSink) Close() {
	close(s.ch)
}

// NopSink drops all events.
type NopSink struct{}

func (NopSink) Publish(Event) {}
