package game

// Event is a discrete side-effect notification emitted by the simulation.
// The presentation layer consumes events for audio cues; one notification is
// sent per triggering occurrence, never batched.
type Event int

const (
	EventShoot     Event = iota // Player fired the cannons
	EventExplosion              // Something blew up
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventShoot:
		return "shoot"
	case EventExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// EventSink receives event notifications from the simulation.
// Implementations must not block: the step dispatches fire-and-forget and a
// failed or slow sink must never stall a frame.
type EventSink interface {
	Notify(Event)
}

// nopSink discards all events. Used until the platform installs a real sink.
type nopSink struct{}

func (nopSink) Notify(Event) {}

// ScoreKeeper persists new high scores. Called whenever the current score
// first exceeds the stored high score, not only at game over. Implementations
// recover their own failures; the simulation continues regardless.
type ScoreKeeper interface {
	SaveHighScore(score int)
}

// nopKeeper discards high scores.
type nopKeeper struct{}

func (nopKeeper) SaveHighScore(int) {}
