package models

// EventKind represents the type of state change reported by the simulation
type EventKind int

const (
	EventBuilt EventKind = iota
	EventUpgraded
	EventCollectedTuition
	EventCollectedProfit
	EventHired
	EventInstructed
	EventReputationGained
	EventPaidMaintenance
	EventPaidSalaries
	EventReputationLost
	EventRetired
	EventLeft
	EventSkipped // A candidate decision failed and was skipped
)

// String returns a string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventBuilt:
		return "Built"
	case EventUpgraded:
		return "Upgraded"
	case EventCollectedTuition:
		return "CollectedTuition"
	case EventCollectedProfit:
		return "CollectedProfit"
	case EventHired:
		return "Hired"
	case EventInstructed:
		return "Instructed"
	case EventReputationGained:
		return "ReputationGained"
	case EventPaidMaintenance:
		return "PaidMaintenance"
	case EventPaidSalaries:
		return "PaidSalaries"
	case EventReputationLost:
		return "ReputationLost"
	case EventRetired:
		return "Retired"
	case EventLeft:
		return "Left"
	case EventSkipped:
		return "Skipped"
	default:
		return "Unknown"
	}
}

// Phase is the part of the year an event belongs to
type Phase int

const (
	PhaseStart  Phase = iota // capital spending, revenue, hiring
	PhaseDuring              // instruction
	PhaseEnd                 // costs, attrition
)

// Phase returns the part of the year this kind of event happens in
func (k EventKind) Phase() Phase {
	switch k {
	case EventInstructed, EventReputationGained:
		return PhaseDuring
	case EventPaidMaintenance, EventPaidSalaries, EventReputationLost, EventRetired, EventLeft:
		return PhaseEnd
	default:
		return PhaseStart
	}
}

// Event is one structured state-change record
type Event struct {
	Year     int
	Kind     EventKind
	Subject  string       // facility or staff name, empty for university-wide amounts
	Facility FacilityKind // set for facility events
	Amount   float64      // coins, students or reputation depending on Kind
}

// EventSink consumes the event stream
type EventSink interface {
	Emit(Event)
}

// EventFunc adapts a function to EventSink
type EventFunc func(Event)

// Emit calls f(e)
func (f EventFunc) Emit(e Event) { f(e) }

type discard struct{}

func (discard) Emit(Event) {}

// Discard drops every event
var Discard EventSink = discard{}

// MultiSink fans every event out to each sink in order
func MultiSink(sinks ...EventSink) EventSink {
	var live []EventSink
	for _, s := range sinks {
		if s != nil {
			live = append(live, s)
		}
	}
	return EventFunc(func(e Event) {
		for _, s := range live {
			s.Emit(e)
		}
	})
}

// EventLog records events in emission order
type EventLog struct {
	events []Event
}

// Emit appends e to the log
func (l *EventLog) Emit(e Event) {
	l.events = append(l.events, e)
}

// Events returns a copy of the recorded events
func (l *EventLog) Events() []Event {
	result := make([]Event, len(l.events))
	copy(result, l.events)
	return result
}

// OfKind returns recorded events of the given kind
func (l *EventLog) OfKind(kind EventKind) []Event {
	var result []Event
	for _, e := range l.events {
		if e.Kind == kind {
			result = append(result, e)
		}
	}
	return result
}

// Len returns the number of recorded events
func (l *EventLog) Len() int {
	return len(l.events)
}

// Reset drops every recorded event
func (l *EventLog) Reset() {
	l.events = l.events[:0]
}

// YearSummary is the state reported to the driver after each simulated year
type YearSummary struct {
	Year       int     `yaml:"year"`
	Budget     float64 `yaml:"budget"`
	Reputation int     `yaml:"reputation"`
	Students   int     `yaml:"students"`
	Staff      int     `yaml:"staff"`
	Candidates int     `yaml:"candidates"`
}
