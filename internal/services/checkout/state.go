package checkout

// State is a checkout stage.
type State int

const (
	Idle State = iota
	IntentCreated
	Confirming
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case IntentCreated:
		return "intent_created"
	case Confirming:
		return "confirming"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

type transition struct{ from, to State }
