package client

// State is the lifecycle state of a [Provider].
type State int32

const (
	StateUninitialized State = iota
	StateGuarding
	StateHydrating
	StateReady
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateGuarding:
		return "guarding"
	case StateHydrating:
		return "hydrating"
	case StateReady:
		return "ready"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
