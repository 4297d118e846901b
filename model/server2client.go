package model

// ServerMessage is one gob frame sent to a remote client.
type ServerMessage struct {
	Snapshot Snapshot
	Closing  bool
}

type InputKind int

const (
	IN_SWIPE InputKind = iota + 1
	IN_DIRECTION
	IN_START
	IN_PAUSE
	IN_RESET
)

// ClientMessage is one gob frame received from a remote client.
// Dx and Dy are read for IN_SWIPE, Direction for IN_DIRECTION.
type ClientMessage struct {
	Kind      InputKind
	Dx, Dy    float64
	Direction Direction
}

func (k InputKind) Name() string {
	switch k {
	case IN_SWIPE:
		return "SWIPE"
	case IN_DIRECTION:
		return "DIRECTION"
	case IN_START:
		return "START"
	case IN_PAUSE:
		return "PAUSE"
	case IN_RESET:
		return "RESET"
	default:
		return "N/A"
	}
}
