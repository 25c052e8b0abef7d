package components

// Direction is a facing or movement direction
type Direction uint8

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "none"
}
