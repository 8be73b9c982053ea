package sat

// LBool represents a lifted boolean. That is, a boolean that can either
// be True, False, or Unknown. It is also the element type of assignment
// buffers, where Unknown marks an unassigned variable.
type LBool int8

const (
	Unknown LBool = 0
	True    LBool = 1
	False   LBool = -1
)

// Lift returns the LBool corresponding to the given bool.
func Lift(b bool) LBool {
	if b {
		return True
	}
	return False
}

// Opposite returns the opposite of the lifted boolean as follows:
//
//	True -> False
//	False -> True
//	Unknown -> Unknown
func (l LBool) Opposite() LBool {
	return -l
}

// Bool returns true if and only if the lifted boolean is True.
func (l LBool) Bool() bool {
	return l == True
}

func (l LBool) String() string {
	switch l {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}
