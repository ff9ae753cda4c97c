package core

// CommandKind identifies the type of a step command.
type CommandKind uint8

const (
	CmdMove CommandKind = iota
	CmdRotate
	CmdSoftDropTick
	CmdHardDrop
)

// String returns the string representation of a command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdMove:
		return "Move"
	case CmdRotate:
		return "Rotate"
	case CmdSoftDropTick:
		return "SoftDropTick"
	case CmdHardDrop:
		return "HardDrop"
	default:
		return "Unknown"
	}
}

// Command is one discrete input to Game.Step.
type Command struct {
	Kind     CommandKind
	Dir      Dir      // CmdMove only
	Rotation Rotation // CmdRotate only
}

// Move translates the active piece one cell. Move(DirNone) is a no-op.
func Move(d Dir) Command {
	return Command{Kind: CmdMove, Dir: d}
}

// Rotate turns the active piece a quarter-turn, trying wall kicks.
func Rotate(r Rotation) Command {
	return Command{Kind: CmdRotate, Rotation: r}
}

// SoftDropTick is one gravity step.
func SoftDropTick() Command {
	return Command{Kind: CmdSoftDropTick}
}

// HardDrop drops the active piece to its resting position and locks it.
func HardDrop() Command {
	return Command{Kind: CmdHardDrop}
}

// String returns a short description of the command.
func (c Command) String() string {
	switch c.Kind {
	case CmdMove:
		return "Move(" + c.Dir.String() + ")"
	case CmdRotate:
		return "Rotate(" + c.Rotation.String() + ")"
	default:
		return c.Kind.String()
	}
}

// OutcomeKind classifies the effect of a step.
type OutcomeKind uint8

const (
	OutcomeFree    OutcomeKind = iota // Candidate committed
	OutcomeBlocked                    // Candidate rejected, nothing changed
	OutcomeLocked                     // Active piece locked, next piece spawned
)

// String returns the string representation of an outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFree:
		return "Free"
	case OutcomeBlocked:
		return "Blocked"
	case OutcomeLocked:
		return "Locked"
	default:
		return "Unknown"
	}
}

// Outcome reports what one Step did.
type Outcome struct {
	Kind         OutcomeKind
	LinesCleared int
	Points       int // Total points awarded by this step (drop + line clears)
}
