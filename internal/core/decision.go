package core

// Decision is a policy verdict returned by the server for one hook event.
type Decision string

// All policy decisions, in precedence order (halt strongest, allow weakest).
const (
	Halt  Decision = "halt"
	Deny  Decision = "deny"
	Ask   Decision = "ask"
	Allow Decision = "allow"
)

// Valid reports whether d is a recognized decision value.
func (d Decision) Valid() bool {
	switch d {
	case Halt, Deny, Ask, Allow:
		return true
	}
	return false
}

// Blocking reports whether the decision blocks the action outright.
func (d Decision) Blocking() bool {
	return d == Deny || d == Halt
}
