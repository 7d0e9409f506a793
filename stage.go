package jsonrecover

// Stage identifies the recovery step that produced a value.
type Stage string

const (
	// StageDirect means the cleaned text parsed as-is.
	StageDirect Stage = "direct"

	// StagePrefix means the longest parseable prefix of the candidate was used.
	StagePrefix Stage = "prefix"

	// StageBalanced means unterminated structures were closed before parsing.
	StageBalanced Stage = "balanced"

	// StageGreedy means the span between the first opener and the last closer
	// was used.
	StageGreedy Stage = "greedy"

	// StageRepaired means the opt-in [Repairer] rewrote the text. Only
	// reachable through [WithRepair].
	StageRepaired Stage = "repaired"
)

// String implements fmt.Stringer.
func (s Stage) String() string {
	return string(s)
}
