// Package phase sequences the greeting through its visual stages.
package phase

// Phase is the current stage of the greeting.
type Phase int

const (
	Asking Phase = iota
	Growing
	Bloomed
)

func (p Phase) String() string {
	switch p {
	case Asking:
		return "asking"
	case Growing:
		return "growing"
	case Bloomed:
		return "bloomed"
	default:
		return "unknown"
	}
}
