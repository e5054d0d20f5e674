package classifier

import "strings"

// Intent is the classified category of a user utterance. It is a closed
// set; the router switches over it exhaustively.
type Intent string

const (
	IntentUserGuide Intent = "USER_GUIDE"
	IntentContract  Intent = "CONTRACT"
	IntentGeneral   Intent = "GENERAL"
	IntentUnknown   Intent = "UNKNOWN"
)

// ParseIntent coerces a model label into the closed intent set. Only the
// first token counts: matching anywhere in the reply would let a negation
// like "not USER_GUIDE, it is CONTRACT" parse as USER_GUIDE. Anything
// unrecognized becomes IntentUnknown.
func ParseIntent(label string) Intent {
	fields := strings.Fields(strings.ToUpper(label))
	if len(fields) == 0 {
		return IntentUnknown
	}

	switch intent := Intent(strings.Trim(fields[0], `.,:;!?"'`)); intent {
	case IntentUserGuide, IntentContract, IntentGeneral:
		return intent
	default:
		return IntentUnknown
	}
}

// Mode selects the classification strategy.
type Mode string

const (
	ModeKeyword Mode = "keyword"
	ModeModel   Mode = "model"
)

// ParseMode parses a mode string, defaulting to ModeKeyword.
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == ModeModel {
		return ModeModel
	}
	return ModeKeyword
}

// Result is the outcome of a classification.
type Result struct {
	Intent Intent
	// Source names the strategy that actually produced the intent:
	// "keyword" or "model".
	Source string
	// Fallback is true when the model path failed and the keyword
	// classifier answered instead.
	Fallback bool
}
