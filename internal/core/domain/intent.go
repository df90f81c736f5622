package domain

// Intent classifies what a learner utterance is asking the assistant to
// remember, independent of the question itself.
type Intent int

const (
	// IntentNone means the utterance carried no recognised signal.
	IntentNone Intent = iota

	// IntentWeakTopic means the learner signalled difficulty with a topic.
	IntentWeakTopic

	// IntentIntroduceName means the learner introduced themselves.
	IntentIntroduceName
)

// String returns a human-readable intent name.
func (i Intent) String() string {
	switch i {
	case IntentWeakTopic:
		return "weak_topic"
	case IntentIntroduceName:
		return "introduce_name"
	default:
		return "none"
	}
}

// IntentResult is the output of slot extraction over one utterance.
// Extraction is best-effort: a result always parses, but the slot value
// may be semantically wrong. No validation layer rejects it.
type IntentResult struct {
	Intent Intent

	// Slot is the extracted value: the candidate topic for IntentWeakTopic,
	// the candidate name for IntentIntroduceName.
	Slot string
}
