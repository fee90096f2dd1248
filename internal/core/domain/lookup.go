package domain

// Messages shown to the user for each failed lookup outcome.
const (
	// MsgEmptyQuery is shown when the query is empty or whitespace only.
	MsgEmptyQuery = "Please enter a word"

	// MsgWordNotAvailable is shown when the service answers with a non-success status.
	MsgWordNotAvailable = "This word is not available"

	// MsgFetchFailed is shown when the request or response decoding fails.
	MsgFetchFailed = "An error occurred while fetching the data"
)

// Outcome identifies how a lookup settled.
type Outcome int

const (
	// OutcomeIdle means no lookup has settled yet (or one is in flight).
	OutcomeIdle Outcome = iota
	// OutcomeValidationError means the query was rejected locally.
	OutcomeValidationError
	// OutcomeServiceError means the service responded with a non-success status.
	OutcomeServiceError
	// OutcomeTransportError means the exchange itself failed.
	OutcomeTransportError
	// OutcomeSuccess means an entry was found.
	OutcomeSuccess
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeValidationError:
		return "validation_error"
	case OutcomeServiceError:
		return "service_error"
	case OutcomeTransportError:
		return "transport_error"
	case OutcomeSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// IsError returns true for the three error outcomes.
func (o Outcome) IsError() bool {
	return o == OutcomeValidationError || o == OutcomeServiceError || o == OutcomeTransportError
}

// LookupState is the settled result of a lookup: idle, an error message, or an entry.
// The fields are unexported so an entry and an error can never coexist.
type LookupState struct {
	outcome Outcome
	message string
	entry   *DictionaryEntry
}

// IdleState returns the empty state.
func IdleState() LookupState {
	return LookupState{outcome: OutcomeIdle}
}

// SuccessState returns a state holding entry.
func SuccessState(entry DictionaryEntry) LookupState {
	return LookupState{outcome: OutcomeSuccess, entry: &entry}
}

// ErrorState returns a state for one of the error outcomes.
// The message is fixed by the outcome; non-error outcomes yield IdleState.
func ErrorState(outcome Outcome) LookupState {
	switch outcome {
	case OutcomeValidationError:
		return LookupState{outcome: outcome, message: MsgEmptyQuery}
	case OutcomeServiceError:
		return LookupState{outcome: outcome, message: MsgWordNotAvailable}
	case OutcomeTransportError:
		return LookupState{outcome: outcome, message: MsgFetchFailed}
	default:
		return IdleState()
	}
}

// Outcome returns how the lookup settled.
func (s LookupState) Outcome() Outcome {
	return s.outcome
}

// Entry returns the found entry, or nil unless the outcome is OutcomeSuccess.
func (s LookupState) Entry() *DictionaryEntry {
	return s.entry
}

// Message returns the error message, or "" unless the outcome is an error.
func (s LookupState) Message() string {
	return s.message
}

// HasEntry reports whether the state holds an entry.
func (s LookupState) HasEntry() bool {
	return s.entry != nil
}

// HasError reports whether the state holds an error message.
func (s LookupState) HasError() bool {
	return s.message != ""
}

// LookupTicket identifies one lookup attempt started by a controller.
type LookupTicket struct {
	// Token increases with every attempt started by the same controller.
	Token uint64

	// Word is the raw query text, untrimmed.
	Word string
}

// LookupResult is the settled state produced for a ticket.
type LookupResult struct {
	Token uint64
	State LookupState
}
