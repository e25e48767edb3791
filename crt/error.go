package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Makes any NoRecordFound match the zero value in errors.Is
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// InvalidArgument - Custom error to inform that a given parameter is out of range or
// otherwise unusable
type InvalidArgument struct {
	msg string
}

// NewInvalidArgument - Returns an InvalidArgument carrying a specific message
func NewInvalidArgument(msg string) InvalidArgument {
	return InvalidArgument{msg: msg}
}

// Error - Used to notify that a given parameter was rejected
func (E InvalidArgument) Error() string {
	if E.msg == "" {
		return "invalid argument"
	}
	return E.msg
}

// Is - Makes any InvalidArgument match the zero value in errors.Is
func (E InvalidArgument) Is(target error) bool {
	_, ok := target.(InvalidArgument)
	return ok
}

// InvalidState - Custom error to inform that an operation is not permitted in the table's
// current state, such as switching collision handling scheme on a non-empty table
type InvalidState struct {
	msg string
}

// NewInvalidState - Returns an InvalidState carrying a specific message
func NewInvalidState(msg string) InvalidState {
	return InvalidState{msg: msg}
}

// Error - Used to notify that the operation conflicts with current state
func (E InvalidState) Error() string {
	if E.msg == "" {
		return "invalid state"
	}
	return E.msg
}

// Is - Makes any InvalidState match the zero value in errors.Is
func (E InvalidState) Is(target error) bool {
	_, ok := target.(InvalidState)
	return ok
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing
// algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that a probe sequence was exhausted
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// Is - Makes any ProbingAlgorithm match the zero value in errors.Is
func (P ProbingAlgorithm) Is(target error) bool {
	_, ok := target.(ProbingAlgorithm)
	return ok
}
