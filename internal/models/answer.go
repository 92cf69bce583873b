package models

// AnswerKind determines how a submitted answer is shaped and compared.
type AnswerKind int

const (
	AnswerSingle   AnswerKind = iota // one radio-style value, exact equality
	AnswerMultiple                   // a set of checkbox values, order-independent set equality
	AnswerSelect                     // one dropdown value, exact equality
)

func (k AnswerKind) String() string {
	switch k {
	case AnswerSingle:
		return "single"
	case AnswerMultiple:
		return "multiple"
	case AnswerSelect:
		return "select"
	default:
		return ""
	}
}

// Answer carries the option keys a user selected for an exercise.
type Answer struct {
	Values []string
}

// SingleAnswer builds an answer holding one value.
func SingleAnswer(value string) Answer {
	if value == "" {
		return Answer{}
	}
	return Answer{Values: []string{value}}
}

// MultipleAnswer builds an answer holding a set of values.
func MultipleAnswer(values ...string) Answer {
	return Answer{Values: values}
}

// Empty reports whether no selection was made.
func (a Answer) Empty() bool {
	return len(a.Values) == 0
}

// OutcomeKind discriminates the result of submitting an answer.
type OutcomeKind int

const (
	OutcomeNeedsSelection   OutcomeKind = iota // no answer supplied, nothing mutated
	OutcomeCorrect                             // answered correctly, exercise completed
	OutcomeIncorrectRetry                      // wrong, attempts remain
	OutcomeIncorrectFinal                      // wrong on the last attempt, exercise completed
	OutcomeAlreadyCompleted                    // idempotent guard, submission ignored
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNeedsSelection:
		return "needs_selection"
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrectRetry:
		return "incorrect_retry"
	case OutcomeIncorrectFinal:
		return "incorrect_final"
	case OutcomeAlreadyCompleted:
		return "already_completed"
	default:
		return ""
	}
}

// Outcome is the discriminated result of a submission. AttemptsLeft is set for
// IncorrectRetry; CorrectText is set for IncorrectFinal.
type Outcome struct {
	Kind         OutcomeKind
	AttemptsLeft int
	CorrectText  string
}
