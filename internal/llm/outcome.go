package llm

import "errors"

// Outcome is the result of calling one provider for one request
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Succeeded wraps generated text
func Succeeded(text string) Outcome {
	return Outcome{Success: true, Message: text}
}

// Failed wraps a diagnostic
func Failed(message string) Outcome {
	return Outcome{Success: false, Message: message}
}

// OutcomeOf converts a Generate result into an Outcome. Errors that are not
// *Error get the generic "<provider> failed" diagnostic.
func OutcomeOf(p Provider, text string, err error) Outcome {
	if err == nil {
		return Succeeded(text)
	}
	var perr *Error
	if errors.As(err, &perr) {
		return Failed(perr.Error())
	}
	return Failed(p.Name() + " failed")
}
