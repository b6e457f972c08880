package dtree

import "fmt"

// ModelError is a structurally valid but semantically broken
// configuration: dangling references, duplicates, ambiguous keys,
// snippet cycles. Always fatal at load time.
type ModelError struct {
	Menu   string
	Symbol string
	Reason string
}

func (it *ModelError) Error() string {
	if it.Menu != "" {
		return fmt.Sprintf("in menu %q: %s", it.Menu, it.Reason)
	}
	return it.Reason
}

func modelError(menu, symbol, form string, details ...interface{}) *ModelError {
	return &ModelError{
		Menu:   menu,
		Symbol: symbol,
		Reason: fmt.Sprintf(form, details...),
	}
}
