package hamlet

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

type Hamlet struct {
	t        *testing.T
	expected bool
}

// Specifications returns the two faces of one specification: the
// positive "must be" form and the negative "wont be" form, both
// reporting against the same test.
func Specifications(t *testing.T) (*Hamlet, *Hamlet) {
	return &Hamlet{t, true}, &Hamlet{t, false}
}

func (it *Hamlet) phrase() string {
	if it.expected {
		return "must"
	}
	return "wont"
}

func (it *Hamlet) True(value bool) {
	it.t.Helper()
	if value != it.expected {
		it.t.Errorf("Value %v fails %s be true specification!", value, it.phrase())
	}
}

func (it *Hamlet) Nil(value interface{}) {
	it.t.Helper()
	if isNil(value) != it.expected {
		it.t.Errorf("Value %#v fails %s be nil specification!", value, it.phrase())
	}
}

func (it *Hamlet) Equal(expected, actual interface{}) {
	it.t.Helper()
	if reflect.DeepEqual(expected, actual) != it.expected {
		it.t.Errorf("Value %#v vs. %#v fails %s be equal specification!", expected, actual, it.phrase())
	}
}

func (it *Hamlet) Text(expected string, actual interface{}) {
	it.t.Helper()
	flat := fmt.Sprintf("%v", actual)
	if (expected == flat) != it.expected {
		it.t.Errorf("Text %q vs. %q fails %s be equal specification!", expected, flat, it.phrase())
	}
}

func (it *Hamlet) Contain(fragment string, actual interface{}) {
	it.t.Helper()
	flat := fmt.Sprintf("%v", actual)
	if strings.Contains(flat, fragment) != it.expected {
		it.t.Errorf("Text %q fails %s contain %q specification!", flat, it.phrase(), fragment)
	}
}

func (it *Hamlet) Panic(task func()) {
	it.t.Helper()
	defer func() {
		it.t.Helper()
		caught := recover()
		if (caught != nil) != it.expected {
			it.t.Errorf("Task panic %#v fails %s panic specification!", caught, it.phrase())
		}
	}()
	task()
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return reflected.IsNil()
	}
	return false
}
