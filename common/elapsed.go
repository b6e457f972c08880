package common

import (
	"fmt"
	"time"
)

type Duration time.Duration

func (it Duration) Truncate(granularity time.Duration) Duration {
	return Duration(time.Duration(it).Truncate(granularity))
}

func (it Duration) String() string {
	return fmt.Sprintf("%v", time.Duration(it).Truncate(time.Millisecond))
}

type stopwatch struct {
	message string
	started time.Time
}

func Stopwatch(form string, details ...interface{}) *stopwatch {
	message := fmt.Sprintf(form, details...)
	return &stopwatch{
		message: message,
		started: time.Now(),
	}
}

func (it *stopwatch) String() string {
	return fmt.Sprintf("%v", it.Report())
}

func (it *stopwatch) Report() Duration {
	return Duration(time.Since(it.started))
}

func (it *stopwatch) Debug() Duration {
	elapsed := it.Report()
	Debug("%v %v", it.message, elapsed)
	return elapsed
}

func (it *stopwatch) Log() Duration {
	elapsed := it.Report()
	Log("%v %v", it.message, elapsed)
	return elapsed
}

func (it *stopwatch) Text() string {
	return fmt.Sprintf("%v", it.Report())
}
