package common

var (
	LogLinenumbers bool

	silentFlag bool
	debugFlag  bool
	traceFlag  bool
)

func DefineVerbosity(silent, debug, trace bool) {
	silentFlag = silent
	debugFlag = debug
	traceFlag = trace
	Debug("Verbosity: silent=%v, debug=%v, trace=%v", silent, debug, trace)
}

func DebugFlag() bool {
	return debugFlag || traceFlag
}

func TraceFlag() bool {
	return traceFlag
}

func Silent() bool {
	return silentFlag && !DebugFlag()
}
