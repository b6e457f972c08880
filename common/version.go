package common

const (
	DefaultShellVariable = `DT_DEFAULT_SHELL`
	ConfigVariable       = `DT_CONFIG`
)

var (
	Version = `v0.9.1`
)
