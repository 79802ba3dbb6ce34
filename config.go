// config.go — the reporting configuration record and its resolution rules.
//
// Model:
//   - A compiled-in default configuration exists at process start.
//   - SetConfig installs a process-wide override (last writer wins); nil
//     reverts to the defaults.
//   - Resolution is per field: any field left unset in the active override
//     falls back to the default for that field only. "Unset" is the empty
//     string for text fields and nil for flag pointers and handlers.
//
// The active configuration is deliberately unsynchronized (see the package
// docs); callers that mutate it from multiple goroutines own their own
// synchronization.
package lurk

// LogHandler is the capability invoked by Log in place of the default log
// reporter. msg is already formatted; dispatch never passes an empty msg.
type LogHandler func(result Result, msg string)

// ErrHandler is the capability invoked by Err in place of the default error
// reporter. caller and loc are passed through exactly as the call site
// supplied them and may be empty; msg is already formatted and never empty.
type ErrHandler func(result Result, caller, loc, msg string)

// Config controls how results are logged. The zero value means "all defaults";
// set only the fields that should differ.
//
// Projname tags every line (default "lurk"; there is no way to turn the tag
// off entirely, only to replace it). Prefix is printed after the tag and
// before the message; Postfix after the message (default "\n", so log calls
// print complete lines). DoLog and DoErr gate the log and error channels and
// may be flipped at any time; leave them nil to inherit the defaults (both
// enabled). LogFn and ErrFn, when non-nil, bypass the default reporters
// entirely — including their channel gating, stream choice, and line format.
//
// The package holds the installed *Config by reference and never copies or
// releases it; the installer keeps it (and any handlers it points to) valid
// for as long as it may be consulted.
type Config struct {
	Projname string
	Prefix   string
	Postfix  string
	DoLog    *bool
	DoErr    *bool
	LogFn    LogHandler
	ErrFn    ErrHandler
}

// Bool returns a pointer to v, for setting Config flag fields from literals.
func Bool(v bool) *bool {
	return &v
}

// configDefault is the compiled-in configuration. Its flag pointers are never
// handed out directly; GetDefaults copies the values into fresh pointers.
var configDefault = Config{
	Projname: "lurk",
	Prefix:   "",
	Postfix:  "\n",
	DoLog:    Bool(true),
	DoErr:    Bool(true),
}

// The handler fields are assigned in init rather than in the composite literal
// above: the default reporters consult configDefault through the resolution
// helpers, so referencing them in its initializer is an initialization cycle.
func init() {
	configDefault.LogFn = logDefault
	configDefault.ErrFn = errDefault
}

// config is the active override; nil means "use configDefault".
var config *Config

// SetConfig installs cfg as the process-wide reporting configuration,
// replacing any previous override. Passing nil reverts to the compiled-in
// defaults. Fields left unset in cfg fall back per field; to start from the
// defaults and tweak, populate cfg with GetDefaults first.
//
// Always returns ResultSuccess.
func SetConfig(cfg *Config) Result {
	config = cfg
	return ResultSuccess
}

// GetDefaults writes the compiled-in default configuration into cfg. The
// written flag fields are fresh pointers, so mutating them does not touch the
// defaults themselves.
//
// Returns ResultBadParam if cfg is nil, ResultSuccess otherwise.
func GetDefaults(cfg *Config) Result {
	if cfg == nil {
		return ResultBadParam
	}
	*cfg = Config{
		Projname: configDefault.Projname,
		Prefix:   configDefault.Prefix,
		Postfix:  configDefault.Postfix,
		DoLog:    Bool(*configDefault.DoLog),
		DoErr:    Bool(*configDefault.DoErr),
		LogFn:    configDefault.LogFn,
		ErrFn:    configDefault.ErrFn,
	}
	return ResultSuccess
}

// -----------------------------------------------------------------------------
// Per-field resolution
// -----------------------------------------------------------------------------

func configProjname() string {
	if config == nil || config.Projname == "" {
		return configDefault.Projname
	}
	return config.Projname
}

func configPrefix() string {
	if config == nil || config.Prefix == "" {
		return configDefault.Prefix
	}
	return config.Prefix
}

func configPostfix() string {
	if config == nil || config.Postfix == "" {
		return configDefault.Postfix
	}
	return config.Postfix
}

func configDoLog() bool {
	if config == nil || config.DoLog == nil {
		return *configDefault.DoLog
	}
	return *config.DoLog
}

func configDoErr() bool {
	if config == nil || config.DoErr == nil {
		return *configDefault.DoErr
	}
	return *config.DoErr
}

func configLogFn() LogHandler {
	if config == nil || config.LogFn == nil {
		return configDefault.LogFn
	}
	return config.LogFn
}

func configErrFn() ErrHandler {
	if config == nil || config.ErrFn == nil {
		return configDefault.ErrFn
	}
	return config.ErrFn
}
