package logging

// Level names
const (
	LevelNameTrace = "trace"
	LevelNameDebug = "debug"
	LevelNameInfo  = "info"
	LevelNameWarn  = "warn"
	LevelNameError = "error"
)

// Structured data keys
const (
	DataKeyData  = "data"
	DataKeyValue = "value"
)
