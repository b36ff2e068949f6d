package config

// Environment variable names
const (
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
	EnvEnvironment  = "ENVIRONMENT"
	EnvServiceName  = "SERVICE_NAME"
	EnvVersion      = "VERSION"
	EnvOptimalRatio = "OPTIMAL_RATIO"
	EnvUseDecimals  = "USE_DECIMALS"
	EnvTableFormat  = "TABLE_FORMAT"
)

// Defaults. Log level and format have none; the logger preset for the
// environment decides them unless LOG_LEVEL or LOG_FORMAT is set.
const (
	DefaultEnvironment  = "dev"
	DefaultServiceName  = "etwcalc"
	DefaultVersion      = "dev"
	DefaultOptimalRatio = 5.5
	DefaultTableFormat  = "csv"
)
