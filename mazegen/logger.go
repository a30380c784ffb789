package mazegen

// Logger receives diagnostics from generation sessions. The interface is
// satisfied by the application's component loggers; the generator itself
// never writes anywhere else.
type Logger interface {
	Debug(string)
	Info(string)
	Warning(string)
	Error(string)
}

// NopLogger discards everything. Sessions constructed without a logger
// use it so generation code never nil-checks before logging.
type NopLogger struct{}

func (NopLogger) Debug(string)   {}
func (NopLogger) Info(string)    {}
func (NopLogger) Warning(string) {}
func (NopLogger) Error(string)   {}
