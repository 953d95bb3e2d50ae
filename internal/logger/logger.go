package logger

// Logger provides component-tagged structured logging.
type Logger interface {
	Info(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Debug(component, message string, fields map[string]interface{})
}

// Nop discards everything. Tests use it where output does not matter.
type Nop struct{}

func (Nop) Info(component, message string, fields map[string]interface{})    {}
func (Nop) Error(component string, err error, fields map[string]interface{}) {}
func (Nop) Warning(component, message string, fields map[string]interface{}) {}
func (Nop) Debug(component, message string, fields map[string]interface{})   {}
