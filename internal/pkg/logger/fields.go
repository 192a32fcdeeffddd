package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field is a structured log field. Callers build fields through this package
// so they never import zap directly.
type Field = zap.Field

// Keys shared by the match and driver services
const (
	KeyDriverID  = "driver_id"
	KeyEventType = "event_type"
)

// String constructs a field that carries a string value
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err constructs a field that carries an error
func Err(err error) Field {
	return zap.Error(err)
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Uint32 constructs a field that carries a uint32 value
func Uint32(key string, val uint32) Field {
	return zap.Uint32(key, val)
}

// Float64 constructs a field that carries a float64 value
func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

// Bool constructs a field that carries a boolean value
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Any constructs a field that carries an arbitrary value
func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// Duration constructs a field that carries a time.Duration value
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// DriverID tags a log line with the driver it concerns
func DriverID(id string) Field {
	return zap.String(KeyDriverID, id)
}

// EventType tags a log line with a driver event type
func EventType(eventType string) Field {
	return zap.String(KeyEventType, eventType)
}
