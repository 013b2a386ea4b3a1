package logger

import (
	"fmt"
	"strings"
)

// Type selects the output encoding of a logger.
type Type int

const (
	TypeText Type = iota
	TypeJSON
)

func (t Type) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseType maps "text" or "json" to its Type.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "text":
		return TypeText, nil
	case "json":
		return TypeJSON, nil
	default:
		return TypeText, fmt.Errorf("logger: unknown type %q", name)
	}
}
