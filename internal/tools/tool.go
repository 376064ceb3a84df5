package tools

import (
	"context"
	"errors"
	"fmt"
)

type ParamType string

const (
	ParamString  ParamType = "string"
	ParamNumber  ParamType = "number"
	ParamInteger ParamType = "integer"
)

type Param struct {
	Name        string    `json:"name"`
	Type        ParamType `json:"type"`
	Description string    `json:"description"`
	Required    bool      `json:"required"`
	Default     any       `json:"default,omitempty"`
}

type HandlerFunc func(ctx context.Context, args map[string]any) (any, error)

// Tool is a named remote-callable operation.
type Tool struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Params      []Param `json:"params"`

	handler HandlerFunc
}

var ErrUnknownTool = errors.New("unknown tool")

// ArgumentError reports a call whose arguments could not be decoded.
type ArgumentError struct {
	Tool  string
	Param string
	Err   error
}

func (e *ArgumentError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: invalid arguments: %v", e.Tool, e.Err)
	}
	return fmt.Sprintf("%s: argument '%s': %v", e.Tool, e.Param, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
