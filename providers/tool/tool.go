package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mozscape/mozgo/core/parse"
)

// Info is the metadata used to advertise a tool to a host application.
type Info struct {
	Name        string
	Description string
}

// Validator is implemented by tool input types that carry required fields.
// Validate runs after input parsing and before the tool function; it
// returns an *[InvalidArgumentError] when a required field is absent.
type Validator interface {
	Validate() error
}

// InvalidArgumentError reports a missing or unusable required argument.
// It is produced before any remote call is made.
type InvalidArgumentError struct {
	Field string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("missing required argument %q", e.Field)
}

// GenericTool is the type-erased interface for all tools, allowing them to
// be stored and dispatched without knowing their concrete input/output
// types.
type GenericTool interface {
	// ToolInfo returns the metadata (name, description) for this tool.
	ToolInfo() Info

	// Call invokes the tool with a JSON-encoded input string and returns a
	// JSON-encoded output string. Returns an error if parsing, validation,
	// or execution fails.
	Call(ctx context.Context, inputJSON string) (string, error)
}

// Tool binds a name and description to a strongly-typed Go function.
// Use [NewTool] to construct one.
type Tool[I, O any] struct {
	Name        string
	Description string
	Function    func(ctx context.Context, input I) (O, error)
}

// funcToolOptions holds optional configuration for a tool created via [NewTool].
type funcToolOptions struct {
	Description string
}

// WithDescription sets a human-readable description for the tool.
func WithDescription(description string) func(tool *funcToolOptions) {
	return func(s *funcToolOptions) {
		s.Description = description
	}
}

// NewTool constructs a new [Tool] with the given name and handler function.
//
// Example:
//
//	quotaTool := tool.NewTool("moz_quota", quotaFunc,
//	    tool.WithDescription("Look up the remaining API quota."),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...func(tool *funcToolOptions)) *Tool[I, O] {
	toolOptions := &funcToolOptions{}
	for _, option := range options {
		option(toolOptions)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: toolOptions.Description,
		Function:    function,
	}
}

// ToolInfo returns the metadata used to advertise this tool.
func (t *Tool[I, O]) ToolInfo() Info {
	return Info{
		Name:        t.Name,
		Description: t.Description,
	}
}

// Call invokes the tool's underlying function with the given JSON-encoded
// input. It deserializes inputJSON into the input type I (repairing
// slightly malformed JSON), validates required fields when I implements
// [Validator], executes the function, and returns the result serialized as
// JSON. Execution failures are wrapped with the tool name so a host can
// attribute them.
func (t *Tool[I, O]) Call(ctx context.Context, inputJSON string) (string, error) {
	parsedInput, err := parse.ParseStringAs[I](inputJSON)
	if err != nil {
		return "", fmt.Errorf("%s: invalid input: %w", t.Name, err)
	}

	if validator, hasValidation := any(parsedInput).(Validator); hasValidation {
		if err := validator.Validate(); err != nil {
			return "", fmt.Errorf("%s: %w", t.Name, err)
		}
	}

	output, err := t.Function(ctx, parsedInput)
	if err != nil {
		return "", fmt.Errorf("%s execution failed: %w", t.Name, err)
	}

	outputBytes, err := json.Marshal(output)
	if err != nil {
		return "", fmt.Errorf("%s: failed to marshal output: %w", t.Name, err)
	}

	return string(outputBytes), nil
}
