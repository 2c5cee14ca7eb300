package tool

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type echoInput struct {
	Site string `json:"site"`
}

func (in echoInput) Validate() error {
	if in.Site == "" {
		return &InvalidArgumentError{Field: "site"}
	}
	return nil
}

type echoOutput struct {
	Site string `json:"site"`
}

func newEchoTool() *Tool[echoInput, echoOutput] {
	return NewTool("echo", func(_ context.Context, input echoInput) (echoOutput, error) {
		return echoOutput{Site: input.Site}, nil
	}, WithDescription("Echoes the site back."))
}

func TestToolInfo(t *testing.T) {
	info := newEchoTool().ToolInfo()
	if info.Name != "echo" {
		t.Errorf("expected name 'echo', got %q", info.Name)
	}
	if info.Description == "" {
		t.Error("expected non-empty description")
	}
}

func TestCall_Success(t *testing.T) {
	output, err := newEchoTool().Call(context.Background(), `{"site":"example.com"}`)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if output != `{"site":"example.com"}` {
		t.Errorf("unexpected output: %s", output)
	}
}

func TestCall_RepairsMalformedInput(t *testing.T) {
	output, err := newEchoTool().Call(context.Background(), `{site: 'example.com'}`)
	if err != nil {
		t.Fatalf("Call failed on repairable input: %v", err)
	}
	if !strings.Contains(output, "example.com") {
		t.Errorf("unexpected output: %s", output)
	}
}

func TestCall_MissingRequiredField(t *testing.T) {
	_, err := newEchoTool().Call(context.Background(), `{}`)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}

	var invalidArgument *InvalidArgumentError
	if !errors.As(err, &invalidArgument) {
		t.Fatalf("expected *InvalidArgumentError, got %T: %v", err, err)
	}
	if invalidArgument.Field != "site" {
		t.Errorf("expected field 'site', got %q", invalidArgument.Field)
	}
	if !strings.Contains(err.Error(), "echo") {
		t.Errorf("expected error to carry the tool name, got: %v", err)
	}
}

func TestCall_ExecutionFailureCarriesToolName(t *testing.T) {
	failing := NewTool("broken", func(context.Context, echoInput) (echoOutput, error) {
		return echoOutput{}, errors.New("upstream unreachable")
	})

	_, err := failing.Call(context.Background(), `{"site":"example.com"}`)
	if err == nil {
		t.Fatal("expected execution failure")
	}
	if !strings.Contains(err.Error(), "broken") || !strings.Contains(err.Error(), "upstream unreachable") {
		t.Errorf("expected tool name and underlying message, got: %v", err)
	}
}

func TestCatalog_Operations(t *testing.T) {
	catalog := NewCatalogWithTools(newEchoTool())

	if catalog.Size() != 1 {
		t.Errorf("expected size 1, got %d", catalog.Size())
	}
	if !catalog.Has("ECHO") {
		t.Error("expected case-insensitive lookup")
	}

	registered, exists := catalog.Get("echo")
	if !exists || registered.ToolInfo().Name != "echo" {
		t.Error("expected to retrieve registered tool")
	}

	if !catalog.Remove("echo") {
		t.Error("expected removal to succeed")
	}
	if catalog.Has("echo") {
		t.Error("expected tool to be gone after removal")
	}
}
