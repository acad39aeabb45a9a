package runner

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestNewExecRunner(t *testing.T) {
	runner := NewExecRunner()
	if runner == nil {
		t.Error("NewExecRunner should return non-nil runner")
	}
}

func TestExecRunner_Run_Success(t *testing.T) {
	runner := NewExecRunner()

	output, err := runner.Run(context.Background(), "", "echo", "hello")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if output != "hello" {
		t.Errorf("output = %q, want %q", output, "hello")
	}
}

func TestExecRunner_Run_StreamsOutput(t *testing.T) {
	var buf bytes.Buffer
	runner := NewExecRunner().WithOutput(&buf)

	if _, err := runner.Run(context.Background(), t.TempDir(), "echo", "building"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if buf.String() != "building\n" {
		t.Errorf("streamed = %q, want %q", buf.String(), "building\n")
	}
}

func TestExecRunner_Run_Error(t *testing.T) {
	runner := NewExecRunner()

	_, err := runner.Run(context.Background(), "", "ls", "/nonexistent/path/that/does/not/exist")
	if err == nil {
		t.Error("expected error for nonexistent path")
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Errorf("error should be CommandError, got %T", err)
	}
}

func TestExecRunner_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewExecRunner().Run(ctx, "", "sleep", "5"); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestCommandError_Error(t *testing.T) {
	t.Run("with output", func(t *testing.T) {
		err := &CommandError{
			Command: "flutter",
			Args:    []string{"build", "apk"},
			Output:  "Running Gradle task 'assembleRelease'...\nGradle task assembleRelease failed with exit code 1",
			Err:     errors.New("exit status 1"),
		}

		got := err.Error()
		want := "Gradle task assembleRelease failed with exit code 1"
		if got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("without output", func(t *testing.T) {
		underlying := errors.New("exit status 1")
		err := &CommandError{
			Command: "flutter",
			Args:    []string{"build"},
			Err:     underlying,
		}

		got := err.Error()
		want := "exit status 1"
		if got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("no output or error", func(t *testing.T) {
		err := &CommandError{
			Command: "test",
		}

		got := err.Error()
		want := "command failed"
		if got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})
}

func TestCommandError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &CommandError{
		Command: "flutter",
		Args:    []string{"build", "apk", "--debug"},
		Err:     underlying,
	}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should return true for underlying error")
	}
	if got := err.CommandLine(); got != "flutter build apk --debug" {
		t.Errorf("CommandLine() = %q", got)
	}
}

func TestNewMockRunner(t *testing.T) {
	runner := NewMockRunner()
	if runner == nil {
		t.Fatal("NewMockRunner should return non-nil runner")
	}
	if runner.Responses == nil {
		t.Error("Responses map should be initialized")
	}
}

func TestMockRunner_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("exact match", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnCommand("flutter", "build", "apk", "--debug").Return("Built app-debug.apk", nil)

		output, err := runner.Run(ctx, "/project", "flutter", "build", "apk", "--debug")
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if output != "Built app-debug.apk" {
			t.Errorf("output = %q, want %q", output, "Built app-debug.apk")
		}
	})

	t.Run("command only match", func(t *testing.T) {
		runner := NewMockRunner()
		runner.Responses["flutter"] = MockResponse{Stdout: "flutter response", Err: nil}

		output, err := runner.Run(ctx, "/project", "flutter", "doctor")
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if output != "flutter response" {
			t.Errorf("output = %q, want %q", output, "flutter response")
		}
	})

	t.Run("wildcard match", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnAnyCommand().Return("wildcard", nil)

		output, err := runner.Run(ctx, "/project", "any", "command")
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if output != "wildcard" {
			t.Errorf("output = %q, want %q", output, "wildcard")
		}
	})

	t.Run("default response", func(t *testing.T) {
		runner := NewMockRunner()
		runner.DefaultResponse = MockResponse{Stdout: "default", Err: nil}

		output, err := runner.Run(ctx, "/project", "cmd")
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if output != "default" {
			t.Errorf("output = %q, want %q", output, "default")
		}
	})

	t.Run("with error", func(t *testing.T) {
		runner := NewMockRunner()
		expectedErr := errors.New("mock error")
		runner.OnCommand("fail").Return("", expectedErr)

		_, err := runner.Run(ctx, "/project", "fail")
		if err != expectedErr {
			t.Errorf("error = %v, want %v", err, expectedErr)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnAnyCommand().Return("ok", nil)

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := runner.Run(cctx, "/project", "flutter"); !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
		if len(runner.Calls) != 1 {
			t.Errorf("Calls = %d, want the cancelled call recorded", len(runner.Calls))
		}
	})
}

func TestMockRunner_Calls(t *testing.T) {
	runner := NewMockRunner()
	runner.OnAnyCommand().Return("", nil)

	runner.Run(context.Background(), "/project", "flutter", "build")
	runner.Run(context.Background(), "/other", "flutter", "clean")

	if len(runner.Calls) != 2 {
		t.Errorf("Calls = %d, want 2", len(runner.Calls))
	}

	if runner.Calls[0].Command != "flutter" {
		t.Errorf("first call command = %q, want %q", runner.Calls[0].Command, "flutter")
	}
	if runner.Calls[0].WorkDir != "/project" {
		t.Errorf("first call workdir = %q, want %q", runner.Calls[0].WorkDir, "/project")
	}
}

func TestMockRunner_WasCalled(t *testing.T) {
	runner := NewMockRunner()
	runner.OnAnyCommand().Return("", nil)

	runner.Run(context.Background(), "/project", "flutter", "build")

	if !runner.WasCalled("flutter") {
		t.Error("WasCalled should return true for flutter")
	}
	if !runner.WasCalled("flutter", "build") {
		t.Error("WasCalled should return true for flutter build")
	}
	if runner.WasCalled("flutter", "clean") {
		t.Error("WasCalled should return false for flutter clean")
	}
	if runner.WasCalled("gradle") {
		t.Error("WasCalled should return false for gradle")
	}
}

func TestMockRunner_CallCount(t *testing.T) {
	runner := NewMockRunner()
	runner.OnAnyCommand().Return("", nil)

	ctx := context.Background()
	runner.Run(ctx, "/project", "flutter", "build", "apk")
	runner.Run(ctx, "/project", "flutter", "build", "appbundle")
	runner.Run(ctx, "/project", "gradle", "assembleDebug")

	if count := runner.CallCount("flutter"); count != 2 {
		t.Errorf("flutter call count = %d, want 2", count)
	}
	if count := runner.CallCount("gradle"); count != 1 {
		t.Errorf("gradle call count = %d, want 1", count)
	}
	if count := runner.CallCount("yarn"); count != 0 {
		t.Errorf("yarn call count = %d, want 0", count)
	}
}

func TestArgsMatch(t *testing.T) {
	tests := []struct {
		name     string
		actual   []string
		expected []string
		want     bool
	}{
		{"equal", []string{"a", "b"}, []string{"a", "b"}, true},
		{"different length", []string{"a"}, []string{"a", "b"}, false},
		{"different values", []string{"a", "c"}, []string{"a", "b"}, false},
		{"empty", []string{}, []string{}, true},
		{"nil", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := argsMatch(tt.actual, tt.expected)
			if got != tt.want {
				t.Errorf("argsMatch(%v, %v) = %v, want %v", tt.actual, tt.expected, got, tt.want)
			}
		})
	}
}
