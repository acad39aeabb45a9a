package runner

import (
	"context"
	"strings"
	"sync"
)

// wildcardKey matches any command.
const wildcardKey = "*"

// MockResponse is a canned command result.
type MockResponse struct {
	Stdout string
	Err    error
}

// MockCall records one invocation.
type MockCall struct {
	WorkDir string
	Command string
	Args    []string
}

// MockRunner returns canned responses and records every call.
//
// Lookup order: exact "name arg1 arg2" key, then the bare command name, then
// the wildcard, then DefaultResponse.
type MockRunner struct {
	mu              sync.Mutex
	Responses       map[string]MockResponse
	DefaultResponse MockResponse
	Calls           []MockCall
}

// NewMockRunner creates an empty mock runner.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		Responses: make(map[string]MockResponse),
	}
}

// MockExpectation sets the response for a registered command.
type MockExpectation struct {
	runner *MockRunner
	key    string
}

// OnCommand registers a response for the exact command line.
func (m *MockRunner) OnCommand(name string, args ...string) *MockExpectation {
	return &MockExpectation{runner: m, key: commandKey(name, args)}
}

// OnAnyCommand registers a response for every command without a more
// specific match.
func (m *MockRunner) OnAnyCommand() *MockExpectation {
	return &MockExpectation{runner: m, key: wildcardKey}
}

// Return sets the output and error for the expectation.
func (e *MockExpectation) Return(stdout string, err error) *MockRunner {
	e.runner.mu.Lock()
	defer e.runner.mu.Unlock()
	e.runner.Responses[e.key] = MockResponse{Stdout: stdout, Err: err}
	return e.runner
}

// Run implements CommandRunner.
func (m *MockRunner) Run(ctx context.Context, workDir, name string, args ...string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{WorkDir: workDir, Command: name, Args: args})

	if err := ctx.Err(); err != nil {
		return "", err
	}

	for _, key := range []string{commandKey(name, args), name, wildcardKey} {
		if resp, ok := m.Responses[key]; ok {
			return resp.Stdout, resp.Err
		}
	}
	return m.DefaultResponse.Stdout, m.DefaultResponse.Err
}

// WasCalled reports whether a call started with name and exactly args. With
// no args, any call to name matches.
func (m *MockRunner) WasCalled(name string, args ...string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, call := range m.Calls {
		if call.Command != name {
			continue
		}
		if len(args) == 0 || argsMatch(call.Args, args) {
			return true
		}
	}
	return false
}

// CallCount returns how many times name was run.
func (m *MockRunner) CallCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, call := range m.Calls {
		if call.Command == name {
			n++
		}
	}
	return n
}

func commandKey(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

func argsMatch(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i := range actual {
		if actual[i] != expected[i] {
			return false
		}
	}
	return true
}
