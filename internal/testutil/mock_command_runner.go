package testutil

import (
	"uipcup/internal/ports"

	"github.com/stretchr/testify/mock"
)

// MockCommandRunner provides a testify mock for ports.CommandRunner
type MockCommandRunner struct {
	mock.Mock
}

func (m *MockCommandRunner) Run(cmd ports.Command, opts ports.RunOptions) (*ports.CommandResult, error) {
	callArgs := m.Called(cmd, opts)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).(*ports.CommandResult), callArgs.Error(1)
}

func (m *MockCommandRunner) SetEnvironment(name string) {
	m.Called(name)
}

// ExpectRun is a helper for the common case: match any options and return a
// successful result carrying the given output.
func (m *MockCommandRunner) ExpectRun(cmd ports.Command, stdout string) *mock.Call {
	return m.On("Run", cmd, mock.Anything).Return(&ports.CommandResult{ExitCode: 0, Stdout: stdout}, nil)
}
