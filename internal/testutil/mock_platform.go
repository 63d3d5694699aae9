package testutil

import (
	"uipcup/internal/ports"

	"github.com/stretchr/testify/mock"
)

type MockPlatform struct {
	mock.Mock
}

func (m *MockPlatform) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockPlatform) ShellCommand(line string) []string {
	args := m.Called(line)
	return args.Get(0).([]string)
}

func (m *MockPlatform) WrapWithEnvironment(env string, line string) string {
	args := m.Called(env, line)
	return args.String(0)
}

func (m *MockPlatform) BootstrapScript(dir string) (string, bool) {
	args := m.Called(dir)
	return args.String(0), args.Bool(1)
}

func (m *MockPlatform) PersistEnvVar(name, value string) ports.EnvVarPersistence {
	args := m.Called(name, value)
	return args.Get(0).(ports.EnvVarPersistence)
}

func (m *MockPlatform) PythonCommand() string {
	args := m.Called()
	return args.String(0)
}
