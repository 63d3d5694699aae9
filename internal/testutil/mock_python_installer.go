package testutil

import (
	"github.com/stretchr/testify/mock"
)

type MockPythonInstaller struct {
	mock.Mock
}

func (m *MockPythonInstaller) InstallDirectory(dir string) error {
	args := m.Called(dir)
	return args.Error(0)
}
