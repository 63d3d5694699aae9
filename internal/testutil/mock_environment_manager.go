package testutil

import (
	"github.com/stretchr/testify/mock"
)

type MockEnvironmentManager struct {
	mock.Mock
}

func (m *MockEnvironmentManager) Available() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockEnvironmentManager) Exists(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockEnvironmentManager) CreateFromFile(file string) error {
	args := m.Called(file)
	return args.Error(0)
}

func (m *MockEnvironmentManager) UpdateFromFile(file string) error {
	args := m.Called(file)
	return args.Error(0)
}

func (m *MockEnvironmentManager) CreateMinimal(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockEnvironmentManager) PythonExecutable() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
