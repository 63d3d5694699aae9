package testutil

import (
	"github.com/stretchr/testify/mock"
)

type MockToolchain struct {
	mock.Mock
}

func (m *MockToolchain) Ensure(toolchainDir string) error {
	args := m.Called(toolchainDir)
	return args.Error(0)
}

func (m *MockToolchain) DescriptorPath(toolchainDir string) string {
	args := m.Called(toolchainDir)
	return args.String(0)
}
