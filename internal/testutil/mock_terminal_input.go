package testutil

import (
	"github.com/stretchr/testify/mock"
)

type MockTerminalInput struct {
	mock.Mock
}

func (m *MockTerminalInput) ReadLine(prompt string) (string, error) {
	args := m.Called(prompt)
	return args.String(0), args.Error(1)
}

func (m *MockTerminalInput) IsTerminal() bool {
	args := m.Called()
	return args.Bool(0)
}
