package testutil

import (
	"github.com/stretchr/testify/mock"
)

type MockScm struct {
	mock.Mock
}

func (m *MockScm) Version() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockScm) EnsureCheckout(repositoryUrl string, ref string, repositoryPath string) error {
	args := m.Called(repositoryUrl, ref, repositoryPath)
	return args.Error(0)
}
