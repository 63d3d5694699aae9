package testutil

import (
	"uipcup/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockBuildSystem struct {
	mock.Mock
}

func (m *MockBuildSystem) VersionLine() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockBuildSystem) Configure(plan domain.BuildPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockBuildSystem) Build(plan domain.BuildPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}
