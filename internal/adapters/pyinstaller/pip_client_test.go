package pyinstaller

import (
	"errors"
	"testing"

	"uipcup/internal/ports"
	"uipcup/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipClient_InstallDirectory_RunsInDir(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("Run", ports.Argv("pip", "install", "."), ports.RunOptions{Dir: "/build/python", RequireSuccess: true, Stream: true}).
		Return(&ports.CommandResult{ExitCode: 0}, nil)

	sut := ProvidePipClient(commandRunner)

	require.NoError(t, sut.InstallDirectory("/build/python"))
	commandRunner.AssertExpectations(t)
}

func TestPipClient_InstallDirectory_Error(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("Run", ports.Argv("pip", "install", "."), ports.RunOptions{Dir: "/build/python", RequireSuccess: true, Stream: true}).
		Return(nil, errors.New("exit status 1"))

	sut := ProvidePipClient(commandRunner)

	err := sut.InstallDirectory("/build/python")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "/build/python")
}
