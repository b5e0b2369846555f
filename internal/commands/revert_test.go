package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"startpage/internal/commands"
	"startpage/internal/domain"
	"startpage/internal/mocks"
	"startpage/internal/testutil"
)

func TestRevertCommand_Execute_Confirmed(t *testing.T) {
	// Arrange
	patcher := mocks.NewMockConfigPatcher(t)
	prompter := mocks.NewMockConfirmPrompter(t)
	cmd := commands.NewRevertCommand(patcher, prompter, testutil.Logger())

	prompter.On("Confirm", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return prompt != ""
	})).Return(true, nil)
	patcher.On("Revert", mock.Anything, "/usr/lib/firefox/firefox.cfg").
		Return(domain.RevertResult{Path: "/usr/lib/firefox/firefox.cfg", Removed: true}, nil)

	// Act
	result, err := cmd.Execute(context.Background(), commands.RevertRequest{
		ConfigPath: "/usr/lib/firefox/firefox.cfg",
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Removed)
}

func TestRevertCommand_Execute_Declined(t *testing.T) {
	// Arrange
	patcher := mocks.NewMockConfigPatcher(t)
	prompter := mocks.NewMockConfirmPrompter(t)
	cmd := commands.NewRevertCommand(patcher, prompter, testutil.Logger())

	prompter.On("Confirm", mock.Anything, mock.Anything).Return(false, nil)

	// Act
	_, err := cmd.Execute(context.Background(), commands.RevertRequest{
		ConfigPath: "/usr/lib/firefox/firefox.cfg",
	})

	// Assert
	require.ErrorIs(t, err, commands.ErrRevertDeclined)
	patcher.AssertNotCalled(t, "Revert", mock.Anything, mock.Anything)
}

func TestRevertCommand_Execute_AssumeYesSkipsPrompt(t *testing.T) {
	// Arrange
	patcher := mocks.NewMockConfigPatcher(t)
	prompter := mocks.NewMockConfirmPrompter(t)
	cmd := commands.NewRevertCommand(patcher, prompter, testutil.Logger())

	patcher.On("Revert", mock.Anything, "/usr/lib/firefox/firefox.cfg").
		Return(domain.RevertResult{Path: "/usr/lib/firefox/firefox.cfg", Removed: false}, nil)

	// Act
	result, err := cmd.Execute(context.Background(), commands.RevertRequest{
		ConfigPath: "/usr/lib/firefox/firefox.cfg",
		AssumeYes:  true,
	})

	// Assert
	require.NoError(t, err)
	assert.False(t, result.Removed)
	prompter.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
}

func TestRevertCommand_Execute_PromptError(t *testing.T) {
	// Arrange
	patcher := mocks.NewMockConfigPatcher(t)
	prompter := mocks.NewMockConfirmPrompter(t)
	cmd := commands.NewRevertCommand(patcher, prompter, testutil.Logger())

	prompter.On("Confirm", mock.Anything, mock.Anything).
		Return(false, errors.New("stdin is not a terminal"))

	// Act
	_, err := cmd.Execute(context.Background(), commands.RevertRequest{
		ConfigPath: "/usr/lib/firefox/firefox.cfg",
	})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use --yes to skip")
}

func TestRevertCommand_Execute_RevertError(t *testing.T) {
	// Arrange
	patcher := mocks.NewMockConfigPatcher(t)
	prompter := mocks.NewMockConfirmPrompter(t)
	cmd := commands.NewRevertCommand(patcher, prompter, testutil.Logger())

	patcher.On("Revert", mock.Anything, "/usr/lib/firefox/firefox.cfg").
		Return(domain.RevertResult{}, errors.New("file missing"))

	// Act
	_, err := cmd.Execute(context.Background(), commands.RevertRequest{
		ConfigPath: "/usr/lib/firefox/firefox.cfg",
		AssumeYes:  true,
	})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to revert config file")
}
