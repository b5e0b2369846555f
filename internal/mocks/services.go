package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"startpage/internal/domain"
)

// MockAutoconfigInstaller is a mock implementation of domain.AutoconfigInstaller.
type MockAutoconfigInstaller struct {
	mock.Mock
}

// NewMockAutoconfigInstaller creates a new mock with expectations asserted on cleanup.
func NewMockAutoconfigInstaller(t constructorTestingT) *MockAutoconfigInstaller {
	m := &MockAutoconfigInstaller{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAutoconfigInstaller) Install(ctx context.Context, dir, configFilename string) (domain.InstallResult, error) {
	args := m.Called(ctx, dir, configFilename)
	return args.Get(0).(domain.InstallResult), args.Error(1)
}

func (m *MockAutoconfigInstaller) Verify(ctx context.Context, dir, configFilename string) (domain.InstallStatus, error) {
	args := m.Called(ctx, dir, configFilename)
	return args.Get(0).(domain.InstallStatus), args.Error(1)
}

// MockConfigPatcher is a mock implementation of domain.ConfigPatcher.
type MockConfigPatcher struct {
	mock.Mock
}

// NewMockConfigPatcher creates a new mock with expectations asserted on cleanup.
func NewMockConfigPatcher(t constructorTestingT) *MockConfigPatcher {
	m := &MockConfigPatcher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockConfigPatcher) Patch(ctx context.Context, configPath, url string) (domain.PatchResult, error) {
	args := m.Called(ctx, configPath, url)
	return args.Get(0).(domain.PatchResult), args.Error(1)
}

func (m *MockConfigPatcher) Revert(ctx context.Context, configPath string) (domain.RevertResult, error) {
	args := m.Called(ctx, configPath)
	return args.Get(0).(domain.RevertResult), args.Error(1)
}

func (m *MockConfigPatcher) Inspect(ctx context.Context, configPath string) (domain.PatchStatus, error) {
	args := m.Called(ctx, configPath)
	return args.Get(0).(domain.PatchStatus), args.Error(1)
}

// MockSettingsRepository is a mock implementation of domain.SettingsRepository.
type MockSettingsRepository struct {
	mock.Mock
}

// NewMockSettingsRepository creates a new mock with expectations asserted on cleanup.
func NewMockSettingsRepository(t constructorTestingT) *MockSettingsRepository {
	m := &MockSettingsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context) (domain.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) SetLastAppliedURL(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettingsRepository) LoadSettings(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockConfirmPrompter is a mock implementation of domain.ConfirmPrompter.
type MockConfirmPrompter struct {
	mock.Mock
}

// NewMockConfirmPrompter creates a new mock with expectations asserted on cleanup.
func NewMockConfirmPrompter(t constructorTestingT) *MockConfirmPrompter {
	m := &MockConfirmPrompter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockConfirmPrompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

func (m *MockConfirmPrompter) IsInteractive() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockIconMirror is a mock implementation of domain.IconMirror.
type MockIconMirror struct {
	mock.Mock
}

// NewMockIconMirror creates a new mock with expectations asserted on cleanup.
func NewMockIconMirror(t constructorTestingT) *MockIconMirror {
	m := &MockIconMirror{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIconMirror) Mirror(
	ctx context.Context,
	bookmarksPath, outputDir string,
	filter domain.BookmarkFilter,
) (domain.MirrorResult, error) {
	args := m.Called(ctx, bookmarksPath, outputDir, filter)
	return args.Get(0).(domain.MirrorResult), args.Error(1)
}
