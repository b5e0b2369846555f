// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"os"

	"github.com/stretchr/testify/mock"
)

// constructorTestingT is the subset of *testing.T the mock constructors need.
type constructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockFileSystemAdapter is a mock implementation of domain.FileSystemAdapter.
type MockFileSystemAdapter struct {
	mock.Mock
}

// NewMockFileSystemAdapter creates a new mock with expectations asserted on cleanup.
func NewMockFileSystemAdapter(t constructorTestingT) *MockFileSystemAdapter {
	m := &MockFileSystemAdapter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFileSystemAdapter) ReadFile(path string) ([]byte, error) {
	args := m.Called(path)
	var data []byte
	if args.Get(0) != nil {
		data = args.Get(0).([]byte)
	}
	return data, args.Error(1)
}

func (m *MockFileSystemAdapter) WriteFile(path string, data []byte, perm os.FileMode) error {
	args := m.Called(path, data, perm)
	return args.Error(0)
}

func (m *MockFileSystemAdapter) MkdirAll(path string, perm os.FileMode) error {
	args := m.Called(path, perm)
	return args.Error(0)
}

func (m *MockFileSystemAdapter) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFileSystemAdapter) Rename(oldPath, newPath string) error {
	args := m.Called(oldPath, newPath)
	return args.Error(0)
}

func (m *MockFileSystemAdapter) Stat(path string) (os.FileInfo, error) {
	args := m.Called(path)
	var info os.FileInfo
	if args.Get(0) != nil {
		info = args.Get(0).(os.FileInfo)
	}
	return info, args.Error(1)
}

func (m *MockFileSystemAdapter) Chmod(path string, perm os.FileMode) error {
	args := m.Called(path, perm)
	return args.Error(0)
}

func (m *MockFileSystemAdapter) UserHomeDir() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
