package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(data []byte, filename string) (string, bool) {
	args := m.Called(data, filename)
	return args.String(0), args.Bool(1)
}
