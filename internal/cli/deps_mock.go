package cli

import (
	"errors"
	"strings"
)

// MockStoreProvider is a test double for StoreProvider
type MockStoreProvider struct {
	S   ConfigStore
	Err error
}

func (m *MockStoreProvider) Store() (ConfigStore, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.S, nil
}

// MockStdinReader is a test double for StdinReader
type MockStdinReader struct {
	Input string
	pos   int
}

func (m *MockStdinReader) ReadString(delim byte) (string, error) {
	if m.pos >= len(m.Input) {
		return "", errors.New("EOF")
	}
	idx := strings.IndexByte(m.Input[m.pos:], delim)
	if idx == -1 {
		result := m.Input[m.pos:]
		m.pos = len(m.Input)
		return result, nil
	}
	result := m.Input[m.pos : m.pos+idx+1]
	m.pos += idx + 1
	return result, nil
}
