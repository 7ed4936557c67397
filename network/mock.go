package network

import "net/http"

// MockHttp stands in for DefaultHttp in tests, mainly to script relay health probe
// responses without a listening relay.
type MockHttp struct {
	GetFunc func(req *http.Request) ([]byte, error)
}

func (m *MockHttp) Get(req *http.Request) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(req)
	}

	return nil, nil
}
