package network

import (
	"io"
	"net/http"
	"time"
)

const requestTimeout = 10 * time.Second

// Http is a thin wrapper around http.Client used for relay health probes, so that
// tests can mock network access.
type Http interface {
	Get(req *http.Request) ([]byte, error)
}

type DefaultHttp struct {
	client *http.Client
}

func NewHttp() Http {
	return &DefaultHttp{
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (d *DefaultHttp) Get(req *http.Request) ([]byte, error) {
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)

	return buf, err
}
