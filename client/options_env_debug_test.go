package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("HEADSUP_DEBUG", "true")
	c, err := New()
	require.NoError(t, err)
	mt, ok := c.http.Transport.(*metricsTransport)
	require.True(t, ok)
	_, ok = mt.base.(*debugTransport)
	assert.True(t, ok, "expected debugTransport to be installed when HEADSUP_DEBUG=true")
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	// base transport returns error
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c, err := New(WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true), WithResolver(testResolver()))
	require.NoError(t, err)
	_, err = c.ListNodes(context.Background(), ListNodesParams{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
