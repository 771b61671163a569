package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil extraction service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingExtractionService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Extraction: &mockExtractionService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil extraction service returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingExtractionService)
	})

	t.Run("extraction only is valid", func(t *testing.T) {
		ports := &Ports{
			Extraction: &mockExtractionService{},
		}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Extraction: &mockExtractionService{},
			Segments:   &mockSegmentLister{},
		}
		assert.NoError(t, ports.Validate())
	})
}
