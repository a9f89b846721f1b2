package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil ports returns error", func(t *testing.T) {
		server, err := NewServer(nil)
		require.Error(t, err)
		assert.Nil(t, server)
	})

	t.Run("nil diff service returns error", func(t *testing.T) {
		ports := &Ports{Images: &mockImageLoader{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingDiffService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Diff:   &mockDiffService{},
			Images: &mockImageLoader{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil diff service returns error", func(t *testing.T) {
		ports := &Ports{Images: &mockImageLoader{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingDiffService)
	})

	t.Run("nil image loader returns error", func(t *testing.T) {
		ports := &Ports{Diff: &mockDiffService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingImageLoader)
	})

	t.Run("required ports only is valid", func(t *testing.T) {
		ports := &Ports{
			Diff:   &mockDiffService{},
			Images: &mockImageLoader{},
		}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Diff:     &mockDiffService{},
			Images:   &mockImageLoader{},
			Game:     &mockGameService{},
			Settings: &mockSettingsService{},
		}
		assert.NoError(t, ports.Validate())
	})
}
