package http

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBody(t *testing.T) {
	t.Run("accumulates across commits", func(t *testing.T) {
		b := NewBody()
		require.NoError(t, b.Init(10, true))

		window, err := b.Prepare(5)
		require.NoError(t, err)
		copy(window, "hello")
		require.NoError(t, b.Commit(5))

		window, err = b.Prepare(6)
		require.NoError(t, err)
		copy(window, " world")
		require.NoError(t, b.Commit(6))

		require.NoError(t, b.Finish())
		require.Equal(t, "hello world", b.String())
		require.Equal(t, []byte("hello world"), b.Bytes())
	})

	t.Run("uncommitted tail is dropped", func(t *testing.T) {
		b := NewBody()
		require.NoError(t, b.Init(0, false))

		window, err := b.Prepare(8)
		require.NoError(t, err)
		copy(window, "abcdefgh")
		require.NoError(t, b.Commit(3))
		require.NoError(t, b.Finish())
		require.Equal(t, "abc", b.String())
	})

	t.Run("init resets previous content", func(t *testing.T) {
		b := NewBody()
		require.NoError(t, b.Init(0, false))
		window, _ := b.Prepare(3)
		copy(window, "old")
		require.NoError(t, b.Commit(3))

		require.NoError(t, b.Init(0, false))
		require.Empty(t, b.Bytes())
	})

	t.Run("json decode", func(t *testing.T) {
		b := NewBody()
		require.NoError(t, b.Init(0, false))
		payload := `{"hello": "world", "n": 42}`
		window, _ := b.Prepare(len(payload))
		copy(window, payload)
		require.NoError(t, b.Commit(len(payload)))

		var model struct {
			Hello string `json:"hello"`
			N     int    `json:"n"`
		}
		require.NoError(t, b.JSON(&model))
		require.Equal(t, "world", model.Hello)
		require.Equal(t, 42, model.N)
	})
}
