package streambuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	t.Run("prepare commit consume", func(t *testing.T) {
		b := New(4)
		copy(b.Prepare(5), "hello")
		b.Commit(5)
		require.Equal(t, "hello", string(b.Data()))
		require.Equal(t, 5, b.Len())

		b.Consume(2)
		require.Equal(t, "llo", string(b.Data()))
		require.Equal(t, 3, b.Len())

		b.Consume(3)
		require.Zero(t, b.Len())
		require.Empty(t, b.Data())
	})

	t.Run("partial commit", func(t *testing.T) {
		b := New(16)
		window := b.Prepare(10)
		copy(window, "abc")
		b.Commit(3)
		require.Equal(t, "abc", string(b.Data()))
	})

	t.Run("window stays contiguous across refills", func(t *testing.T) {
		b := New(2)
		b.Append([]byte("foo"))
		b.Consume(1)
		b.Append([]byte("bar"))
		require.Equal(t, "oobar", string(b.Data()))
	})

	t.Run("grows past initial size", func(t *testing.T) {
		b := New(1)
		payload := make([]byte, 1000)
		for i := range payload {
			payload[i] = byte(i)
		}

		b.Append(payload)
		require.Equal(t, payload, b.Data())
	})

	t.Run("compacts when drained", func(t *testing.T) {
		b := New(8)
		b.Append([]byte("data"))
		b.Consume(4)
		b.Append([]byte("x"))
		require.Equal(t, "x", string(b.Data()))
		require.Equal(t, 1, b.Len())
	})

	t.Run("overconsume is clamped", func(t *testing.T) {
		b := New(8)
		b.Append([]byte("ab"))
		b.Consume(10)
		require.Zero(t, b.Len())
	})
}
