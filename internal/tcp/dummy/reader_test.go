package dummy

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	t.Run("splits pieces", func(t *testing.T) {
		r := NewStringReader("Hello, ", "world!")
		data, err := r.Read(3)
		require.NoError(t, err)
		require.Equal(t, "Hel", string(data))

		data, err = r.Read(100)
		require.NoError(t, err)
		require.Equal(t, "lo, ", string(data))

		data, err = r.Read(100)
		require.NoError(t, err)
		require.Equal(t, "world!", string(data))

		_, err = r.Read(100)
		require.ErrorIs(t, err, io.EOF)
		require.Equal(t, 4, r.Reads)
		require.Equal(t, []int{3, 100, 100, 100}, r.Requested)
	})

	t.Run("custom error", func(t *testing.T) {
		r := NewStringReader().WithError(io.ErrClosedPipe)
		_, err := r.Read(1)
		require.Equal(t, io.ErrClosedPipe, err)
	})
}

func TestCircularReader(t *testing.T) {
	r := NewCircularReader([]byte("first"), []byte("second"))
	for range 2 {
		data, err := r.Read(100)
		require.NoError(t, err)
		require.Equal(t, "first", string(data))

		data, err = r.Read(3)
		require.NoError(t, err)
		require.Equal(t, "sec", string(data))
	}
}
