package memresolver_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/resolve/memresolver"
)

func TestResolver(t *testing.T) {
	res := memresolver.New()
	res.Add(`mem://a`, `a.gif`, []byte(`abc`))

	rc, err := res.Open(`mem://a`)
	require.NoError(t, err)
	assert.Equal(t, 1, res.OpenCount())
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, `abc`, string(b))
	require.NoError(t, rc.Close())
	require.NoError(t, rc.Close())
	assert.Zero(t, res.OpenCount())

	cur, err := res.Query(`mem://a`)
	require.NoError(t, err)
	v, ok := cur.Lookup(imgproc.ColumnSize)
	assert.True(t, ok)
	assert.Equal(t, int64(3), v)
	_, ok = cur.Lookup(imgproc.ColumnMIMEType)
	assert.False(t, ok)
	require.NoError(t, cur.Close())

	res.Remove(`mem://a`)
	_, err = res.Open(`mem://a`)
	assert.Error(t, err)
	assert.Zero(t, res.OpenCount())
}
