package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	type item struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}

	in := []item{{Name: "a", Score: 1}, {Name: "b", Score: 2}}

	data, err := JSON{}.Marshal(in)
	require.NoError(t, err)

	var out []item
	require.NoError(t, JSON{}.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestMustMarshal(t *testing.T) {
	assert.Equal(t, []byte("[1,2]"), MustMarshal(nil, []int{1, 2}))

	assert.Panics(t, func() {
		MustMarshal(JSON{}, make(chan int))
	})
}
