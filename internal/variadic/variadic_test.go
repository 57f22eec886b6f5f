package variadic

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo_ExplicitArguments(t *testing.T) {
	var buf bytes.Buffer
	err := Demo(&buf, Kwargs{{Name: "fruit", Value: "apple"}}, 10, 20, 30)
	require.NoError(t, err)

	want := "Positional arguments received:\n" +
		"  Argument 0: 10\n" +
		"  Argument 1: 20\n" +
		"  Argument 2: 30\n" +
		"\n" +
		"Named arguments received:\n" +
		"  fruit: apple\n"
	assert.Equal(t, want, buf.String())
}

func TestDemo_SpreadMatchesExplicit(t *testing.T) {
	fruits := []any{"apple", "banana", "cherry"}
	person, err := KwargsOf("name", "Alice", "age", 30, "city", "New York")
	require.NoError(t, err)

	var spread, explicit bytes.Buffer
	require.NoError(t, Demo(&spread, person, fruits...))
	require.NoError(t, Demo(&explicit, Kwargs{
		{Name: "name", Value: "Alice"},
		{Name: "age", Value: 30},
		{Name: "city", Value: "New York"},
	}, "apple", "banana", "cherry"))

	assert.Equal(t, explicit.String(), spread.String())
	assert.Contains(t, spread.String(), "  Argument 2: cherry\n")
	assert.True(t, strings.HasSuffix(spread.String(), "  name: Alice\n  age: 30\n  city: New York\n"))
}

func TestDemo_NoArguments(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf, nil))
	assert.Equal(t, "Positional arguments received:\n\nNamed arguments received:\n", buf.String())
}

func TestDemo_AnyValueType(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf, Kwargs{{Name: "ok", Value: true}}, nil, 1.5, []int{1, 2}, map[string]int{"a": 1}))

	out := buf.String()
	assert.Contains(t, out, "  Argument 0: <nil>\n")
	assert.Contains(t, out, "  Argument 1: 1.5\n")
	assert.Contains(t, out, "  Argument 2: [1 2]\n")
	assert.Contains(t, out, "  Argument 3: map[a:1]\n")
	assert.Contains(t, out, "  ok: true\n")
}

type failingWriter struct{ calls int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("disk full")
}

func TestDemo_WriteError(t *testing.T) {
	w := &failingWriter{}
	err := Demo(w, Kwargs{{Name: "a", Value: 1}}, 1, 2, 3)
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, 1, w.calls)
}

func TestKwargs(t *testing.T) {
	kw, err := KwargsOf("fruit", "apple", "color", "red", "fruit", "pear")
	require.NoError(t, err)

	assert.Equal(t, []string{"fruit", "color"}, kw.Names())
	v, ok := kw.Get("fruit")
	assert.True(t, ok)
	assert.Equal(t, "pear", v)

	_, ok = kw.Get("size")
	assert.False(t, ok)

	_, err = KwargsOf("fruit")
	assert.Error(t, err)

	_, err = KwargsOf(1, "apple")
	assert.Error(t, err)
}

func TestKwargs_SetLeavesReceiver(t *testing.T) {
	base, err := KwargsOf("a", 1, "b", 2)
	require.NoError(t, err)

	updated := base.Set("a", 99)
	added := base.Set("c", 3)

	v, _ := base.Get("a")
	assert.Equal(t, 1, v)
	assert.Equal(t, []string{"a", "b"}, base.Names())

	v, _ = updated.Get("a")
	assert.Equal(t, 99, v)
	assert.Equal(t, []string{"a", "b", "c"}, added.Names())
	_, ok := updated.Get("c")
	assert.False(t, ok)
}
