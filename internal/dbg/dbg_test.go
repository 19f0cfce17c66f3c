package dbg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type thing struct{ n int }
	a := &thing{1}

	name := Name(a)
	assert.NotEmpty(t, name)
	assert.Equal(t, name, Name(a), "names are stable for the same object")

	var nilThing *thing
	assert.Equal(t, "Ø", Name(nilThing))
	assert.Equal(t, "Ø", Name(nil))
}

func TestLogf(t *testing.T) {
	var out bytes.Buffer
	oldOutput, oldEnabled := Output, Enabled
	defer func() {
		Output, Enabled = oldOutput, oldEnabled
	}()
	Output = &out

	Enabled = false
	Logf(Warn, "hidden %d", 1)
	assert.Empty(t, out.String())

	Enabled = true
	Logf(Warn, "shown %d", 2)
	Logf(Error, "also shown")
	assert.Contains(t, out.String(), "shown 2")
	assert.Contains(t, out.String(), "warn")
	assert.Contains(t, out.String(), "also shown")
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("\n")))
}
