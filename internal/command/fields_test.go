package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_String(t *testing.T) {
	f := Fields{
		"name":    "  Acme Corp  ",
		"value":   float64(50000),
		"flag":    true,
		"blank":   "   ",
		"nothing": nil,
	}

	s, ok := f.String("name")
	assert.True(t, ok)
	assert.Equal(t, "Acme Corp", s)

	s, ok = f.String("value")
	assert.True(t, ok)
	assert.Equal(t, "50000", s)

	s, ok = f.String("flag")
	assert.True(t, ok)
	assert.Equal(t, "true", s)

	_, ok = f.String("blank")
	assert.False(t, ok)

	_, ok = f.String("nothing")
	assert.False(t, ok)

	_, ok = f.String("missing")
	assert.False(t, ok)
}

func TestFields_Float(t *testing.T) {
	f := Fields{
		"plain":     float64(75000),
		"formatted": "1,250,000.50",
		"spaced":    "50 000",
		"words":     "about fifty thousand",
	}

	n, ok := f.Float("plain")
	assert.True(t, ok)
	assert.Equal(t, 75000.0, n)

	n, ok = f.Float("formatted")
	assert.True(t, ok)
	assert.Equal(t, 1250000.50, n)

	n, ok = f.Float("spaced")
	assert.True(t, ok)
	assert.Equal(t, 50000.0, n)

	_, ok = f.Float("words")
	assert.False(t, ok)
}

func TestFields_Date(t *testing.T) {
	f := Fields{
		"good": "2026-09-30",
		"bad":  "next quarter",
	}

	d, ok := f.Date("good")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), d)

	_, ok = f.Date("bad")
	assert.False(t, ok)
}

func TestFields_StringSlice(t *testing.T) {
	f := Fields{
		"list":   []interface{}{"cost", "compliance", " "},
		"scalar": "cost, compliance",
		"empty":  []interface{}{},
	}

	got, ok := f.StringSlice("list")
	assert.True(t, ok)
	assert.Equal(t, []string{"cost", "compliance"}, got)

	got, ok = f.StringSlice("scalar")
	assert.True(t, ok)
	assert.Equal(t, []string{"cost", "compliance"}, got)

	_, ok = f.StringSlice("empty")
	assert.False(t, ok)
}

func TestFields_Has(t *testing.T) {
	f := Fields{
		"present":   "x",
		"blank":     "  ",
		"nilValue":  nil,
		"emptyList": []interface{}{},
		"number":    float64(0),
	}

	assert.True(t, f.Has("present"))
	assert.False(t, f.Has("blank"))
	assert.False(t, f.Has("nilValue"))
	assert.False(t, f.Has("emptyList"))
	assert.True(t, f.Has("number"))
	assert.False(t, f.Has("missing"))
}
