package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/layoutkit/track"
)

func TestPrintTextMap(t *testing.T) {
	tr := track.New(10, nil)
	require.NoError(t, tr.Add(1, 0, 3))
	require.NoError(t, tr.Add(2, 5, 2))

	var buf bytes.Buffer
	require.NoError(t, New(tr, &buf, DefaultOptions()).Print())

	want := strings.Join([]string{
		"Regions: {1: (start=0, length=3), 2: (start=5, length=2)}",
		"1--  2-   ",
		"0123456789",
		"0         ",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintTextRulerLabels(t *testing.T) {
	tr := track.New(25, nil)
	require.NoError(t, tr.Add(14, 10, 5))

	var buf bytes.Buffer
	require.NoError(t, New(tr, &buf, DefaultOptions()).Print())

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 5) // listing, map, ruler, labels, trailing newline

	// The map cell at offset 10 shows the id's last decimal digit.
	assert.Equal(t, "          4----          ", lines[1])
	assert.Equal(t, "0123456789012345678901234", lines[2])
	assert.Equal(t, "0         10        20   ", lines[3])
}

func TestPrintTextNegativeID(t *testing.T) {
	tr := track.New(5, nil)
	require.NoError(t, tr.Add(-27, 1, 2))

	var buf bytes.Buffer
	require.NoError(t, New(tr, &buf, DefaultOptions()).Print())

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, " 7-  ", lines[1])
}

func TestPrintTextZeroLengthRegionDrawsNothing(t *testing.T) {
	tr := track.New(6, nil)
	require.NoError(t, tr.Add(3, 2, 0))

	var buf bytes.Buffer
	require.NoError(t, New(tr, &buf, DefaultOptions()).Print())

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "Regions: {3: (start=2, length=0)}", lines[0])
	assert.Equal(t, "      ", lines[1])
}

func TestPrintTextWithoutRuler(t *testing.T) {
	tr := track.New(4, nil)
	require.NoError(t, tr.Add(9, 0, 4))

	opts := DefaultOptions()
	opts.ShowRuler = false

	var buf bytes.Buffer
	require.NoError(t, New(tr, &buf, opts).Print())

	assert.Equal(t, "Regions: {9: (start=0, length=4)}\n9---\n", buf.String())
}

func TestPrintTextCustomFillRune(t *testing.T) {
	tr := track.New(5, nil)
	require.NoError(t, tr.Add(1, 0, 3))

	opts := DefaultOptions()
	opts.FillRune = '#'
	opts.ShowRuler = false

	var buf bytes.Buffer
	require.NoError(t, New(tr, &buf, opts).Print())

	assert.Contains(t, buf.String(), "1##  \n")
}

func TestPrintJSON(t *testing.T) {
	tr := track.New(10, nil)
	require.NoError(t, tr.Add(2, 5, 2))
	require.NoError(t, tr.Add(1, 0, 3))

	opts := DefaultOptions()
	opts.Format = FormatJSON

	var buf bytes.Buffer
	require.NoError(t, New(tr, &buf, opts).Print())

	var got snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, snapshot{
		Capacity: 10,
		Usage:    0.5,
		Regions: []snapshotRegion{
			{ID: 1, Start: 0, Length: 3},
			{ID: 2, Start: 5, Length: 2},
		},
	}, got)
}

func TestColorIsCosmeticOnly(t *testing.T) {
	tr := track.New(10, nil)
	require.NoError(t, tr.Add(1, 0, 3))

	plain := DefaultOptions()
	colored := DefaultOptions()
	colored.Color = true

	var plainBuf, colorBuf bytes.Buffer
	require.NoError(t, New(tr, &plainBuf, plain).Print())
	require.NoError(t, New(tr, &colorBuf, colored).Print())

	// Stripping ANSI escapes from the colored output yields the plain map.
	stripped := stripANSI(colorBuf.String())
	assert.Equal(t, plainBuf.String(), stripped)
}

func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
