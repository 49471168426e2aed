package venuescli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/castaneai/venues/venuesmem"
)

func runScript(t *testing.T, input string) (string, error) {
	t.Helper()
	registry := venuesmem.NewRegistry()
	var out bytes.Buffer
	p := NewProcessor(registry, registry, &out)
	err := p.Run(t.Context(), strings.NewReader(input))
	return out.String(), err
}

func TestProcessorRun(t *testing.T) {
	input := `{"command":"room","venue":"Zoo","room":"Penguin","size":"small"}
{"command":"room","venue":"Zoo","room":"Hippo","size":"medium"}

{"command":"request","id":"r1","start":"2024-01-01","end":"2024-01-03","small":1,"medium":0,"large":0}
{"command":"request","id":"r2","start":"2024-01-02","end":"2024-01-05","small":1,"medium":0,"large":0}
{"command":"list","venue":"Zoo"}
{"command":"change","id":"r1","start":"2024-01-04","end":"2024-01-06","small":0,"medium":1,"large":0}
{"command":"cancel","id":"r1"}
{"command":"cancel","id":"r1"}
{"command":"list","venue":"Zoo"}
`
	expected := `{
  "status": "success",
  "venue": "Zoo",
  "rooms": [
    "Penguin"
  ]
}
{
  "status": "rejected"
}
[
  {
    "room": "Penguin",
    "reservations": [
      {
        "id": "r1",
        "start": "2024-01-01",
        "end": "2024-01-03"
      }
    ]
  },
  {
    "room": "Hippo",
    "reservations": []
  }
]
{
  "status": "success",
  "venue": "Zoo",
  "rooms": [
    "Hippo"
  ]
}
[
  {
    "room": "Penguin",
    "reservations": []
  },
  {
    "room": "Hippo",
    "reservations": []
  }
]
`
	out, err := runScript(t, input)
	require.NoError(t, err)
	require.Equal(t, expected, out)
}

func TestProcessorRunUnknownIDs(t *testing.T) {
	input := `{"command":"room","venue":"Zoo","room":"Penguin","size":"small"}
{"command":"change","id":"ghost","start":"2024-01-01","end":"2024-01-03","small":1,"medium":0,"large":0}
{"command":"cancel","id":"ghost"}
{"command":"list","venue":"Aquarium"}
`
	// a change of an unknown reservation is rejected, a cancel is a no-op and
	// a list of an unknown venue yields an empty array
	expected := `{
  "status": "rejected"
}
[]
`
	out, err := runScript(t, input)
	require.NoError(t, err)
	require.Equal(t, expected, out)
}

func TestProcessorRunStopsOnMalformedLine(t *testing.T) {
	input := `{"command":"room","venue":"Zoo","room":"Penguin","size":"small"}
{"command":"teleport"}
{"command":"list","venue":"Zoo"}
`
	out, err := runScript(t, input)
	require.ErrorContains(t, err, "line 2")
	require.ErrorContains(t, err, `unknown command "teleport"`)
	require.Empty(t, out)
}

func TestProcessorRunSkipsBlankLines(t *testing.T) {
	input := "\n   \n{\"command\":\"room\",\"venue\":\"Zoo\",\"room\":\"Penguin\",\"size\":\"small\"}\n\n"
	out, err := runScript(t, input)
	require.NoError(t, err)
	require.Empty(t, out)
}
