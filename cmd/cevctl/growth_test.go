package main

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthCommand(t *testing.T) {
	tests := []struct {
		name        string
		elem        string
		pushes      int
		wantContain []string
		wantErr     bool
	}{
		{
			name:        "bytes start at eight",
			elem:        "u8",
			pushes:      17,
			wantContain: []string{"u8 (1 bytes)", "0 -> 8 -> 16 -> 32"},
		},
		{
			name:        "words start at four",
			elem:        "u64",
			pushes:      9,
			wantContain: []string{"u64 (8 bytes)", "0 -> 4 -> 8 -> 16"},
		},
		{
			name:        "pages start at one",
			elem:        "page",
			pushes:      5,
			wantContain: []string{"page (4096 bytes)", "0 -> 1 -> 2 -> 4 -> 8"},
		},
		{
			name:        "zero-sized never grows",
			elem:        "zst",
			pushes:      100,
			wantContain: []string{"zst (0 bytes)", "unbounded"},
		},
		{
			name:        "thousands are grouped",
			elem:        "u8",
			pushes:      1025,
			wantContain: []string{"1,025 pushes", "1,024 -> 2,048"},
		},
		{
			name:    "unknown element",
			elem:    "u16",
			pushes:  1,
			wantErr: true,
		},
		{
			name:    "negative pushes",
			elem:    "u8",
			pushes:  -1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			growthElem = tt.elem
			growthPushes = tt.pushes

			output, err := captureOutput(t, runGrowth)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantContain {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestGrowthCommand_JSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	growthElem = "u64"
	growthPushes = 5
	t.Cleanup(resetFlags)

	output, err := captureOutput(t, runGrowth)
	require.NoError(t, err)

	var trace GrowthTrace
	require.NoError(t, json.Unmarshal([]byte(output), &trace))
	assert.Equal(t, "u64", trace.Elem)
	assert.Equal(t, uintptr(8), trace.ElemSize)
	assert.Equal(t, 5, trace.Pushes)
	assert.Equal(t, []int{0, 4, 8}, trace.Capacities)
}

func TestTraceGrowth(t *testing.T) {
	resetFlags()

	assert.Equal(t, []int{0}, traceGrowth[uint8](0).Capacities)
	assert.Equal(t, []int{math.MaxInt}, traceGrowth[struct{}](3).Capacities)
	assert.Equal(t, []int{0, 4, 8, 16}, traceGrowth[[1024]byte](9).Capacities)
	assert.Equal(t, []int{0, 1, 2, 4}, traceGrowth[[1025]byte](3).Capacities)
}

func TestGrowthQuiet(t *testing.T) {
	resetFlags()
	quiet = true
	growthElem = "u8"
	growthPushes = 3
	t.Cleanup(resetFlags)

	output, err := captureOutput(t, runGrowth)
	require.NoError(t, err)
	assert.Empty(t, output)
}
