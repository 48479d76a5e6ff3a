package bridge

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btraven00/geobridge/pkg/geo"
	"github.com/btraven00/geobridge/pkg/parsers"
)

func TestBridge_Found(t *testing.T) {
	b := New(Offline, nil)

	r := b.Bridge(context.Background(), "https://www.google.com/maps/place/Bengaluru/@12.971599,77.594566,15z")

	require.True(t, r.Result.Found())
	assert.Equal(t, "Google Maps", r.Source)
	assert.Equal(t, geo.Coordinate{Lat: 12.971599, Lng: 77.594566}, *r.Result.Coordinate)
	assert.Len(t, r.Links, 8)
	assert.Empty(t, r.Warnings)
}

func TestBridge_NotFound(t *testing.T) {
	b := New(Offline, nil)

	r := b.Bridge(context.Background(), "not a url at all")

	assert.Equal(t, parsers.StatusUnrecognized, r.Result.Status)
	assert.Empty(t, r.Source)
	assert.Nil(t, r.Links)
}

func TestBridge_OutOfRangeWarning(t *testing.T) {
	b := New(Offline, nil)

	r := b.Bridge(context.Background(), "123.5, 400.25")

	require.True(t, r.Result.Found())
	assert.Equal(t, []string{WarnOutOfRange}, r.Warnings)
	assert.Len(t, r.Links, 8)
}

func TestForCoordinate(t *testing.T) {
	r := ForCoordinate("1.5 2.5", geo.New(1.5, 2.5))

	assert.Equal(t, parsers.LabelRawCoordinates, r.Source)
	assert.Equal(t, parsers.StageRaw, r.Result.Stage)
	assert.Len(t, r.Links, 8)
	assert.Empty(t, r.Warnings)
}

func TestBridgeAll_PreservesOrder(t *testing.T) {
	var inFlight, peak atomic.Int32

	slow := ExtractorFunc(func(ctx context.Context, text string) parsers.Result {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)

		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}

		time.Sleep(5 * time.Millisecond)

		return parsers.ExtractCoordinates(text)
	})

	inputs := make([]string, 40)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("%d.5, %d.25", i, i)
	}

	reports, err := New(slow, nil).BridgeAll(context.Background(), inputs, 3)
	require.NoError(t, err)
	require.Len(t, reports, len(inputs))

	for i, r := range reports {
		require.NotNil(t, r)
		assert.Equal(t, inputs[i], r.Input)
		require.True(t, r.Result.Found())
		assert.InDelta(t, float64(i)+0.5, r.Result.Coordinate.Lat, 1e-9)
	}

	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestBridgeAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports, err := New(Offline, nil).BridgeAll(ctx, []string{"1.5, 2.5", "3.5, 4.5"}, 0)

	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, reports, 2)
}
