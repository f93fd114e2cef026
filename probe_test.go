// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitops

import "sync"
import "sync/atomic"
import "testing"
import "time"

import "github.com/google/go-cmp/cmp"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"
import "golang.org/x/sync/errgroup"

func TestParseNoHW(t *testing.T) {
	all := Capabilities{true, true, true}
	tests := []struct {
		val  string
		want Capabilities
	}{
		{"", Capabilities{}},
		{"  ", Capabilities{}},
		{"1", all},
		{"true", all},
		{"0", Capabilities{}},
		{"false", Capabilities{}},
		{"all", all},
		{"popcnt", Capabilities{PopCount: true}},
		{"LZCNT", Capabilities{LeadingZeros: true}},
		{"abm", Capabilities{LeadingZeros: true}},
		{"bmi1", Capabilities{TrailingZeros: true}},
		{"popcnt, tzcnt", Capabilities{PopCount: true, TrailingZeros: true}},
		{"avx512,popcnt", Capabilities{PopCount: true}},
		{"bogus", Capabilities{}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, parseNoHW(tt.val)); diff != "" {
			t.Errorf("parseNoHW(%q) mismatch (-want +got):\n%s", tt.val, diff)
		}
	}
}

func TestResolve(t *testing.T) {
	assert.True(t, resolve(Always, false))
	assert.True(t, resolve(Maybe, true))
	assert.False(t, resolve(Maybe, false))
	assert.False(t, resolve(Never, true))
}

func TestWithout(t *testing.T) {
	c := Capabilities{true, true, false}
	assert.Equal(t, Capabilities{false, true, false}, c.without(Capabilities{PopCount: true, TrailingZeros: true}))
}

// the snapshot agrees with the build time facts
func TestProbeFacts(t *testing.T) {
	p := Probe()
	f := BuildFacts()

	check := func(name string, s Support, got bool) {
		switch s {
		case Always:
			assert.True(t, got, name)
		case Never:
			assert.False(t, got, name)
		}
	}

	check("PopCount", f.PopCount.Support, p.PopCount)
	check("LeadingZeros", f.LeadingZeros.Support, p.LeadingZeros)
	check("TrailingZeros", f.TrailingZeros.Support, p.TrailingZeros)
}

// concurrent callers all observe the same snapshot
func TestProbeConcurrent(t *testing.T) {
	const callers = 64

	var g errgroup.Group
	results := make([]Capabilities, callers)
	for i := range results {
		i := i
		g.Go(func() error {
			results[i] = Probe()
			return nil
		})
	}

	assert.NoError(t, g.Wait())
	for i := range results {
		assert.Equal(t, results[0], results[i])
	}
}

// whether any primitive is probed at runtime on this target
const anyProbed = popCountSupport == Maybe || leadingZerosSupport == Maybe || trailingZerosSupport == Maybe

// a detector reporting fixed capabilities and counting its calls.  It
// dawdles so concurrent first callers overlap with it.
type countingDetector struct {
	calls atomic.Int32
	found Capabilities
}

func (d *countingDetector) detect() Capabilities {
	d.calls.Add(1)
	time.Sleep(10 * time.Millisecond)
	return d.found
}

// snapshot expected from found with nothing disabled
func expectedSnapshot(found Capabilities) Capabilities {
	return Capabilities{
		PopCount:      resolve(popCountSupport, found.PopCount),
		LeadingZeros:  resolve(leadingZerosSupport, found.LeadingZeros),
		TrailingZeros: resolve(trailingZerosSupport, found.TrailingZeros),
	}
}

// many simultaneous first calls run detection once and share its result
func TestProbeDetectsOnce(t *testing.T) {
	t.Setenv(EnvNoHW, "")

	const callers = 64

	d := &countingDetector{found: Capabilities{PopCount: true, TrailingZeros: true}}
	p := newProbe(d.detect)
	require.Zero(t, d.calls.Load(), "detection ran before the first call")

	var g errgroup.Group
	var ready sync.WaitGroup
	start := make(chan struct{})
	results := make([]Capabilities, callers)

	ready.Add(callers)
	for i := range results {
		i := i
		g.Go(func() error {
			ready.Done()
			<-start
			results[i] = p()
			return nil
		})
	}

	ready.Wait()
	close(start)
	require.NoError(t, g.Wait())

	want := int32(0)
	if anyProbed {
		want = 1
	}

	assert.Equal(t, want, d.calls.Load(), "number of detections")
	for i := range results {
		assert.Equal(t, expectedSnapshot(d.found), results[i], "caller %d", i)
	}

	// later calls reuse the snapshot
	d.found = Capabilities{}
	assert.Equal(t, results[0], p())
	assert.Equal(t, want, d.calls.Load(), "number of detections")
}

// EnvNoHW masks detected capabilities but not guaranteed ones
func TestProbeNoHW(t *testing.T) {
	t.Setenv(EnvNoHW, "popcnt,tzcnt")

	d := &countingDetector{found: Capabilities{true, true, true}}
	got := newProbe(d.detect)()

	assert.Equal(t, expectedSnapshot(Capabilities{LeadingZeros: true}), got)
	assert.Equal(t, popCountSupport == Always, got.PopCount)
	assert.Equal(t, trailingZerosSupport == Always, got.TrailingZeros)
}

// the dispatcher uses exactly the instructions of the snapshot
func TestDispatchFollowsSnapshot(t *testing.T) {
	p := Probe()
	assert.Equal(t, p.PopCount, hasPopCount())
	assert.Equal(t, p.LeadingZeros, hasLeadingZeros())
	assert.Equal(t, p.TrailingZeros, hasTrailingZeros())

	for i := 0; i < 3; i++ {
		assert.Equal(t, p, Probe())
	}
}
