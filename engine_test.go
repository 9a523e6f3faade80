package loop

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	p := &fakePlatform{surface: &fakeSurface{}, input: &scriptedInput{}}
	e, err := New[struct{}](p, nil)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Title:           DefaultTitle,
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		FramesPerSecond: DefaultFPS,
		TicksPerSecond:  DefaultTPS,
	}, e.Config())
	assert.Equal(t, DefaultTitle, p.title)
	assert.EqualValues(t, DefaultWidth, p.width)
	assert.EqualValues(t, DefaultHeight, p.height)
	assert.Equal(t, 1, p.windows)
	assert.Equal(t, 1, p.inputs)
	assert.Equal(t, StatusConfigured, e.Status())
}

func TestNewProps(t *testing.T) {
	p := &fakePlatform{surface: &fakeSurface{}, input: &scriptedInput{}}
	e, err := New[struct{}](p, &Props{Title: "Pong", Width: 800, Height: 600})
	require.NoError(t, err)

	assert.Equal(t, "Pong", e.Config().Title)
	assert.Equal(t, "Pong", p.title)
	assert.EqualValues(t, 800, p.width)
	assert.EqualValues(t, 600, p.height)
}

func TestNewPlatformFailure(t *testing.T) {
	boom := errors.New("no display")

	t.Run("window", func(t *testing.T) {
		p := &fakePlatform{windowErr: boom}
		e, err := New[struct{}](p, nil)
		require.Error(t, err)
		assert.Nil(t, e)
		assert.ErrorIs(t, err, ErrPlatformInit)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, p.inputs)
	})

	t.Run("input", func(t *testing.T) {
		p := &fakePlatform{surface: &fakeSurface{}, inputErr: boom}
		e, err := New[struct{}](p, nil)
		require.Error(t, err)
		assert.Nil(t, e)
		assert.ErrorIs(t, err, ErrPlatformInit)
		assert.ErrorIs(t, err, boom)
	})
}

func TestSettersLastWriteWins(t *testing.T) {
	c := newSteppingClock()
	in := &scriptedInput{
		batches: [][]Event{{}},
		before:  func(int) { c.Add(time.Second) },
	}
	e, _ := newTestEngine[struct{}](t, in, c)

	var first, second int
	e.WithFramesPerSecond(30).
		WithFramesPerSecond(45).
		WithTicksPerSecond(10).
		WithTicksPerSecond(15).
		WithTickHandler(func(LoopData, *struct{}) { first++ }).
		WithTickHandler(func(LoopData, *struct{}) { second++ })

	assert.EqualValues(t, 45, e.Config().FramesPerSecond)
	assert.EqualValues(t, 15, e.Config().TicksPerSecond)

	require.NoError(t, e.Run())
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestWithStateStoresCopy(t *testing.T) {
	type counter struct{ N int }

	c := newSteppingClock()
	in := &scriptedInput{
		batches: [][]Event{{}},
		before:  func(int) { c.Add(time.Second) },
	}
	e, _ := newTestEngine[counter](t, in, c)

	original := counter{N: 5}
	var seen []int
	e.WithState(original).
		WithTickHandler(func(_ LoopData, s *counter) {
			s.N++
			seen = append(seen, s.N)
		})

	original.N = 100
	require.NoError(t, e.Run())
	assert.Equal(t, []int{6}, seen)
	assert.Equal(t, 100, original.N)
}

func TestConfigValidate(t *testing.T) {
	for _, tc := range []struct {
		name     string
		fps, tps uint
		ok       bool
	}{
		{"valid", 60, 20, true},
		{"zero fps", 0, 20, false},
		{"zero tps", 60, 0, false},
		{"both zero", 0, 0, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := Config{FramesPerSecond: tc.fps, TicksPerSecond: tc.tps}.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrConfiguration)
			}
		})
	}
}

func TestConfigIntervals(t *testing.T) {
	c := Config{FramesPerSecond: 60, TicksPerSecond: 20}
	assert.Equal(t, 16666666*time.Nanosecond, c.FrameInterval())
	assert.Equal(t, 50*time.Millisecond, c.TickInterval())
}
