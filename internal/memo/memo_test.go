package memo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockSource stands in for the method whose result is memoized.
type mockSource struct {
	mock.Mock
}

func (m *mockSource) AMethod() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// testClass owns a memoized property backed by AMethod.
type testClass struct {
	source   *mockSource
	property Cell[int]
}

func (c *testClass) AProperty() (int, error) {
	return c.property.Get(c.source.AMethod)
}

func TestCell_ComputesOnce(t *testing.T) {
	source := new(mockSource)
	source.On("AMethod").Return(42, nil).Once()

	obj := &testClass{source: source}
	assert.False(t, obj.property.done)

	first, err := obj.AProperty()
	require.NoError(t, err)
	second, err := obj.AProperty()
	require.NoError(t, err)

	assert.Equal(t, 42, first)
	assert.Equal(t, 42, second)
	assert.True(t, obj.property.done)
	source.AssertNumberOfCalls(t, "AMethod", 1)
	source.AssertExpectations(t)
}

func TestCell_ManyReads(t *testing.T) {
	calls := 0
	var c Cell[[]string]
	compute := func() ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	first, err := c.Get(compute)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := c.Get(compute)
		require.NoError(t, err)
		// Same backing array, not a recomputed copy.
		assert.Same(t, &first[0], &got[0])
	}
	assert.Equal(t, 1, calls)
}

func TestCell_ErrorIsNotCached(t *testing.T) {
	errBoom := errors.New("boom")
	source := new(mockSource)
	source.On("AMethod").Return(0, errBoom).Once()
	source.On("AMethod").Return(7, nil).Once()

	obj := &testClass{source: source}

	_, err := obj.AProperty()
	assert.ErrorIs(t, err, errBoom)
	assert.False(t, obj.property.done)

	got, err := obj.AProperty()
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	got, err = obj.AProperty()
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	source.AssertNumberOfCalls(t, "AMethod", 2)
}

func TestCell_PerInstance(t *testing.T) {
	source := new(mockSource)
	source.On("AMethod").Return(42, nil).Twice()

	a := &testClass{source: source}
	b := &testClass{source: source}

	_, _ = a.AProperty()
	_, _ = a.AProperty()
	_, _ = b.AProperty()
	_, _ = b.AProperty()

	source.AssertNumberOfCalls(t, "AMethod", 2)
}

func TestCell_ZeroValueIsCached(t *testing.T) {
	calls := 0
	var c Cell[any]
	compute := func() (any, error) {
		calls++
		return nil, nil
	}

	_, _ = c.Get(compute)
	_, _ = c.Get(compute)

	assert.True(t, c.done)
	assert.Equal(t, 1, calls)
}
