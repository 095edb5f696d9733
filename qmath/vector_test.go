package qmath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwap(t *testing.T) {
	a := (float32)(1)
	b := (float32)(2)
	Swap(&a, &b)
	require.True(t, a == 2)
	require.True(t, b == 1)
}

func TestEqualWithEpsilon(t *testing.T) {
	require.True(t, EqualWithEpsilon(0.1, 0.2, 0.11))
	require.False(t, EqualWithEpsilon(0.1, 0.3, 0.11))
}

func TestVectorClass(t *testing.T) {
	zeroVector := NewVector3f(0, 0, 0)
	oneVector := NewVector3f(1, 1, 1)

	require.True(t, zeroVector.Equal(NewVector3f(0, 0, 0)))
	require.True(t, oneVector.EqualWithEpsilon(NewVector3f(0.9, 1.1, 1), 0.11))
	require.False(t, oneVector.Equal(zeroVector))

	require.True(t, oneVector.Equal(Add(zeroVector, oneVector)))
	require.True(t, oneVector.Equal(Sub(oneVector, zeroVector)))
	require.True(t, zeroVector.Equal(Mul(oneVector, 0)))

	v := NewVector3f(1, 2, 3)
	require.Equal(t, (float32)(1), v.GetX())
	require.Equal(t, (float32)(2), v.GetY())
	require.Equal(t, (float32)(3), v.GetZ())
	require.Equal(t, v.GetX(), v.at(0))
	require.Equal(t, v.GetY(), v.at(1))
	require.Equal(t, v.GetZ(), v.at(2))
}

func TestVector4Class(t *testing.T) {
	v := NewVector4f(1, 2, 3, 4)
	require.Equal(t, (float32)(1), v.GetX())
	require.Equal(t, (float32)(2), v.GetY())
	require.Equal(t, (float32)(3), v.GetZ())
	require.Equal(t, (float32)(4), v.GetW())
}
