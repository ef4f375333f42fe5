package grh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyen-nguyen-190304/grhverify/grh"
)

// emptyData returns zero-length χ/Λ sequences, valid whenever K = 0.
func emptyData() (grh.CharacterSeq, grh.VonMangoldtSeq) {
	return grh.CharacterSeq{}, grh.VonMangoldtSeq{}
}

// TestVerify_EndToEndNegativeDiscriminant reproduces the reference case
// d=-4, K=0, η=0 with the single symmetric interval [-2, 2].
func TestVerify_EndToEndNegativeDiscriminant(t *testing.T) {
	chi, lambda := emptyData()
	intervals := []grh.Interval{{GammaMinus: -2, GammaPlus: 2}}

	res, err := grh.Verify(-4, 0, 0, intervals, chi, lambda)
	require.NoError(t, err)

	assert.True(t, res.Verified, "one conjugate pair suffices for d=-4")
	assert.Equal(t, 1, res.ZerosUsed)
	assert.InDelta(t, 2.0*(4.0/3.0)+6.0/25.0, res.LHS, 1e-12)
	assert.InDelta(t, 0.5*math.Log(4.0*math.E*math.E/(4.0*math.Pi*math.Exp(grh.EulerGamma))), res.RHS, 1e-12)
}

// TestVerify_PositiveDiscriminantBranch exercises the d ≥ 0 constant term
// ½·ln(d/(π·e^γ)).
func TestVerify_PositiveDiscriminantBranch(t *testing.T) {
	chi, lambda := emptyData()
	intervals := []grh.Interval{{GammaMinus: 6.0, GammaPlus: 6.1}}

	res, err := grh.Verify(5, 0, 0, intervals, chi, lambda)
	require.NoError(t, err)

	assert.True(t, res.Verified)
	assert.Equal(t, 1, res.ZerosUsed)
	assert.InDelta(t, 0.5*math.Log(5.0/(math.Pi*math.Exp(grh.EulerGamma))), res.RHS, 1e-12)
}

// TestVerify_EmptyIntervals documents the loop semantics: with no intervals
// the verdict is false with ZerosUsed=0, even when 2·ι(η) already exceeds
// the right-hand side. Verification always consumes at least one interval.
func TestVerify_EmptyIntervals(t *testing.T) {
	chi, lambda := emptyData()

	res, err := grh.Verify(-4, 0, 0, nil, chi, lambda)
	require.NoError(t, err)

	assert.False(t, res.Verified)
	assert.Zero(t, res.ZerosUsed)
	assert.Greater(t, res.LHS, res.RHS, "2·iota(0) alone exceeds the RHS for d=-4")
}

// TestVerify_MinimalPrefix checks that the fold stops at the first
// exceeding prefix and never consumes the remaining intervals.
func TestVerify_MinimalPrefix(t *testing.T) {
	chi, lambda := emptyData()
	intervals := []grh.Interval{
		{GammaMinus: -2, GammaPlus: 2},
		{GammaMinus: -5, GammaPlus: 5},
		{GammaMinus: -9, GammaPlus: 9},
	}

	res, err := grh.Verify(-4, 0, 0, intervals, chi, lambda)
	require.NoError(t, err)

	assert.True(t, res.Verified)
	assert.Equal(t, 1, res.ZerosUsed, "first interval already exceeds the RHS")
	// LHS holds only the first contribution: later intervals were never folded.
	assert.InDelta(t, 2.0*grh.Iota(0)+grh.ZeroContribution(-2, 2), res.LHS, 1e-12)
}

// TestVerify_AppendMonotonicity verifies that appending intervals to an
// already-verifying sequence changes neither the verdict nor ZerosUsed.
func TestVerify_AppendMonotonicity(t *testing.T) {
	chi, lambda := emptyData()
	base := []grh.Interval{{GammaMinus: -2, GammaPlus: 2}}

	first, err := grh.Verify(-4, 0, 0, base, chi, lambda)
	require.NoError(t, err)
	require.True(t, first.Verified)

	extended := append(append([]grh.Interval{}, base...),
		grh.Interval{GammaMinus: -7, GammaPlus: 7},
		grh.Interval{GammaMinus: 21.0, GammaPlus: 21.3},
	)
	second, err := grh.Verify(-4, 0, 0, extended, chi, lambda)
	require.NoError(t, err)

	assert.True(t, second.Verified, "appending intervals must never un-verify")
	assert.Equal(t, first.ZerosUsed, second.ZerosUsed, "minimal prefix is unchanged")
	assert.Equal(t, first, second, "early exit makes the runs identical")
}

// TestVerify_Exhausted verifies the not-verified outcome: ZerosUsed equals
// the full interval count and the LHS agrees with the standalone C(Z) total.
func TestVerify_Exhausted(t *testing.T) {
	chi, lambda := emptyData()
	// ln(10^15)/2 ≈ 17.3 dwarfs any sum of three contributions.
	const d = int64(1_000_000_000_000_000)
	intervals := []grh.Interval{
		{GammaMinus: -2, GammaPlus: 2},
		{GammaMinus: 4.9, GammaPlus: 5.1},
		{GammaMinus: -8, GammaPlus: 8},
	}

	res, err := grh.Verify(d, 0, 0, intervals, chi, lambda)
	require.NoError(t, err)

	assert.False(t, res.Verified)
	assert.Equal(t, len(intervals), res.ZerosUsed)
	// Cross-consistency: Verify's accumulated contributions must agree with CZ.
	assert.InDelta(t, grh.CZ(intervals), res.LHS-2.0*grh.Iota(0), 1e-12)
}

// TestVerify_StrictInequality constructs LHS == RHS exactly and checks that
// equality is not accepted as verification.
func TestVerify_StrictInequality(t *testing.T) {
	chi, lambda := emptyData()
	intervals := []grh.Interval{{GammaMinus: -2, GammaPlus: 2}}

	// Solve ½·ln(d/(π·e^γ)) = 2·ι(0) + 6/25 for d, then feed the lhs back as
	// the rhs through a discriminant whose constant term reproduces it.
	target := 2.0*grh.Iota(0) + grh.ZeroContribution(-2, 2)
	d := math.Pi * math.Exp(grh.EulerGamma) * math.Exp(2.0*target)

	res, err := grh.Verify(int64(math.Round(d)), 0, 0, intervals, chi, lambda)
	require.NoError(t, err)

	if res.LHS == res.RHS {
		assert.False(t, res.Verified, "equality must not verify")
	} else {
		// Rounding d to an integer perturbed the RHS; the verdict must still
		// match the strict comparison.
		assert.Equal(t, res.LHS > res.RHS, res.Verified)
	}
}

// TestVerify_Deterministic checks bit-identical results across repeated calls.
func TestVerify_Deterministic(t *testing.T) {
	chi, err := grh.NewCharacterSeq([]int8{1, -1, 0, 1, -1})
	require.NoError(t, err)
	lambda, err := grh.NewVonMangoldtSeq([]float64{0, math.Log(2), math.Log(3), math.Log(2), math.Log(5)})
	require.NoError(t, err)
	intervals := []grh.Interval{
		{GammaMinus: -3.2, GammaPlus: 3.2},
		{GammaMinus: 6.6, GammaPlus: 6.8},
	}

	first, err := grh.Verify(-163, 5, 0.5, intervals, chi, lambda)
	require.NoError(t, err)
	second, err := grh.Verify(-163, 5, 0.5, intervals, chi, lambda)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must yield bit-identical results")
}

// TestVerify_IndexOutOfRange ensures array underruns surface as domain
// errors from Verify, not as silent zeros.
func TestVerify_IndexOutOfRange(t *testing.T) {
	chi, err := grh.NewCharacterSeq([]int8{1})
	require.NoError(t, err)
	lambda, err := grh.NewVonMangoldtSeq([]float64{0})
	require.NoError(t, err)

	_, err = grh.Verify(-4, 3, 0, nil, chi, lambda)
	assert.ErrorIs(t, err, grh.ErrIndexOutOfRange)
}

// TestVerify_NegativeBound ensures K < 0 is rejected before any work.
func TestVerify_NegativeBound(t *testing.T) {
	chi, lambda := emptyData()

	_, err := grh.Verify(-4, -1, 0, nil, chi, lambda)
	assert.ErrorIs(t, err, grh.ErrBadBound)
}

// TestVerify_LogDerivativeFeedsRHS checks the estimate shifts the RHS by
// exactly the LogDerivative value.
func TestVerify_LogDerivativeFeedsRHS(t *testing.T) {
	chi, err := grh.NewCharacterSeq([]int8{1, -1, 0, 1})
	require.NoError(t, err)
	lambda, err := grh.NewVonMangoldtSeq([]float64{0, math.Log(2), math.Log(3), math.Log(2)})
	require.NoError(t, err)

	bare, err := grh.Verify(-4, 0, 0, nil, grh.CharacterSeq{}, grh.VonMangoldtSeq{})
	require.NoError(t, err)
	shifted, err := grh.Verify(-4, 4, 0, nil, chi, lambda)
	require.NoError(t, err)

	ld, err := grh.LogDerivative(chi, lambda, 4)
	require.NoError(t, err)
	assert.InDelta(t, bare.RHS+ld, shifted.RHS, 1e-12)
}
