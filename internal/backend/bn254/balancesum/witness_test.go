package balancesum

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func TestGenerateBSum(t *testing.T) {
	bal := []uint64{0, 1, 2, 3, 4, 5, 6, 7, 0, 0, 0, 0, 0, 0, 0, 0}
	_, bEvals, m, err := GenerateB(16, bal)
	require.NoError(t, err)

	var want fr.Element
	want.SetUint64(28)
	require.True(t, m.Equal(&want))
	require.Len(t, bEvals, 16)
}

func TestGenerateBRejectsOutOfRange(t *testing.T) {
	_, _, _, err := GenerateB(8, []uint64{9})
	require.Error(t, err)
}

func TestGenerateSClosesPrefixSum(t *testing.T) {
	n := uint64(8)
	bal := []uint64{3, 5, 1, 0}
	balPadded, bEvals, m, err := GenerateB(n, bal)
	require.NoError(t, err)
	s := GenerateS(n, bEvals, m)

	require.True(t, s[0].Equal(&m))

	// s[i+1] - s[i] - b[i] = 0 for i in [1, n-1), and s[1] - s[0] + m - b[0] = 0.
	var got, want fr.Element
	got.Sub(&s[1], &s[0])
	got.Add(&got, &m)
	require.True(t, got.Equal(&bEvals[0]))

	for i := uint64(1); i < n-1; i++ {
		got.Sub(&s[i+1], &s[i])
		require.True(t, got.Equal(&bEvals[i]), "i=%d", i)
	}

	// wraparound: s[0] must equal s[n-1] + b[n-1] == m.
	want.Add(&s[n-1], &bEvals[n-1])
	require.True(t, want.Equal(&m))
	_ = balPadded
}

func TestGenerateHStructure(t *testing.T) {
	n := uint64(16)
	bal := []uint64{0, 1, 2, 3, 4, 5, 6, 7, 0, 0, 0, 0, 0, 0, 0, 0}
	balPadded, _, _, err := GenerateB(n, bal)
	require.NoError(t, err)

	h1, h2, err := GenerateH(n, balPadded)
	require.NoError(t, err)
	require.True(t, h1[0].IsZero())

	var nMinus1 fr.Element
	nMinus1.SetUint64(n - 1)
	require.True(t, h2[n-1].Equal(&nMinus1))

	assertStepIsZeroOrOne := func(a, b fr.Element) {
		var diff, one fr.Element
		one.SetOne()
		diff.Sub(&b, &a)
		require.True(t, diff.IsZero() || diff.Equal(&one), "step %s -> %s", a.String(), b.String())
	}
	for i := uint64(0); i < n-1; i++ {
		assertStepIsZeroOrOne(h1[i], h1[i+1])
		assertStepIsZeroOrOne(h2[i], h2[i+1])
	}
	assertStepIsZeroOrOne(h1[n-1], h2[0])
}

func TestGenerateZBaseCase(t *testing.T) {
	n := uint64(8)
	bal := []uint64{3, 5, 1, 0}
	balPadded, bEvals, _, err := GenerateB(n, bal)
	require.NoError(t, err)
	h1, h2, err := GenerateH(n, balPadded)
	require.NoError(t, err)

	var gamma fr.Element
	gamma.SetUint64(7)
	z, err := GenerateZ(n, bEvals, h1, h2, gamma)
	require.NoError(t, err)

	var one fr.Element
	one.SetOne()
	require.True(t, z[0].Equal(&one))

	// Spot-check the recurrence at i=0 directly against its definition.
	var t0, num1, num2, num, den1, den2, den, denInv, want fr.Element
	t0.SetZero()
	num1.Add(&gamma, &bEvals[0])
	num2.Add(&gamma, &t0)
	num.Mul(&num1, &num2)
	den1.Add(&gamma, &h1[0])
	den2.Add(&gamma, &h2[0])
	den.Mul(&den1, &den2)
	denInv.Inverse(&den)
	want.Mul(&num, &denInv)
	want.Mul(&want, &z[0])
	require.True(t, z[1].Equal(&want))
}

func TestAddBlindersPreservesDomainEvaluations(t *testing.T) {
	n := uint64(8)
	poly := make([]fr.Element, n)
	for i := range poly {
		poly[i].SetUint64(uint64(i + 1))
	}
	blinders := make([]fr.Element, 3)
	for i := range blinders {
		blinders[i].SetUint64(uint64(100 + i))
	}
	blinded := AddBlinders(poly, n, blinders)
	require.Len(t, blinded, int(n)+3)

	d, err := NewDomain(n, false)
	require.NoError(t, err)
	for i := uint64(0); i < n; i++ {
		point := d.Element(i)
		got := Evaluate(blinded, point)
		want := Evaluate(poly, point)
		require.True(t, got.Equal(&want), "i=%d", i)
	}
}
