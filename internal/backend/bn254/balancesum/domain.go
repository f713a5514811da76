// Package balancesum implements the balance-sum argument: the KZG/PLONK
// style proof that an exchange's declared balances sum to a public total
// and that every balance is bounded, over the bn254 scalar field.
package balancesum

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/nume-crypto/posol/internal/errs"
)

// Domain wraps the base evaluation domain D_n together with the extended
// coset domain the quotient builder evaluates on (size 2n without blinding,
// 4n with it, per §4.5).
type Domain struct {
	N          uint64
	Multiplier uint64
	Base       *fft.Domain
	Extended   *fft.Domain
}

// NewDomain builds D_n and its extended coset domain. n must be a power of
// two within the field's two-adicity, which fft.NewDomain itself enforces
// by panicking on an unsupported size; we guard the power-of-two case
// ourselves to return a typed error instead.
func NewDomain(n uint64, blinding bool) (*Domain, error) {
	if n == 0 || n&(n-1) != 0 {
		return nil, errs.New(errs.InvalidDomain, "domain size %d is not a power of two", n)
	}
	multiplier := uint64(2)
	if blinding {
		multiplier = 4
	}
	return &Domain{
		N:          n,
		Multiplier: multiplier,
		Base:       fft.NewDomain(n),
		Extended:   fft.NewDomain(multiplier * n),
	}, nil
}

// Element returns omega^i, the i-th point of D_n.
func (d *Domain) Element(i uint64) fr.Element {
	var e fr.Element
	e.Exp(d.Base.Generator, new(big.Int).SetUint64(i))
	return e
}

// GroupGen returns omega, the generator of D_n.
func (d *Domain) GroupGen() fr.Element { return d.Base.Generator }

// GroupGenInv returns omega^-1.
func (d *Domain) GroupGenInv() fr.Element { return d.Base.GeneratorInv }

// EvaluateVanishing computes Z_H(x) = x^n - 1.
func (d *Domain) EvaluateVanishing(x fr.Element) fr.Element {
	var xn, one fr.Element
	one.SetOne()
	xn.Exp(x, new(big.Int).SetUint64(d.N))
	xn.Sub(&xn, &one)
	return xn
}

// LagrangeEval computes L_k(zeta) = Z_H(zeta) * omega^k / (n * (zeta - omega^k)),
// the closed form used throughout the linearisation (§4.1, §4.6).
func (d *Domain) LagrangeEval(omegaK, zhAtZeta, zeta fr.Element) fr.Element {
	var num, denom, nFr, denomInv, res fr.Element

	num.Mul(&zhAtZeta, &omegaK)

	denom.Sub(&zeta, &omegaK)
	nFr.SetUint64(d.N)
	denom.Mul(&denom, &nFr)

	denomInv.Inverse(&denom)
	res.Mul(&num, &denomInv)
	return res
}

// pad returns a copy of evals extended with zero elements up to size n.
func pad(evals []fr.Element, n uint64) []fr.Element {
	out := make([]fr.Element, n)
	copy(out, evals)
	return out
}

// Interpolate recovers the coefficient-form polynomial whose evaluations on
// D_n are evals (poly_from_evals in the reference implementation).
func (d *Domain) Interpolate(evals []fr.Element) []fr.Element {
	coeffs := pad(evals, d.Base.Cardinality)
	d.Base.FFTInverse(coeffs, fft.DIF)
	fft.BitReverse(coeffs)
	return coeffs
}

// Evaluate evaluates poly (coefficient form, low-degree first) at point via
// Horner's method.
func Evaluate(poly []fr.Element, point fr.Element) fr.Element {
	var result fr.Element
	for i := len(poly) - 1; i >= 0; i-- {
		result.Mul(&result, &point)
		result.Add(&result, &poly[i])
	}
	return result
}

// CosetEvals evaluates poly on the extended coset domain g*D_{multiplier*n}
// (coset_evals_from_poly in the reference implementation).
func (d *Domain) CosetEvals(poly []fr.Element) []fr.Element {
	evals := pad(poly, d.Extended.Cardinality)
	d.Extended.FFT(evals, fft.DIF, true)
	fft.BitReverse(evals)
	return evals
}

// InverseCosetFFT recovers the coefficient-form polynomial from its
// evaluations on the extended coset domain (poly_from_coset_evals in the
// reference implementation).
func (d *Domain) InverseCosetFFT(evals []fr.Element) []fr.Element {
	coeffs := make([]fr.Element, len(evals))
	copy(coeffs, evals)
	d.Extended.FFTInverse(coeffs, fft.DIF, true)
	fft.BitReverse(coeffs)
	return coeffs
}

// ShiftByOmega returns evals reindexed so that index i holds f(omega*x_i)
// instead of f(x_i), implementing the "skip by multiplier" trick of §9:
// appending the first `multiplier` coset evaluations to the tail makes
// evals[i+multiplier] equal f evaluated at the next point in omega's
// direction, without a second FFT.
func (d *Domain) ShiftByOmega(evals []fr.Element) []fr.Element {
	shifted := make([]fr.Element, len(evals))
	m := int(d.Multiplier)
	extended := append(append([]fr.Element{}, evals...), evals[:m]...)
	copy(shifted, extended[m:])
	return shifted
}

// TruncateDegree trims trailing zero coefficients so poly's length reflects
// its true degree + 1; used for assertions against the quotient degree bound.
func TruncateDegree(poly []fr.Element) []fr.Element {
	end := len(poly)
	for end > 0 && poly[end-1].IsZero() {
		end--
	}
	return poly[:end]
}
