package balancesum

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/posol/internal/errs"
	"github.com/nume-crypto/posol/internal/parallel"
)

// CosetElement returns the j-th point of the extended coset domain:
// g * psi^j, where psi generates D_{multiplier*n} and g is the field's
// fixed multiplicative coset shift gnark-crypto's fft.Domain carries as
// FrMultiplicativeGen.
func (d *Domain) CosetElement(j uint64) fr.Element {
	var psij, x fr.Element
	psij.Exp(d.Extended.Generator, new(big.Int).SetUint64(j))
	x.Mul(&d.Extended.FrMultiplicativeGen, &psij)
	return x
}

// QuotientInputs bundles the (possibly blinded) coefficient-form
// polynomials and round-2/round-3 challenges the quotient identity of
// §4.5 is built from.
type QuotientInputs struct {
	TPoly, BPoly, SPoly, H1Poly, H2Poly, ZPoly []fr.Element
	M, Gamma, Delta                            fr.Element
}

// ComputeQuotient evaluates the 8-term composition identity of §4.5
// pointwise on the extended coset domain, divides by Z_H there (never
// zero on a coset disjoint from D_n), and inverse-coset-FFTs the result
// back to coefficient form. workers <= 0 uses runtime.NumCPU().
func ComputeQuotient(d *Domain, in QuotientInputs, workers int) ([]fr.Element, error) {
	t := d.CosetEvals(in.TPoly)
	b := d.CosetEvals(in.BPoly)
	s := d.CosetEvals(in.SPoly)
	h1 := d.CosetEvals(in.H1Poly)
	h2 := d.CosetEvals(in.H2Poly)
	z := d.CosetEvals(in.ZPoly)

	// f(omega*X) on the coset, obtained by an index shift rather than a
	// second FFT (§9, "extended-domain shift by omega").
	sShift := d.ShiftByOmega(s)
	h1Shift := d.ShiftByOmega(h1)
	h2Shift := d.ShiftByOmega(h2)
	zShift := d.ShiftByOmega(z)

	size := len(t)
	out := make([]fr.Element, size)

	var delta2, delta3, delta4, delta5, delta6, delta7 fr.Element
	delta2.Mul(&in.Delta, &in.Delta)
	delta3.Mul(&delta2, &in.Delta)
	delta4.Mul(&delta3, &in.Delta)
	delta5.Mul(&delta4, &in.Delta)
	delta6.Mul(&delta5, &in.Delta)
	delta7.Mul(&delta6, &in.Delta)

	var one, nMinus1, omegaNMinus1 fr.Element
	one.SetOne()
	nMinus1.SetUint64(d.N - 1)
	omegaNMinus1 = d.Element(d.N - 1)

	parallel.Execute(size, func(start, end int) {
		for j := start; j < end; j++ {
			x := d.CosetElement(uint64(j))
			zh := d.EvaluateVanishing(x)
			l0 := d.LagrangeEval(one, zh, x)
			ln := d.LagrangeEval(omegaNMinus1, zh, x)

			var term1, term2, term3, term4, term5, term6, term7, term8, sum fr.Element

			// prefix-sum closure: s(wX) - s(X) + m*L0(X) - b(X)
			var mL0 fr.Element
			mL0.Mul(&in.M, &l0)
			term1.Sub(&sShift[j], &s[j])
			term1.Add(&term1, &mL0)
			term1.Sub(&term1, &b[j])

			// grand-product step: delta * ( z(X)(g+b)(g+t) - z(wX)(g+h1)(g+h2) )
			var gb, gt, zbt, gh1, gh2, zh1h2 fr.Element
			gb.Add(&in.Gamma, &b[j])
			gt.Add(&in.Gamma, &t[j])
			zbt.Mul(&z[j], &gb)
			zbt.Mul(&zbt, &gt)
			gh1.Add(&in.Gamma, &h1[j])
			gh2.Add(&in.Gamma, &h2[j])
			zh1h2.Mul(&zShift[j], &gh1)
			zh1h2.Mul(&zh1h2, &gh2)
			term2.Sub(&zbt, &zh1h2)
			term2.Mul(&term2, &in.Delta)

			// grand-product base: delta^2 * (z(X)-1) * L0(X)
			term3.Sub(&z[j], &one)
			term3.Mul(&term3, &l0)
			term3.Mul(&term3, &delta2)

			// delta h1 in {0,1} inside: delta^3 * dh1*(dh1-1)*(Ln-1-1)
			var dh1, dh1m1, lnm1 fr.Element
			dh1.Sub(&h1Shift[j], &h1[j])
			dh1m1.Sub(&dh1, &one)
			lnm1.Sub(&ln, &one)
			term4.Mul(&dh1, &dh1m1)
			term4.Mul(&term4, &lnm1)
			term4.Mul(&term4, &delta3)

			// delta h2 in {0,1} inside: delta^4 * dh2*(dh2-1)*(Ln-1-1)
			var dh2, dh2m1 fr.Element
			dh2.Sub(&h2Shift[j], &h2[j])
			dh2m1.Sub(&dh2, &one)
			term5.Mul(&dh2, &dh2m1)
			term5.Mul(&term5, &lnm1)
			term5.Mul(&term5, &delta4)

			// wrap between h1 tail and h2 head: delta^5 * dwrap*(dwrap-1)*Ln-1
			var dwrap, dwrapm1 fr.Element
			dwrap.Sub(&h2Shift[j], &h1[j])
			dwrapm1.Sub(&dwrap, &one)
			term6.Mul(&dwrap, &dwrapm1)
			term6.Mul(&term6, &ln)
			term6.Mul(&term6, &delta5)

			// h1[0] = 0: delta^6 * h1(X) * L0(X)
			term7.Mul(&h1[j], &l0)
			term7.Mul(&term7, &delta6)

			// h2[n-1] = n-1: delta^7 * (h2(X)-(n-1)) * Ln-1(X)
			term8.Sub(&h2[j], &nMinus1)
			term8.Mul(&term8, &ln)
			term8.Mul(&term8, &delta7)

			sum.Add(&term1, &term2)
			sum.Add(&sum, &term3)
			sum.Add(&sum, &term4)
			sum.Add(&sum, &term5)
			sum.Add(&sum, &term6)
			sum.Add(&sum, &term7)
			sum.Add(&sum, &term8)

			var zhInv fr.Element
			zhInv.Inverse(&zh)
			out[j].Mul(&sum, &zhInv)
		}
	}, workers)

	q := TruncateDegree(d.InverseCosetFFT(out))

	maxDegree := uint64(2*d.N + 6)
	if d.Multiplier == 2 {
		maxDegree = 2 * d.N
	}
	if uint64(len(q)) > maxDegree+1 {
		return nil, errs.New(errs.InvalidInput, "quotient degree %d exceeds bound %d", len(q)-1, maxDegree)
	}
	return q, nil
}

// SplitQuotient splits Q(X) at degree split = n+splitDelta into q1
// (coefficients [0,split)) and q2 (the remainder). With blinding, e0 is a
// fresh random scalar appended at the end of q1 and subtracted from
// q2[0], so q1(X) + X^split*q2(X) is unchanged while each half carries
// independent randomness (§4.5).
func SplitQuotient(q []fr.Element, n, splitDelta uint64, e0 *fr.Element) (q1, q2 []fr.Element) {
	split := n + splitDelta
	if uint64(len(q)) <= split {
		q1 = make([]fr.Element, split)
		copy(q1, q)
		q2 = []fr.Element{}
	} else {
		q1 = append([]fr.Element{}, q[:split]...)
		q2 = append([]fr.Element{}, q[split:]...)
	}

	if e0 == nil {
		return q1, q2
	}
	q1 = append(q1, *e0)
	if len(q2) == 0 {
		q2 = []fr.Element{*e0}
		q2[0].Neg(e0)
	} else {
		q2[0].Sub(&q2[0], e0)
	}
	return q1, q2
}
