package balancesum

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Evaluations is the prover's opening record: the eight field values
// revealed at zeta and zeta*omega (§3, §4.6).
type Evaluations struct {
	B, T, H1, H2             fr.Element // at zeta
	SNext, ZNext, H1Next, H2Next fr.Element // at zeta*omega
}

// ComputeEvaluations evaluates the six committed polynomials at zeta and
// zeta*omega as required by §4.6/§4.7 step 4.
func ComputeEvaluations(zeta, zetaOmega fr.Element, tPoly, bPoly, h1Poly, h2Poly, sPoly, zPoly []fr.Element) Evaluations {
	return Evaluations{
		B:       Evaluate(bPoly, zeta),
		T:       Evaluate(tPoly, zeta),
		H1:      Evaluate(h1Poly, zeta),
		H2:      Evaluate(h2Poly, zeta),
		SNext:   Evaluate(sPoly, zetaOmega),
		ZNext:   Evaluate(zPoly, zetaOmega),
		H1Next:  Evaluate(h1Poly, zetaOmega),
		H2Next:  Evaluate(h2Poly, zetaOmega),
	}
}

func scalePoly(poly []fr.Element, scalar fr.Element) []fr.Element {
	out := make([]fr.Element, len(poly))
	for i := range poly {
		out[i].Mul(&poly[i], &scalar)
	}
	return out
}

func addInto(acc, term []fr.Element) []fr.Element {
	if len(term) > len(acc) {
		grown := make([]fr.Element, len(term))
		copy(grown, acc)
		acc = grown
	}
	for i := range term {
		acc[i].Add(&acc[i], &term[i])
	}
	return acc
}

// LinearisationCoeffs are the seven scalar coefficients of
// s, b, z, h1, h2, q1, q2 in r(X) (§4.6), in the order the verifier's
// multi_scalar_mul consumes them (§4.9 step 3).
type LinearisationCoeffs struct {
	S, B, Z, H1, H2, Q1, Q2 fr.Element
}

// computeLinearisationCoeffs derives the closed-form coefficients of
// §4.6 by rearranging the quotient identity of §4.5 at X = zeta: every
// polynomial that is *also* opened directly at zeta or zeta*omega (b, t,
// h1, h2 at zeta; s, z, h1, h2 at zeta*omega) is replaced by its known
// Evaluations value wherever it appears multiplicatively with another
// still-unopened polynomial, leaving s, b, z, h1, h2, q1, q2 as the only
// linear (coefficient-1-degree) unknowns — which is exactly what lets the
// verifier fold them into one commitment via multi_scalar_mul instead of
// opening q1, q2 individually.
func computeLinearisationCoeffs(zeta, gamma, delta, zh fr.Element, l0, lnMinus1 fr.Element, splitDelta uint64, ev Evaluations) LinearisationCoeffs {
	var delta2, delta3, delta4, delta5, delta6, delta7 fr.Element
	delta2.Mul(&delta, &delta)
	delta3.Mul(&delta2, &delta)
	delta4.Mul(&delta3, &delta)
	delta5.Mul(&delta4, &delta)
	delta6.Mul(&delta5, &delta)
	delta7.Mul(&delta6, &delta)

	var one, negOne fr.Element
	one.SetOne()
	negOne.Neg(&one)

	var c LinearisationCoeffs
	c.S = negOne
	c.B = negOne

	// coeffZ = delta*(gamma+b)*(gamma+t) + delta^2*L0(zeta)
	var gb, gt, gbgt, term fr.Element
	gb.Add(&gamma, &ev.B)
	gt.Add(&gamma, &ev.T)
	gbgt.Mul(&gb, &gt)
	c.Z.Mul(&delta, &gbgt)
	term.Mul(&delta2, &l0)
	c.Z.Add(&c.Z, &term)

	// coeffH1 = delta^6 * L0(zeta)
	c.H1.Mul(&delta6, &l0)

	// coeffH2 = delta^7 * Ln-1(zeta)
	c.H2.Mul(&delta7, &lnMinus1)

	// coeffQ1 = -Z_H(zeta)
	c.Q1.Neg(&zh)

	// coeffQ2 = -Z_H(zeta)*(Z_H(zeta)+1)*zeta^splitDelta
	var zhPlus1, zetaPow, q2 fr.Element
	zhPlus1.Add(&zh, &one)
	zetaPow.Exp(zeta, new(big.Int).SetUint64(splitDelta))
	q2.Mul(&zh, &zhPlus1)
	q2.Mul(&q2, &zetaPow)
	c.Q2.Neg(&q2)

	return c
}

// computeREval computes the prover/verifier-shared closed-form r(zeta)
// value (§4.9 step 2): the sum of every *fully scalar* leftover from the
// quotient identity once s, b, z, h1, h2, q1, q2 have been pulled out into
// the linear part above, negated so that r(zeta) plus the leftover equals
// the quotient identity's zero.
func computeREval(m, gamma, delta fr.Element, l0, lnMinus1 fr.Element, n uint64, ev Evaluations) fr.Element {
	var delta2, delta3, delta4, delta5, delta6, delta7 fr.Element
	delta2.Mul(&delta, &delta)
	delta3.Mul(&delta2, &delta)
	delta4.Mul(&delta3, &delta)
	delta5.Mul(&delta4, &delta)
	delta6.Mul(&delta5, &delta)
	delta7.Mul(&delta6, &delta)

	var leftover, term, one fr.Element
	one.SetOne()

	// s_next + m*L0(zeta)
	var mL0 fr.Element
	mL0.Mul(&m, &l0)
	leftover.Add(&ev.SNext, &mL0)

	// - delta^2*L0(zeta)
	term.Mul(&delta2, &l0)
	leftover.Sub(&leftover, &term)

	// - delta*z_next*(gamma+h1)*(gamma+h2)
	var gh1, gh2, gh1gh2 fr.Element
	gh1.Add(&gamma, &ev.H1)
	gh2.Add(&gamma, &ev.H2)
	gh1gh2.Mul(&gh1, &gh2)
	term.Mul(&delta, &ev.ZNext)
	term.Mul(&term, &gh1gh2)
	leftover.Sub(&leftover, &term)

	// + delta^3*(h1_next-h1)*(h1_next-h1-1)*(Ln-1(zeta)-1)
	var dh1, dh1m1, lnm1 fr.Element
	dh1.Sub(&ev.H1Next, &ev.H1)
	dh1m1.Sub(&dh1, &one)
	lnm1.Sub(&lnMinus1, &one)
	term.Mul(&dh1, &dh1m1)
	term.Mul(&term, &lnm1)
	term.Mul(&term, &delta3)
	leftover.Add(&leftover, &term)

	// + delta^4*(h2_next-h2)*(h2_next-h2-1)*(Ln-1(zeta)-1)
	var dh2, dh2m1 fr.Element
	dh2.Sub(&ev.H2Next, &ev.H2)
	dh2m1.Sub(&dh2, &one)
	term.Mul(&dh2, &dh2m1)
	term.Mul(&term, &lnm1)
	term.Mul(&term, &delta4)
	leftover.Add(&leftover, &term)

	// + delta^5*(h2_next-h1)*(h2_next-h1-1)*Ln-1(zeta)
	var dwrap, dwrapm1 fr.Element
	dwrap.Sub(&ev.H2Next, &ev.H1)
	dwrapm1.Sub(&dwrap, &one)
	term.Mul(&dwrap, &dwrapm1)
	term.Mul(&term, &lnMinus1)
	term.Mul(&term, &delta5)
	leftover.Add(&leftover, &term)

	// - delta^7*(n-1)*Ln-1(zeta)
	var nMinus1 fr.Element
	nMinus1.SetUint64(n - 1)
	term.Mul(&delta7, &nMinus1)
	term.Mul(&term, &lnMinus1)
	leftover.Sub(&leftover, &term)

	var rEval fr.Element
	rEval.Neg(&leftover)
	return rEval
}

// BuildLinearisation builds r(X) in coefficient form (for the prover,
// which folds it into the batched W opening without committing to it)
// and the matching r(zeta) value, from the same closed-form
// coefficients the verifier recomputes independently.
func BuildLinearisation(
	d *Domain,
	zeta, gamma, delta, m fr.Element,
	splitDelta uint64,
	ev Evaluations,
	sPoly, bPoly, zPoly, h1Poly, h2Poly, q1Poly, q2Poly []fr.Element,
) ([]fr.Element, fr.Element) {
	zh := d.EvaluateVanishing(zeta)
	var one fr.Element
	one.SetOne()
	l0 := d.LagrangeEval(one, zh, zeta)
	lnMinus1 := d.LagrangeEval(d.Element(d.N-1), zh, zeta)

	coeffs := computeLinearisationCoeffs(zeta, gamma, delta, zh, l0, lnMinus1, splitDelta, ev)

	var r []fr.Element
	r = addInto(r, scalePoly(sPoly, coeffs.S))
	r = addInto(r, scalePoly(bPoly, coeffs.B))
	r = addInto(r, scalePoly(zPoly, coeffs.Z))
	r = addInto(r, scalePoly(h1Poly, coeffs.H1))
	r = addInto(r, scalePoly(h2Poly, coeffs.H2))
	r = addInto(r, scalePoly(q1Poly, coeffs.Q1))
	r = addInto(r, scalePoly(q2Poly, coeffs.Q2))

	rEval := computeREval(m, gamma, delta, l0, lnMinus1, d.N, ev)
	return r, rEval
}

// RCommit reconstructs a commitment to r(X) homomorphically from the
// seven individual commitments, the way the verifier does (§4.9 step 3),
// without ever seeing r(X) itself.
func RCommit(zeta, gamma, delta fr.Element, zh, l0, lnMinus1 fr.Element, splitDelta uint64, ev Evaluations, s, b, z, h1, h2, q1, q2 Commitment) (Commitment, error) {
	coeffs := computeLinearisationCoeffs(zeta, gamma, delta, zh, l0, lnMinus1, splitDelta, ev)
	return MultiScalarMul(
		[]Commitment{s, b, z, h1, h2, q1, q2},
		[]fr.Element{coeffs.S, coeffs.B, coeffs.Z, coeffs.H1, coeffs.H2, coeffs.Q1, coeffs.Q2},
	)
}
