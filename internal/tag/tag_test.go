package tag

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/posol/internal/backend/bn254/balancesum"
)

func testKeys(t *testing.T, n uint64) (*balancesum.CommitterKey, *balancesum.VerifierKey, *balancesum.Domain) {
	t.Helper()
	var alpha fr.Element
	_, err := alpha.SetRandom()
	require.NoError(t, err)
	srs, err := balancesum.Setup(2*n+10, alpha.BigInt(new(big.Int)))
	require.NoError(t, err)
	ck, vk := balancesum.Trim(srs, 2*n+10)
	d, err := balancesum.NewDomain(n, false)
	require.NoError(t, err)
	return ck, vk, d
}

func TestCommitIndividualOpenVerify(t *testing.T) {
	n := uint64(8)
	ck, vk, d := testKeys(t, n)

	tags := make([]fr.Element, 4)
	for i := range tags {
		tags[i].SetUint64(uint64(100 + i))
	}

	commit, poly, err := Commit(ck, d, n, tags)
	require.NoError(t, err)

	proof, err := IndividualOpen(ck, d, 2, poly)
	require.NoError(t, err)

	require.NoError(t, IndividualVerify(vk, d, 2, tags[2], commit, proof))

	var wrong fr.Element
	wrong.SetUint64(999)
	require.Error(t, IndividualVerify(vk, d, 2, wrong, commit, proof))
}

func TestCommitRejectsTooManyTags(t *testing.T) {
	n := uint64(4)
	ck, _, d := testKeys(t, n)
	tags := make([]fr.Element, 5)
	_, _, err := Commit(ck, d, n, tags)
	require.Error(t, err)
}
