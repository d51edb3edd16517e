package attest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoopAttesterCarriesMeasurement(t *testing.T) {
	measurement := [32]byte{1, 2, 3}
	bundle := NoopAttester{}.Attest(measurement)

	require.Equal(t, [32]byte{}, bundle.AttesterID)
	require.Equal(t, measurement, bundle.Measurement)
	require.Equal(t, measurement[:], bundle.Attestation)
}

func TestNoopAttesterImplementsAttester(t *testing.T) {
	var _ Attester = NoopAttester{}
}
