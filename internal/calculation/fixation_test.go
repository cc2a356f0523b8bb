package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tn-payroll/payroll-engine/internal/domain"
	"github.com/tn-payroll/payroll-engine/internal/refdata"
)

func TestFixInto4thPC(t *testing.T) {
	st := &SimulationState{
		Commission:      domain.ThirdPC,
		ScaleID:         "3.12",
		OrdinaryScaleID: "3.12",
		BasicPay:        700,
	}
	snap, err := fixInto4thPC(st)
	require.NoError(t, err)

	// 700 is below the floor of 1200-30-1440-40-1800, so pay fixes at the floor
	assert.Equal(t, domain.FourthPC, st.Commission)
	assert.Equal(t, "4.12", st.ScaleID)
	assert.Equal(t, int64(1200), st.BasicPay)
	assert.Equal(t, int64(700), snap.PreRevisedPay)
	assert.Equal(t, int64(700), snap.Emoluments)
	assert.Equal(t, int64(1200), snap.InitialRevisedPay)
}

func TestFixInto4thPCRequiresThirdCommission(t *testing.T) {
	st := &SimulationState{Commission: domain.FifthPC, OrdinaryScaleID: "5.12"}
	_, err := fixInto4thPC(st)
	assert.Error(t, err)
}

func TestFixInto4thPCUnmappedScale(t *testing.T) {
	st := &SimulationState{Commission: domain.ThirdPC, OrdinaryScaleID: "3.99"}
	_, err := fixInto4thPC(st)
	var me *domain.MappingError
	assert.ErrorAs(t, err, &me)
}

func TestFixInto5thPC(t *testing.T) {
	st := &SimulationState{
		Commission:      domain.FourthPC,
		ScaleID:         "4.12",
		OrdinaryScaleID: "4.12",
		BasicPay:        1440,
	}
	snap, err := fixInto5thPC(st)
	require.NoError(t, err)

	// emoluments 1440 + 958 + 100 = 2498, below the 4000 floor of 4000-100-6000
	assert.Equal(t, domain.FifthPC, st.Commission)
	assert.Equal(t, "5.12", st.ScaleID)
	assert.Equal(t, int64(2498), snap.Emoluments)
	assert.Equal(t, int64(4000), st.BasicPay)
	assert.Equal(t, int64(4000), snap.InitialRevisedPay)
}

func TestFixInto6thPC(t *testing.T) {
	tests := []struct {
		name         string
		basic        int64
		expectedPIPB int64
	}{
		// 4300 * 1.86 = 7998, below the PB-2 floor of 9300
		{"raised to band floor", 4300, 9300},
		// 5500 * 1.86 = 10230
		{"multiplied within band", 5500, 10230},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &SimulationState{
				Commission: domain.FifthPC,
				ScaleID:    "5.12",
				BasicPay:   tt.basic,
			}
			snap, err := fixInto6thPC(st)
			require.NoError(t, err)
			assert.Equal(t, domain.SixthPC, st.Commission)
			assert.Equal(t, tt.expectedPIPB, st.PIPB)
			assert.Equal(t, int64(4200), st.GradePay)
			assert.Equal(t, tt.expectedPIPB+4200, st.BasicPay)
			assert.Equal(t, st.BasicPay, snap.InitialRevisedPay)
			assert.Equal(t, "6.12", snap.ScaleID)
		})
	}
}

func TestFixInto6thPCSelectionGradeScaleMaps(t *testing.T) {
	// a selection-grade 5th scale carries its own mapping entry
	st := &SimulationState{
		Commission: domain.FifthPC,
		ScaleID:    "5.12SG",
		BasicPay:   5000,
	}
	_, err := fixInto6thPC(st)
	require.NoError(t, err)
	assert.Equal(t, "6.12", st.ScaleID)
}

func TestFixInto7thPC(t *testing.T) {
	st := &SimulationState{
		Commission: domain.SixthPC,
		PIPB:       9300,
		GradePay:   4200,
		BasicPay:   13500,
	}
	snap, err := fixInto7thPC(st)
	require.NoError(t, err)

	// 13500 * 2.57 = 34695, fitted into level 8 at its first cell
	assert.Equal(t, domain.SeventhPC, st.Commission)
	assert.Equal(t, 8, st.Level)
	assert.Equal(t, int64(34695), snap.Emoluments)
	assert.Equal(t, refdata.PayMatrix[8][0], st.BasicPay)
	assert.Equal(t, st.BasicPay, snap.InitialRevisedPay)
	assert.Zero(t, st.PIPB)
	assert.Zero(t, st.GradePay)
	assert.Empty(t, st.ScaleID)
}

func TestFixInto7thPCUnknownGradePay(t *testing.T) {
	st := &SimulationState{Commission: domain.SixthPC, GradePay: 9999, BasicPay: 20000}
	_, err := fixInto7thPC(st)
	var me *domain.MappingError
	assert.ErrorAs(t, err, &me)
}
