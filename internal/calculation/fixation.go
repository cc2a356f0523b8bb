package calculation

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tn-payroll/payroll-engine/internal/domain"
	"github.com/tn-payroll/payroll-engine/internal/payscale"
	"github.com/tn-payroll/payroll-engine/internal/refdata"
	"github.com/tn-payroll/payroll-engine/pkg/dateutil"
	"github.com/tn-payroll/payroll-engine/pkg/money"
)

// Fixation constants fixed by the respective government orders.
var (
	// 4th to 5th: merged DA portion and interim relief added to emoluments.
	fifthPCDAPortion     = int64(958)
	fifthPCInterimRelief = int64(100)
	// 5th to 6th: basic multiplied by 1.86 to arrive at pay in the band.
	sixthPCMultiplier = decimal.NewFromFloat(1.86)
	// 6th to 7th: existing basic multiplied by 2.57, then fitted into the level.
	seventhPCMultiplier = decimal.NewFromFloat(2.57)
)

// fixInto4thPC revises a 3rd-commission basic into the mapped 4th-commission
// scale. Emoluments are the bare basic (the 1986 order merged DA at zero).
func fixInto4thPC(s *SimulationState) (*domain.FixationSnapshot, error) {
	if s.Commission != domain.ThirdPC {
		return nil, fmt.Errorf("4th commission fixation requires 3rd commission pay, have %d", s.Commission)
	}
	newID, ok := refdata.ScaleMap3to4[s.OrdinaryScaleID]
	if !ok {
		return nil, domain.NewMappingError("scale", s.OrdinaryScaleID)
	}
	entry := refdata.Scales[newID]
	sc, err := payscale.Parse(entry.Scale)
	if err != nil {
		return nil, err
	}

	emoluments := s.BasicPay
	revised := sc.FitNextHigher(emoluments)

	snap := &domain.FixationSnapshot{
		Commission:        domain.FourthPC,
		EffectiveDate:     dateutil.FormatDDMMYYYY(domain.FourthPCStart),
		PreRevisedPay:     s.BasicPay,
		Emoluments:        emoluments,
		InitialRevisedPay: revised,
		ScaleID:           newID,
		Remark: fmt.Sprintf("Pay fixed at %s in scale %s under %s",
			money.FormatINR(revised), entry.Scale, refdata.GOCitations["4thPC"]),
	}

	s.Commission = domain.FourthPC
	s.ScaleID = newID
	s.OrdinaryScaleID = newID
	s.BasicPay = revised
	return snap, nil
}

// fixInto5thPC revises a 4th-commission basic into the mapped 5th-commission
// scale: basic plus the merged DA portion plus interim relief, fitted at the
// next higher stage.
func fixInto5thPC(s *SimulationState) (*domain.FixationSnapshot, error) {
	if s.Commission != domain.FourthPC {
		return nil, fmt.Errorf("5th commission fixation requires 4th commission pay, have %d", s.Commission)
	}
	newID, ok := refdata.ScaleMap4to5[s.OrdinaryScaleID]
	if !ok {
		return nil, domain.NewMappingError("scale", s.OrdinaryScaleID)
	}
	entry := refdata.Scales[newID]
	sc, err := payscale.Parse(entry.Scale)
	if err != nil {
		return nil, err
	}

	emoluments := s.BasicPay + fifthPCDAPortion + fifthPCInterimRelief
	revised := sc.FitNextHigher(emoluments)

	snap := &domain.FixationSnapshot{
		Commission:        domain.FifthPC,
		EffectiveDate:     dateutil.FormatDDMMYYYY(domain.FifthPCStart),
		PreRevisedPay:     s.BasicPay,
		Emoluments:        emoluments,
		InitialRevisedPay: revised,
		ScaleID:           newID,
		Remark: fmt.Sprintf("Emoluments %s (basic + DA %s + interim relief %s) fixed at %s in scale %s under %s",
			money.FormatINR(emoluments), money.FormatINR(fifthPCDAPortion), money.FormatINR(fifthPCInterimRelief),
			money.FormatINR(revised), entry.Scale, refdata.GOCitations["5thPC"]),
	}

	s.Commission = domain.FifthPC
	s.ScaleID = newID
	s.OrdinaryScaleID = newID
	s.BasicPay = revised
	return snap, nil
}

// fixInto6thPC converts a 5th-commission basic into pay band plus grade pay:
// PIPB is 1.86 times the basic, raised to the band floor if short, and the
// grade pay comes from the mapped 6th-commission entry for the scale held.
func fixInto6thPC(s *SimulationState) (*domain.FixationSnapshot, error) {
	if s.Commission != domain.FifthPC {
		return nil, fmt.Errorf("6th commission fixation requires 5th commission pay, have %d", s.Commission)
	}
	newID, ok := refdata.ScaleMap5to6[s.ScaleID]
	if !ok {
		return nil, domain.NewMappingError("scale", s.ScaleID)
	}
	entry := refdata.Scales[newID]
	gp := entry.GradePay
	band, ok := refdata.PayBands[gp]
	if !ok {
		return nil, domain.NewMappingError("band", strconv.FormatInt(gp, 10))
	}

	pipb := money.MulRound(s.BasicPay, sixthPCMultiplier)
	if pipb < band.Min {
		pipb = band.Min
	}
	revised := pipb + gp

	snap := &domain.FixationSnapshot{
		Commission:        domain.SixthPC,
		EffectiveDate:     dateutil.FormatDDMMYYYY(domain.SixthPCStart),
		PreRevisedPay:     s.BasicPay,
		Emoluments:        pipb,
		InitialRevisedPay: revised,
		ScaleID:           newID,
		PayInPayBand:      pipb,
		GradePay:          gp,
		Remark: fmt.Sprintf("Pay in pay band %s fixed at %s with grade pay %s under %s",
			band.Name, money.FormatINR(pipb), money.FormatINR(gp), refdata.GOCitations["6thPC"]),
	}

	s.Commission = domain.SixthPC
	s.ScaleID = newID
	s.OrdinaryScaleID = newID
	s.PIPB = pipb
	s.GradePay = gp
	s.BasicPay = revised
	return snap, nil
}

// fixInto7thPC converts pay band plus grade pay into a matrix level: basic
// times 2.57 fitted into the level the grade pay maps to.
func fixInto7thPC(s *SimulationState) (*domain.FixationSnapshot, error) {
	if s.Commission != domain.SixthPC {
		return nil, fmt.Errorf("7th commission fixation requires 6th commission pay, have %d", s.Commission)
	}
	level, ok := refdata.GradePayToLevel[s.GradePay]
	if !ok {
		return nil, domain.NewMappingError("grade-pay", strconv.FormatInt(s.GradePay, 10))
	}

	mult := money.MulRound(s.BasicPay, seventhPCMultiplier)
	revised, err := FitIntoLevel(mult, level)
	if err != nil {
		return nil, err
	}

	snap := &domain.FixationSnapshot{
		Commission:        domain.SeventhPC,
		EffectiveDate:     dateutil.FormatDDMMYYYY(domain.SeventhPCStart),
		PreRevisedPay:     s.BasicPay,
		Emoluments:        mult,
		InitialRevisedPay: revised,
		Level:             level,
		Remark: fmt.Sprintf("Basic %s multiplied by 2.57 to %s and fitted at %s in level %d under %s",
			money.FormatINR(s.BasicPay), money.FormatINR(mult), money.FormatINR(revised),
			level, refdata.GOCitations["7thPC"]),
	}

	s.Commission = domain.SeventhPC
	s.Level = level
	s.BasicPay = revised
	s.PIPB = 0
	s.GradePay = 0
	s.ScaleID = ""
	s.OrdinaryScaleID = ""
	return snap, nil
}
