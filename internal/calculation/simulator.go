package calculation

import (
	"fmt"
	"time"

	"github.com/tn-payroll/payroll-engine/internal/domain"
	"github.com/tn-payroll/payroll-engine/internal/payscale"
	"github.com/tn-payroll/payroll-engine/internal/refdata"
	"github.com/tn-payroll/payroll-engine/pkg/dateutil"
	"github.com/tn-payroll/payroll-engine/pkg/money"
)

// defaultEligibilityMonths is the qualifying service before the first annual
// increment accrues, when the input does not override it.
const defaultEligibilityMonths = 6

// simulation carries one run's working set. It is created, run and discarded
// inside a single engine call; nothing in it is shared.
type simulation struct {
	input *domain.EmployeeInput
	log   Logger

	state  *SimulationState
	events []event

	periods   []domain.PayrollPeriod
	snapshots map[domain.Commission]*domain.FixationSnapshot
	revisions []domain.AppliedRevision
	counters  domain.IncrementAnalysis

	overrideNoted bool
}

func newSimulation(in *domain.EmployeeInput, log Logger) (*simulation, error) {
	st, err := seedState(in)
	if err != nil {
		return nil, err
	}
	return &simulation{
		input:     in,
		log:       log,
		state:     st,
		events:    buildTimeline(in),
		snapshots: map[domain.Commission]*domain.FixationSnapshot{},
	}, nil
}

// seedState builds the initial state from the joining-era pay fields.
func seedState(in *domain.EmployeeInput) (*SimulationState, error) {
	st := &SimulationState{
		Date:        in.DateOfJoiningService,
		Commission:  in.JoiningCommission(),
		CurrentPost: in.JoiningPost.Name(),
	}

	jp := in.JoiningPay
	switch {
	case st.Commission >= domain.SeventhPC:
		cells, ok := refdata.MatrixLevel(jp.Level)
		if !ok {
			return nil, domain.NewValidationError("joining_pay.level", "unknown pay matrix level %d", jp.Level)
		}
		st.Level = jp.Level
		if jp.BasicPay > 0 {
			fitted, err := FitIntoLevel(jp.BasicPay, jp.Level)
			if err != nil {
				return nil, err
			}
			st.BasicPay = fitted
		} else {
			st.BasicPay = cells[0]
		}

	case st.Commission == domain.SixthPC:
		entry, ok := refdata.ScaleByID(jp.ScaleID)
		if !ok || entry.Commission != domain.SixthPC {
			return nil, domain.NewValidationError("joining_pay.scale_id", "unknown 6th commission scale %q", jp.ScaleID)
		}
		band, ok := refdata.PayBands[entry.GradePay]
		if !ok {
			return nil, domain.NewMappingError("band", jp.ScaleID)
		}
		st.ScaleID = entry.ID
		st.OrdinaryScaleID = entry.ID
		st.GradePay = entry.GradePay
		st.PIPB = jp.PayInPayBand
		if st.PIPB < band.Min {
			st.PIPB = band.Min
		}
		if band.Max > 0 && st.PIPB > band.Max {
			st.PIPB = band.Max
		}
		st.BasicPay = st.PIPB + st.GradePay

	default:
		entry, ok := refdata.ScaleByID(jp.ScaleID)
		if !ok || entry.Commission != st.Commission {
			return nil, domain.NewValidationError("joining_pay.scale_id", "unknown scale %q for commission %d", jp.ScaleID, st.Commission)
		}
		sc, err := payscale.Parse(entry.Scale)
		if err != nil {
			return nil, err
		}
		st.ScaleID = entry.ID
		st.OrdinaryScaleID = entry.ID
		st.BasicPay = jp.BasicPay
		if st.BasicPay == 0 {
			st.BasicPay = sc.Start
		}
	}

	if in.DAOverride != nil {
		st.DARate = in.DAOverride.Decimal
	} else {
		st.DARate = LookupDARate(st.Commission, in.DateOfJoiningService)
	}
	st.NextIncrementDate = firstIncrementDate(in)
	return st, nil
}

// defaultIncrementMonth anchors the schedule to the quarter the employee
// joined in, when no schedule change is configured.
func defaultIncrementMonth(doj time.Time) time.Month {
	return time.Month((int(doj.Month())-1)/3*3 + 1)
}

// scheduleMonthAt returns the increment month in force on a date: the latest
// schedule change effective on or before it, else the default.
func scheduleMonthAt(in *domain.EmployeeInput, date time.Time) time.Month {
	month := defaultIncrementMonth(in.DateOfJoiningService)
	for _, ch := range in.IncrementScheduleChanges {
		if !ch.EffectiveDate.After(date) {
			month = ch.Month
		}
	}
	return month
}

// firstIncrementDate computes the opening scheduled increment: joining date
// plus the eligibility months, snapped to the schedule month (rolling into
// the next year when already past it), then postponed by the total break in
// service.
func firstIncrementDate(in *domain.EmployeeInput) time.Time {
	elig := in.IncrementEligibilityMonths
	if elig <= 0 {
		elig = defaultEligibilityMonths
	}
	d := dateutil.AddMonths(in.DateOfJoiningService, elig)
	month := scheduleMonthAt(in, d)
	year := d.Year()
	if d.Month() > month {
		year++
	}
	scheduled := dateutil.Date(year, month, 1)
	return dateutil.AddDays(scheduled, in.TotalBreakDays())
}

// advanceSchedule moves the scheduled date one year on from the grant just
// made, re-anchored to the schedule month then in force, on the 1st.
func (sim *simulation) advanceSchedule(granted time.Time) time.Time {
	next := dateutil.AddYears(granted, 1)
	return dateutil.Date(next.Year(), scheduleMonthAt(sim.input, next), 1)
}

// run executes the monthly loop from joining to the effective end.
func (sim *simulation) run() error {
	in := sim.input
	end := in.EffectiveEndDate()
	emitFrom := dateutil.FirstOfMonth(in.CalculationStart)

	cursor := in.DateOfJoiningService
	for !cursor.After(end) {
		sim.state.Date = cursor
		sim.state.incrementLikeFired = false
		sim.state.monthRemarks = nil

		for i := range sim.events {
			ev := &sim.events[i]
			if !dateutil.SameYearMonth(ev.date, cursor) {
				continue
			}
			if err := sim.applyEvent(ev); err != nil {
				return err
			}
		}

		if !sim.state.incrementLikeFired && !cursor.Before(sim.state.NextIncrementDate) {
			if err := sim.annualIncrement(cursor); err != nil {
				return err
			}
		}

		if !cursor.Before(emitFrom) {
			sim.emitPeriod(cursor)
		}

		cursor = dateutil.AddMonths(cursor, 1)
	}
	return nil
}

func (sim *simulation) applyEvent(ev *event) error {
	switch ev.kind {
	case eventDAChange:
		sim.applyDAChange(ev)
		return nil
	case eventCommissionTransition:
		return sim.applyCommissionTransition(ev)
	case eventPromotion:
		return sim.applyPromotion(ev.promotion)
	case eventSelectionGrade:
		return sim.applyGradeAward(ev.award, true)
	case eventSpecialGrade:
		return sim.applyGradeAward(ev.award, false)
	case eventAccountTest:
		sim.applyAccountTest(ev.test)
		return nil
	default:
		return fmt.Errorf("unknown event kind %d", ev.kind)
	}
}

func (sim *simulation) applyDAChange(ev *event) {
	if sim.input.DAOverride != nil {
		return
	}
	st := sim.state
	sharedPre2006 := st.Commission <= domain.FifthPC && ev.daCommission <= domain.FifthPC
	if !sharedPre2006 && ev.daCommission != st.Commission {
		return
	}
	st.DARate = ev.daRate
	st.remark(fmt.Sprintf("DA revised to %s%% w.e.f. %s", ev.daRate.String(), dateutil.FormatDDMMYYYY(ev.date)))
}

func (sim *simulation) applyCommissionTransition(ev *event) error {
	st := sim.state
	var (
		snap *domain.FixationSnapshot
		err  error
	)
	fromScale := st.ScaleID

	switch ev.targetCommission {
	case domain.FourthPC:
		snap, err = fixInto4thPC(st)
	case domain.FifthPC:
		snap, err = fixInto5thPC(st)
	case domain.SixthPC:
		snap, err = fixInto6thPC(st)
	case domain.SeventhPC:
		snap, err = fixInto7thPC(st)
	default:
		err = fmt.Errorf("unknown commission transition target %d", ev.targetCommission)
	}
	if err != nil {
		sim.log.Errorf("fixation to commission %d failed: %v", ev.targetCommission, err)
		return err
	}

	sim.snapshots[ev.targetCommission] = snap
	st.remark(snap.Remark)

	toScale := snap.ScaleID
	if ev.targetCommission == domain.SeventhPC {
		toScale = fmt.Sprintf("Level %d", snap.Level)
	}
	sim.revisions = append(sim.revisions, domain.AppliedRevision{
		Date:        dateutil.FormatDDMMYYYY(ev.date),
		Description: fmt.Sprintf("Pay revised under the %s", commissionLabel(ev.targetCommission)),
		FromScale:   fromScale,
		ToScale:     toScale,
	})

	if sim.input.DAOverride == nil {
		st.DARate = LookupDARate(st.Commission, ev.date)
	}
	// The fixation month carries the revised pay untouched; an annual
	// increment also due this month slips to the following one.
	st.incrementLikeFired = true
	sim.log.Infof("fixed into %s", commissionLabel(ev.targetCommission))
	return nil
}

func (sim *simulation) applyPromotion(p *domain.Promotion) error {
	st := sim.state

	switch {
	case st.Commission >= domain.SeventhPC:
		notional, err := IncrementInMatrix(st.BasicPay, st.Level, 1)
		if err != nil {
			return err
		}
		fitted, err := FitIntoLevel(notional, p.Level)
		if err != nil {
			return err
		}
		st.Level = p.Level
		st.BasicPay = fitted
		st.remark(fmt.Sprintf("Promoted to %s: one notional increment, pay fixed at %s in level %d",
			p.PostName, money.FormatINR(fitted), p.Level))

	case st.Commission == domain.SixthPC:
		notionalPIPB, _ := IncrementInPayBand(st.PIPB, st.GradePay, 1)
		entry, ok := refdata.ScaleByGradePay(p.GradePay)
		if !ok {
			return domain.NewMappingError("grade-pay", fmt.Sprintf("%d", p.GradePay))
		}
		band, ok := refdata.PayBands[p.GradePay]
		if !ok {
			return domain.NewMappingError("band", fmt.Sprintf("%d", p.GradePay))
		}
		if notionalPIPB < band.Min {
			notionalPIPB = band.Min
		}
		st.ScaleID = entry.ID
		st.OrdinaryScaleID = entry.ID
		st.GradePay = p.GradePay
		st.PIPB = notionalPIPB
		st.BasicPay = st.PIPB + st.GradePay
		st.remark(fmt.Sprintf("Promoted to %s: pay in pay band %s with grade pay %s",
			p.PostName, money.FormatINR(st.PIPB), money.FormatINR(st.GradePay)))

	default:
		// Under the scale commissions only the notional increment is applied;
		// the record carries no target scale for the promoted post.
		sc, err := st.scale()
		if err != nil {
			return err
		}
		st.BasicPay = sc.Increment(st.BasicPay, 1)
		st.remark(fmt.Sprintf("Promoted to %s: one notional increment to %s, scale unchanged",
			p.PostName, money.FormatINR(st.BasicPay)))
	}

	st.CurrentPost = p.PostName
	st.incrementLikeFired = true
	sim.counters.Promotion++
	return nil
}

func (sim *simulation) applyGradeAward(award *domain.GradeAward, selection bool) error {
	st := sim.state
	label := "Special Grade"
	citation := refdata.GOCitations["SpecialGrade"]
	gradeMap := refdata.SpecialGradeScale5
	counter := &sim.counters.SpecialGrade
	if selection {
		label = "Selection Grade"
		citation = refdata.GOCitations["SelectionGrade"]
		gradeMap = refdata.SelectionGradeScale5
		counter = &sim.counters.SelectionGrade
	}

	if st.Commission < domain.SixthPC {
		if st.Commission == domain.FifthPC && award.ApplyFixation {
			if newID, ok := gradeMap[st.OrdinaryScaleID]; ok {
				entry := refdata.Scales[newID]
				sc, err := payscale.Parse(entry.Scale)
				if err != nil {
					return err
				}
				old := st.BasicPay
				fromScale := st.ScaleID
				st.ScaleID = newID
				st.BasicPay = sc.FitNextHigher(old)
				st.incrementLikeFired = true
				*counter++
				st.remark(fmt.Sprintf("%s awarded: pay fixed at %s in scale %s under %s",
					label, money.FormatINR(st.BasicPay), entry.Scale, citation))
				sim.revisions = append(sim.revisions, domain.AppliedRevision{
					Date:        dateutil.FormatDDMMYYYY(award.EffectiveDate),
					Description: label + " scale",
					FromScale:   fromScale,
					ToScale:     newID,
				})
				return nil
			}
		}
		sc, err := st.scale()
		if err != nil {
			return err
		}
		st.BasicPay = sc.Increment(st.BasicPay, 1)
		st.incrementLikeFired = true
		*counter++
		st.remark(fmt.Sprintf("%s awarded: one increment to %s under %s",
			label, money.FormatINR(st.BasicPay), citation))
		return nil
	}

	steps := 1
	if award.ApplyFixation {
		steps = 2
	}
	if err := st.applyIncrementSteps(steps); err != nil {
		return err
	}
	st.incrementLikeFired = true
	*counter += steps
	st.remark(fmt.Sprintf("%s awarded: %d increment(s) to %s under %s",
		label, steps, money.FormatINR(st.BasicPay), citation))
	return nil
}

func (sim *simulation) applyAccountTest(t *domain.AccountTestEvent) {
	sim.state.AccountTestPending = true
	desc := t.Description
	if desc == "" {
		desc = "Account test"
	}
	sim.state.remark(fmt.Sprintf("%s passed on %s: one additional increment due on the next scheduled date under %s",
		desc, dateutil.FormatDDMMYYYY(t.PassDate), refdata.GOCitations["AccountTest"]))
}

// annualIncrement runs the scheduled-increment logic once the cursor has
// reached the scheduled date and no increment-like event fired this month.
func (sim *simulation) annualIncrement(cursor time.Time) error {
	st := sim.state
	n := st.IncrementsGranted + 1
	decision := EvaluateProbation(sim.input.Probation, st.NextIncrementDate, n)

	if decision.Terminated {
		st.remark(decision.Remark)
		sim.log.Warnf("probation terminated at increment %d due %s", n, dateutil.FormatDDMMYYYY(st.NextIncrementDate))
		// The pay that would be drawn keeps flowing so the operator can see
		// it; the scheduled date still moves on a year.
		st.NextIncrementDate = sim.advanceSchedule(st.NextIncrementDate)
		return nil
	}

	if !decision.Eligible {
		if !st.withheldNotedFor.Equal(st.NextIncrementDate) {
			st.remark(decision.Remark)
			st.withheldNotedFor = st.NextIncrementDate
		}
		return nil
	}

	if cursor.Before(decision.EffectiveDate) {
		if !st.withheldNotedFor.Equal(st.NextIncrementDate) {
			st.remark(fmt.Sprintf("Increment %d withheld until %s pending test clearance",
				n, dateutil.FormatDDMMYYYY(decision.EffectiveDate)))
			st.withheldNotedFor = st.NextIncrementDate
		}
		return nil
	}

	if err := st.applyIncrementSteps(1); err != nil {
		return err
	}
	st.IncrementsGranted++
	sim.counters.Regular++
	st.remark(fmt.Sprintf("Annual increment %d granted: basic pay %s", n, money.FormatINR(st.BasicPay)))

	if st.AccountTestPending {
		if err := st.applyIncrementSteps(1); err != nil {
			return err
		}
		st.AccountTestPending = false
		sim.counters.AccountTest++
		st.remark(fmt.Sprintf("Account test increment granted: basic pay %s", money.FormatINR(st.BasicPay)))
	}

	st.NextIncrementDate = sim.advanceSchedule(st.NextIncrementDate)
	return nil
}

// emitPeriod computes the month's pay slip from the post-event state.
func (sim *simulation) emitPeriod(cursor time.Time) {
	st := sim.state
	in := sim.input

	if in.DAOverride != nil && !sim.overrideNoted {
		st.remark(fmt.Sprintf("DA Override applied at %s%%", in.DAOverride.String()))
		sim.overrideNoted = true
	}

	daAmount := money.PercentOf(st.BasicPay, st.DARate)
	hra := LookupHRA(st.BasicPay, cursor, in.CityClass)
	cca := LookupCCA(st.Commission, in.CityClass)
	medical := in.Allowances.MedicalAllowance
	gross := st.BasicPay + daAmount + hra + cca + medical

	var deductions []domain.Deduction
	pensionName := in.Allowances.PensionScheme
	if pensionName == "" {
		pensionName = "CPS"
	}
	pension := money.PercentOf(st.BasicPay+daAmount, in.Allowances.PensionRate.Decimal)
	deductions = append(deductions, domain.Deduction{Name: pensionName, Amount: pension})
	if in.Allowances.ProfessionalTax > 0 {
		deductions = append(deductions, domain.Deduction{Name: "Professional Tax", Amount: in.Allowances.ProfessionalTax})
	}
	if in.Allowances.GIS > 0 {
		deductions = append(deductions, domain.Deduction{Name: "GIS", Amount: in.Allowances.GIS})
	}
	for _, adv := range in.LPCAdvances {
		if dateutil.SameYearMonth(adv.Date, cursor) && adv.Amount > 0 {
			name := adv.Description
			if name == "" {
				name = "LPC Advance"
			}
			deductions = append(deductions, domain.Deduction{Name: name, Amount: adv.Amount})
		}
	}

	var totalDeductions int64
	for _, d := range deductions {
		totalDeductions += d.Amount
	}

	period := domain.PayrollPeriod{
		Year:             cursor.Year(),
		Month:            cursor.Month(),
		MonthName:        cursor.Month().String(),
		Commission:       st.Commission,
		ScaleID:          st.ScaleID,
		Level:            st.Level,
		PayInPayBand:     st.PIPB,
		GradePay:         st.GradePay,
		BasicPay:         st.BasicPay,
		DARate:           st.DARate,
		DAAmount:         daAmount,
		HRA:              hra,
		CCA:              cca,
		MedicalAllowance: medical,
		GrossPay:         gross,
		Deductions:       deductions,
		TotalDeductions:  totalDeductions,
		NetPay:           gross - totalDeductions,
		Remarks:          st.monthRemarks,
	}
	sim.periods = append(sim.periods, period)
}

func commissionLabel(c domain.Commission) string {
	switch c {
	case domain.ThirdPC:
		return "3rd Pay Commission"
	case domain.FourthPC:
		return "4th Pay Commission"
	case domain.FifthPC:
		return "5th Pay Commission"
	case domain.SixthPC:
		return "6th Pay Commission"
	case domain.SeventhPC:
		return "7th Pay Commission"
	default:
		return fmt.Sprintf("commission %d", c)
	}
}
