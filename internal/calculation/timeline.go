package calculation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tn-payroll/payroll-engine/internal/domain"
	"github.com/tn-payroll/payroll-engine/internal/refdata"
)

type eventKind int

const (
	eventDAChange eventKind = iota
	eventCommissionTransition
	eventPromotion
	eventSelectionGrade
	eventSpecialGrade
	eventAccountTest
)

// Event priorities within a month. A DA sanction and a fixation landing in
// the same month must resolve deterministically; everything else follows.
const (
	priorityDA         = 1
	priorityCommission = 2
	priorityOther      = 3
)

type event struct {
	date     time.Time
	priority int
	kind     eventKind

	// DA change
	daCommission domain.Commission
	daRate       decimal.Decimal

	// commission transition target
	targetCommission domain.Commission

	promotion *domain.Promotion
	award     *domain.GradeAward
	test      *domain.AccountTestEvent
}

// buildTimeline assembles every dated event the simulation can encounter
// between joining and the effective end, sorted by date then priority. The
// sort is stable, so events sharing date and priority keep input order.
func buildTimeline(in *domain.EmployeeInput) []event {
	start := in.DateOfJoiningService
	end := in.EffectiveEndDate()

	var events []event
	add := func(ev event) {
		if ev.date.Before(start) || ev.date.After(end) {
			return
		}
		events = append(events, ev)
	}

	for _, d := range refdata.DARates {
		add(event{date: d.EffectiveDate, priority: priorityDA, kind: eventDAChange,
			daCommission: d.Commission, daRate: d.Rate})
	}

	transitions := []struct {
		date   time.Time
		target domain.Commission
	}{
		{domain.FourthPCStart, domain.FourthPC},
		{domain.FifthPCStart, domain.FifthPC},
		{domain.SixthPCStart, domain.SixthPC},
		{domain.SeventhPCStart, domain.SeventhPC},
	}
	for _, tr := range transitions {
		if tr.target <= in.JoiningCommission() {
			continue
		}
		add(event{date: tr.date, priority: priorityCommission, kind: eventCommissionTransition,
			targetCommission: tr.target})
	}

	for i := range in.Promotions {
		p := &in.Promotions[i]
		add(event{date: p.Date, priority: priorityOther, kind: eventPromotion, promotion: p})
	}
	if in.SelectionGrade != nil {
		add(event{date: in.SelectionGrade.EffectiveDate, priority: priorityOther,
			kind: eventSelectionGrade, award: in.SelectionGrade})
	}
	if in.SpecialGrade != nil {
		add(event{date: in.SpecialGrade.EffectiveDate, priority: priorityOther,
			kind: eventSpecialGrade, award: in.SpecialGrade})
	}
	for i := range in.AccountTests {
		t := &in.AccountTests[i]
		add(event{date: t.PassDate, priority: priorityOther, kind: eventAccountTest, test: t})
	}

	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].date.Equal(events[j].date) {
			return events[i].date.Before(events[j].date)
		}
		return events[i].priority < events[j].priority
	})
	return events
}
