package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/tn-payroll/payroll-engine/internal/domain"
)

// CSVFormatter exports one row per monthly period.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.PayrollResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Year", "Month", "Commission", "ScaleID", "Level", "PayInPayBand", "GradePay",
		"BasicPay", "DARate", "DAAmount", "HRA", "CCA", "MedicalAllowance",
		"GrossPay", "TotalDeductions", "NetPay", "Remarks",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, year := range result.YearlyCalculations {
		for _, p := range year.Periods {
			row := []string{
				strconv.Itoa(p.Year),
				p.MonthName,
				strconv.Itoa(int(p.Commission)),
				p.ScaleID,
				strconv.Itoa(p.Level),
				strconv.FormatInt(p.PayInPayBand, 10),
				strconv.FormatInt(p.GradePay, 10),
				strconv.FormatInt(p.BasicPay, 10),
				p.DARate.String(),
				strconv.FormatInt(p.DAAmount, 10),
				strconv.FormatInt(p.HRA, 10),
				strconv.FormatInt(p.CCA, 10),
				strconv.FormatInt(p.MedicalAllowance, 10),
				strconv.FormatInt(p.GrossPay, 10),
				strconv.FormatInt(p.TotalDeductions, 10),
				strconv.FormatInt(p.NetPay, 10),
				strings.Join(p.Remarks, "; "),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
