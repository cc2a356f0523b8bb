package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/tn-payroll/payroll-engine/internal/domain"
)

// Parser loads and validates employee case files. YAML and JSON are both
// accepted; JSON is a YAML subset so one decoder serves.
type Parser struct {
	validate *validator.Validate
}

// NewParser creates a parser with the struct-tag validator ready.
func NewParser() *Parser {
	return &Parser{validate: validator.New()}
}

// LoadFromFile loads a case file, applies defaults, and validates it. An
// input without a case id is assigned a fresh one so downstream logs and
// reports can be correlated.
func (p *Parser) LoadFromFile(filename string) (*domain.EmployeeInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return p.Load(data)
}

// Load parses and validates case data from memory.
func (p *Parser) Load(data []byte) (*domain.EmployeeInput, error) {
	var in domain.EmployeeInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse case file: %w", err)
	}

	p.applyDefaults(&in)

	if err := p.Validate(&in); err != nil {
		return nil, fmt.Errorf("case validation failed: %w", err)
	}
	return &in, nil
}

func (p *Parser) applyDefaults(in *domain.EmployeeInput) {
	if in.CaseID == uuid.Nil {
		in.CaseID = uuid.New()
	}
	if in.RetirementAge == 0 {
		in.RetirementAge = 58
	}
	if in.Probation.Type == "" {
		in.Probation.Type = domain.ProbationTwoYears
	}
	if in.Probation.StartDate.IsZero() {
		in.Probation.StartDate = in.DateOfJoiningService
	}
}

// Validate runs the struct-tag checks, then the structural rules the tags
// cannot express.
func (p *Parser) Validate(in *domain.EmployeeInput) error {
	if err := p.validate.Struct(in); err != nil {
		return err
	}

	if !in.DateOfBirth.IsZero() && in.DateOfBirth.After(in.DateOfJoiningService) {
		return domain.NewValidationError("date_of_birth", "date of birth is after the date of joining")
	}
	if in.CalculationEnd.Before(in.CalculationStart) {
		return domain.NewValidationError("calculation_end", "calculation end precedes calculation start")
	}
	for i, b := range in.ServiceBreaks {
		if !b.End.After(b.Start) {
			return domain.NewValidationError(fmt.Sprintf("service_breaks[%d]", i), "break end must follow break start")
		}
	}
	for i, pr := range in.Promotions {
		if pr.Date.IsZero() {
			return domain.NewValidationError(fmt.Sprintf("promotions[%d].date", i), "promotion date is required")
		}
		if pr.PostName == "" {
			return domain.NewValidationError(fmt.Sprintf("promotions[%d].post_name", i), "promotion post name is required")
		}
	}
	if in.Probation.TestRequired && in.Probation.TestStatus == domain.TestPassed && in.Probation.TestPassDate == nil {
		return domain.NewValidationError("probation.test_pass_date", "pass date is required when the test status is passed")
	}
	return nil
}
