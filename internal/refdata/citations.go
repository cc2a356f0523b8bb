package refdata

// GOCitations are the government orders quoted in fixation and grade-award
// remarks.
var GOCitations = map[string]string{
	"4thPC":          "G.O.Ms.No.660, Finance (Pay Commission) Department, dt. 16.06.1986",
	"5thPC":          "G.O.Ms.No.162, Finance (Pay Cell) Department, dt. 13.04.1998",
	"6thPC":          "G.O.Ms.No.234, Finance (Pay Cell) Department, dt. 01.06.2009",
	"7thPC":          "G.O.Ms.No.303, Finance (Pay Cell) Department, dt. 11.10.2017",
	"SelectionGrade": "G.O.Ms.No.311, Finance (Pay Cell) Department, dt. 20.10.2017",
	"SpecialGrade":   "G.O.Ms.No.311, Finance (Pay Cell) Department, dt. 20.10.2017",
	"AccountTest":    "Rule 36, Tamil Nadu State and Subordinate Service Rules",
}
