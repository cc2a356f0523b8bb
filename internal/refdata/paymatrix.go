package refdata

import (
	"github.com/shopspring/decimal"
)

// PayMatrix holds the 7th-commission pay matrix: each level is an ordered
// ladder of pay cells. Cells step by 3% compounded, rounded to the nearest
// hundred rupees, the construction the pay commission itself prescribes.
var PayMatrix = map[int][]int64{}

// matrixStages is the cell count per level.
const matrixStages = 40

var levelStarts = map[int]int64{
	1:  15700,
	2:  15900,
	3:  16600,
	4:  18000,
	5:  18200,
	6:  18500,
	7:  20600,
	8:  35400,
	9:  35900,
	10: 36900,
	11: 37700,
	12: 54900,
	13: 57200,
	14: 61300,
}

func init() {
	growth := decimal.NewFromFloat(1.03)
	hundred := decimal.NewFromInt(100)
	for level, start := range levelStarts {
		cells := make([]int64, matrixStages)
		cells[0] = start
		for i := 1; i < matrixStages; i++ {
			next := decimal.NewFromInt(cells[i-1]).Mul(growth).Div(hundred).Round(0).Mul(hundred)
			cells[i] = next.IntPart()
		}
		PayMatrix[level] = cells
	}
}

// MatrixLevel returns the cell ladder for a level, reporting whether the
// level exists.
func MatrixLevel(level int) ([]int64, bool) {
	cells, ok := PayMatrix[level]
	return cells, ok
}
