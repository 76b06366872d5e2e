package csvvalue_test

import (
	"fmt"
	"time"

	"github.com/shapestone/shape-csvvalue/pkg/csvvalue"
	"github.com/shapestone/shape-csvvalue/pkg/culture"
)

func ExampleValue_ResetToOriginal() {
	v := csvvalue.Create("123", 123)
	edited := v.WithNewValue(456)
	reset := edited.ResetToOriginal()

	fmt.Println(edited, edited.IsModified())
	fmt.Println(reset, reset.IsModified())
	// Output:
	// 456 true
	// 123 false
}

func ExampleWalkAll() {
	cells := []csvvalue.Cell{
		csvvalue.Create("10", 10).WithNewValue(11),
		csvvalue.Create("2024-01-02", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
		csvvalue.CreateNullable[float64](nil, nil),
	}

	stats := csvvalue.NewStatisticsVisitor()
	csvvalue.WalkAll(cells, stats)
	fmt.Println(stats.Total(), stats.Modified(), stats.Nulls())

	export := csvvalue.NewExportVisitor(culture.MustLookup("en-US"), true)
	fmt.Printf("%q\n", csvvalue.ApplyAll[string](cells, export))
	// Output:
	// 3 1 1
	// ["10" "2024-01-02" ""]
}
