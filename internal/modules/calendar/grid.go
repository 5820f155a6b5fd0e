package calendar

import "time"

// GridCell is one cell of the 6x7 month view. Cells belonging to the
// previous or next month pad the grid and are never marked occupied.
type GridCell struct {
	Date      string             `json:"date"`
	Day       int                `json:"day"`
	InMonth   bool               `json:"in_month"`
	Occupancy map[int64]DayEntry `json:"occupancy,omitempty"`
}

const gridCells = 42 // six full weeks

// BuildMonthGrid lays out the visible month as a 42-cell grid starting
// on Sunday, with leading and trailing days from the adjacent months.
// Occupancy entries are attached only to in-month cells.
func BuildMonthGrid(index OccupancyIndex, year int, month time.Month) []GridCell {
	first, last := MonthWindow(year, month)

	cells := make([]GridCell, 0, gridCells)

	// leading days of the previous month
	for i := int(first.Weekday()); i > 0; i-- {
		d := first.AddDate(0, 0, -i)
		cells = append(cells, GridCell{Date: d.Format("2006-01-02"), Day: d.Day()})
	}

	// days of the visible month
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		cell := GridCell{Date: d.Format("2006-01-02"), Day: d.Day(), InMonth: true}
		for propertyID := range index {
			if entry, ok := index.OccupancyOf(propertyID, d.Day()); ok {
				if cell.Occupancy == nil {
					cell.Occupancy = make(map[int64]DayEntry)
				}
				cell.Occupancy[propertyID] = entry
			}
		}
		cells = append(cells, cell)
	}

	// trailing days of the next month
	for i := 1; len(cells) < gridCells; i++ {
		d := last.AddDate(0, 0, i)
		cells = append(cells, GridCell{Date: d.Format("2006-01-02"), Day: d.Day()})
	}

	return cells
}
