package service

import (
	"testing"
	"time"
)

func fixedNow(y int, m time.Month, d int) func() time.Time {
	return func() time.Time {
		return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
	}
}

func TestBuildMonthGridShape(t *testing.T) {
	nowFunc = fixedNow(2025, time.March, 10)
	defer func() { nowFunc = time.Now }()

	grid := BuildMonthGrid(3, 2025, time.Time{})

	if len(grid.Sel) != GridRows {
		t.Fatalf("rows = %d, want %d", len(grid.Sel), GridRows)
	}
	cells := 0
	for _, row := range grid.Sel {
		if len(row) != GridCols {
			t.Fatalf("cols = %d, want %d", len(row), GridCols)
		}
		cells += len(row)
	}
	if cells != GridCells {
		t.Fatalf("cells = %d, want %d", cells, GridCells)
	}

	// 1 Maret 2025 jatuh pada Sabtu → 5 hari Februari mendahului.
	first := grid.Sel[0][0]
	if got := first.Tanggal.Format("2006-01-02"); got != "2025-02-24" {
		t.Errorf("first cell = %s, want 2025-02-24", got)
	}
	if first.IsCurrentMonth {
		t.Errorf("leading cell should not be current month")
	}
	if first.Hari != 0 {
		t.Errorf("first cell weekday = %d, want 0 (Senin)", first.Hari)
	}
}

func TestBuildMonthGridSelectability(t *testing.T) {
	nowFunc = fixedNow(2025, time.March, 10)
	defer func() { nowFunc = time.Now }()

	grid := BuildMonthGrid(3, 2025, time.Time{})

	var todayCount, selectable int
	for _, row := range grid.Sel {
		for _, sel := range row {
			tgl := sel.Tanggal.Format("2006-01-02")
			if sel.IsToday {
				todayCount++
				if tgl != "2025-03-10" {
					t.Errorf("IsToday on %s", tgl)
				}
			}
			if sel.IsSelectable {
				selectable++
				if !sel.IsCurrentMonth {
					t.Errorf("selectable cell %s outside current month", tgl)
				}
				if tgl > "2025-03-10" {
					t.Errorf("selectable cell %s after today", tgl)
				}
			}
		}
	}
	if todayCount != 1 {
		t.Errorf("todayCount = %d, want 1", todayCount)
	}
	// 1..10 Maret selectable
	if selectable != 10 {
		t.Errorf("selectable = %d, want 10", selectable)
	}
}

func TestBuildMonthGridCutoffOverride(t *testing.T) {
	nowFunc = fixedNow(2025, time.March, 10)
	defer func() { nowFunc = time.Now }()

	// batas mundur: impor data historis hanya boleh sampai 5 Maret
	batas := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	grid := BuildMonthGrid(3, 2025, batas)

	selectable := 0
	for _, row := range grid.Sel {
		for _, sel := range row {
			if sel.IsSelectable {
				selectable++
			}
		}
	}
	if selectable != 5 {
		t.Errorf("selectable = %d, want 5", selectable)
	}
}

func TestMonthNavigationRollsYear(t *testing.T) {
	tests := []struct {
		name                 string
		bulan, tahun         int
		next                 bool
		wantBulan, wantTahun int
	}{
		{name: "des maju", bulan: 12, tahun: 2025, next: true, wantBulan: 1, wantTahun: 2026},
		{name: "jan mundur", bulan: 1, tahun: 2025, next: false, wantBulan: 12, wantTahun: 2024},
		{name: "tengah maju", bulan: 6, tahun: 2025, next: true, wantBulan: 7, wantTahun: 2025},
		{name: "tengah mundur", bulan: 6, tahun: 2025, next: false, wantBulan: 5, wantTahun: 2025},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b, y int
			if tt.next {
				b, y = NextMonth(tt.bulan, tt.tahun)
			} else {
				b, y = PrevMonth(tt.bulan, tt.tahun)
			}
			if b != tt.wantBulan || y != tt.wantTahun {
				t.Errorf("got (%d,%d), want (%d,%d)", b, y, tt.wantBulan, tt.wantTahun)
			}
		})
	}
}

func TestBuildMonthGridFebruaryLeap(t *testing.T) {
	nowFunc = fixedNow(2024, time.February, 29)
	defer func() { nowFunc = time.Now }()

	grid := BuildMonthGrid(2, 2024, time.Time{})

	inMonth := 0
	for _, row := range grid.Sel {
		for _, sel := range row {
			if sel.IsCurrentMonth {
				inMonth++
			}
		}
	}
	if inMonth != 29 {
		t.Errorf("inMonth = %d, want 29", inMonth)
	}
}
