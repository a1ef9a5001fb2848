package service

import (
	"time"
)

// Grid kalender selalu 6 baris x 7 kolom (42 sel), minggu mulai Senin.
const (
	GridRows  = 6
	GridCols  = 7
	GridCells = GridRows * GridCols
)

// dipisah supaya bisa di-stub di test
var nowFunc = time.Now

type SelKalender struct {
	Tanggal        time.Time
	Hari           int // 0=Senin .. 6=Minggu
	IsCurrentMonth bool
	IsToday        bool
	IsSelectable   bool
}

type GridKalender struct {
	Bulan int
	Tahun int
	Sel   [][]SelKalender // GridRows baris, masing-masing GridCols sel
}

// BuildMonthGrid membangun grid bulan target plus hari-hari bulan tetangga
// untuk melengkapi minggu penuh. Sel di luar bulan target, atau setelah
// batas, tetap dirender tapi tidak selectable.
//
// batas zero value berarti "hari ini".
func BuildMonthGrid(bulan, tahun int, batas time.Time) GridKalender {
	today := dateOnly(nowFunc())
	if batas.IsZero() {
		batas = today
	} else {
		batas = dateOnly(batas)
	}

	first := time.Date(tahun, time.Month(bulan), 1, 0, 0, 0, 0, time.UTC)
	lead := mondayIndex(first.Weekday())
	start := first.AddDate(0, 0, -lead)

	grid := GridKalender{Bulan: bulan, Tahun: tahun}
	grid.Sel = make([][]SelKalender, GridRows)
	for row := 0; row < GridRows; row++ {
		grid.Sel[row] = make([]SelKalender, GridCols)
		for col := 0; col < GridCols; col++ {
			tgl := start.AddDate(0, 0, row*GridCols+col)
			inMonth := tgl.Month() == time.Month(bulan) && tgl.Year() == tahun
			grid.Sel[row][col] = SelKalender{
				Tanggal:        tgl,
				Hari:           mondayIndex(tgl.Weekday()),
				IsCurrentMonth: inMonth,
				IsToday:        tgl.Equal(today),
				IsSelectable:   inMonth && !tgl.After(batas),
			}
		}
	}
	return grid
}

// PrevMonth menggulung tahun di batas Januari.
func PrevMonth(bulan, tahun int) (int, int) {
	if bulan == 1 {
		return 12, tahun - 1
	}
	return bulan - 1, tahun
}

// NextMonth menggulung tahun di batas Desember.
func NextMonth(bulan, tahun int) (int, int) {
	if bulan == 12 {
		return 1, tahun + 1
	}
	return bulan + 1, tahun
}

// mondayIndex: Senin=0 .. Minggu=6
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
