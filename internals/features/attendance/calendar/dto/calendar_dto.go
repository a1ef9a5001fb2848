package dto

import (
	"presensiku_backend/internals/features/attendance/calendar/service"
)

type SelKalenderResponse struct {
	Tanggal        string `json:"tanggal"` // YYYY-MM-DD
	Hari           int    `json:"hari"`    // 0=Senin .. 6=Minggu
	IsCurrentMonth bool   `json:"is_current_month"`
	IsToday        bool   `json:"is_today"`
	IsSelectable   bool   `json:"is_selectable"`
}

type GridKalenderResponse struct {
	Bulan     int                     `json:"bulan"`
	Tahun     int                     `json:"tahun"`
	PrevBulan int                     `json:"prev_bulan"`
	PrevTahun int                     `json:"prev_tahun"`
	NextBulan int                     `json:"next_bulan"`
	NextTahun int                     `json:"next_tahun"`
	Minggu    [][]SelKalenderResponse `json:"minggu"`
}

func FromGrid(grid service.GridKalender) GridKalenderResponse {
	resp := GridKalenderResponse{
		Bulan: grid.Bulan,
		Tahun: grid.Tahun,
	}
	resp.PrevBulan, resp.PrevTahun = service.PrevMonth(grid.Bulan, grid.Tahun)
	resp.NextBulan, resp.NextTahun = service.NextMonth(grid.Bulan, grid.Tahun)

	resp.Minggu = make([][]SelKalenderResponse, 0, len(grid.Sel))
	for _, row := range grid.Sel {
		week := make([]SelKalenderResponse, 0, len(row))
		for _, sel := range row {
			week = append(week, SelKalenderResponse{
				Tanggal:        sel.Tanggal.Format("2006-01-02"),
				Hari:           sel.Hari,
				IsCurrentMonth: sel.IsCurrentMonth,
				IsToday:        sel.IsToday,
				IsSelectable:   sel.IsSelectable,
			})
		}
		resp.Minggu = append(resp.Minggu, week)
	}
	return resp
}
