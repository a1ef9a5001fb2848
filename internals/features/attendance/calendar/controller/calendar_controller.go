package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"presensiku_backend/internals/features/attendance/calendar/dto"
	"presensiku_backend/internals/features/attendance/calendar/service"
	helper "presensiku_backend/internals/helpers"
)

type CalendarController struct{}

func NewCalendarController() *CalendarController {
	return &CalendarController{}
}

// GET /api/u/kalender?bulan=&tahun=[&batas=YYYY-MM-DD]
// Tanpa bulan/tahun: bulan berjalan.
func (ctrl *CalendarController) GetGrid(c *fiber.Ctx) error {
	now := time.Now()

	bulan := int(now.Month())
	if v := strings.TrimSpace(c.Query("bulan")); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			return helper.JsonValidationError(c, map[string][]string{
				"bulan": {"bulan harus angka 1-12"},
			})
		}
		bulan = parsed
	}

	tahun := now.Year()
	if v := strings.TrimSpace(c.Query("tahun")); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 2000 || parsed > 2100 {
			return helper.JsonValidationError(c, map[string][]string{
				"tahun": {"tahun harus angka 2000-2100"},
			})
		}
		tahun = parsed
	}

	var batas time.Time
	if v := strings.TrimSpace(c.Query("batas")); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"batas": {"batas harus berformat YYYY-MM-DD"},
			})
		}
		batas = parsed
	}

	grid := service.BuildMonthGrid(bulan, tahun, batas)
	return helper.JsonOK(c, "ok", dto.FromGrid(grid))
}
