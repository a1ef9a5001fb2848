// file: internals/route/details/attendance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calendarController "presensiku_backend/internals/features/attendance/calendar/controller"
	presensiController "presensiku_backend/internals/features/attendance/presence/controller"
	rekapController "presensiku_backend/internals/features/attendance/rekap/controller"
)

// AttendanceUserRoutes: kalender & rekap, read-only, cukup login.
func AttendanceUserRoutes(private fiber.Router, db *gorm.DB) {
	calendarCtrl := calendarController.NewCalendarController()
	presensiCtrl := presensiController.NewPresensiController(db)
	rekapCtrl := rekapController.NewRekapController(db)

	private.Get("/kalender", calendarCtrl.GetGrid)
	private.Get("/presensi", presensiCtrl.ListByTanggal)

	rekap := private.Group("/rekap")
	rekap.Get("/pertemuan", rekapCtrl.Pertemuan)
	rekap.Get("/peringkat", rekapCtrl.Peringkat)
	rekap.Get("/sangga/:id", rekapCtrl.Sangga)
	rekap.Get("/siswa/:id", rekapCtrl.Siswa)
}

// AttendanceAdminRoutes: submit presensi, khusus admin/pembina.
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	presensiCtrl := presensiController.NewPresensiController(db)

	admin.Post("/presensi", presensiCtrl.Submit)
}
