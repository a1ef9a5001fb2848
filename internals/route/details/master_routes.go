// file: internals/route/details/master_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sanggaController "presensiku_backend/internals/features/master/sangga/controller"
	siswaController "presensiku_backend/internals/features/master/siswa/controller"
)

// MasterRoutes mendaftarkan CRUD data master di bawah group admin.
func MasterRoutes(admin fiber.Router, db *gorm.DB) {
	sanggaCtrl := sanggaController.NewSanggaController(db)
	siswaCtrl := siswaController.NewSiswaController(db)

	sangga := admin.Group("/sangga")
	sangga.Get("/", sanggaCtrl.List)
	sangga.Get("/:id", sanggaCtrl.GetByID)
	sangga.Post("/", sanggaCtrl.Create)
	sangga.Put("/:id", sanggaCtrl.Update)
	sangga.Delete("/:id", sanggaCtrl.Delete)
	sangga.Post("/:id/gambar", sanggaCtrl.UploadGambar)

	siswa := admin.Group("/siswa")
	siswa.Get("/", siswaCtrl.List)
	siswa.Get("/:id", siswaCtrl.GetByID)
	siswa.Post("/", siswaCtrl.Create)
	siswa.Put("/:id", siswaCtrl.Update)
	siswa.Delete("/:id", siswaCtrl.Delete)
}
