package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/attendance/rekap/service"
	helper "presensiku_backend/internals/helpers"
)

type RekapController struct {
	DB      *gorm.DB
	Service *service.RekapService
}

func NewRekapController(db *gorm.DB) *RekapController {
	return &RekapController{
		DB:      db,
		Service: service.NewRekapService(db),
	}
}

// parseBulanTahun membaca query bulan & tahun, default bulan berjalan.
func parseBulanTahun(c *fiber.Ctx) (int, int, map[string][]string) {
	now := time.Now().UTC()
	bulan := int(now.Month())
	tahun := now.Year()
	fieldErrs := map[string][]string{}

	if raw := c.Query("bulan"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 12 {
			fieldErrs["bulan"] = append(fieldErrs["bulan"], "bulan harus 1-12")
		} else {
			bulan = v
		}
	}
	if raw := c.Query("tahun"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 2000 || v > 2100 {
			fieldErrs["tahun"] = append(fieldErrs["tahun"], "tahun harus 2000-2100")
		} else {
			tahun = v
		}
	}
	if len(fieldErrs) == 0 {
		fieldErrs = nil
	}
	return bulan, tahun, fieldErrs
}

// GET /api/u/rekap/pertemuan?tanggal=YYYY-MM-DD
func (ctl *RekapController) Pertemuan(c *fiber.Ctx) error {
	tanggal := time.Now().UTC()
	if raw := c.Query("tanggal"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"tanggal": {"format tanggal harus YYYY-MM-DD"},
			})
		}
		tanggal = t
	}

	resp, err := ctl.Service.RekapPertemuan(tanggal)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung rekap pertemuan")
	}
	return helper.JsonOK(c, "Rekap pertemuan berhasil diambil", resp)
}

// GET /api/u/rekap/sangga/:id?bulan=&tahun=
func (ctl *RekapController) Sangga(c *fiber.Ctx) error {
	sanggaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sangga tidak valid")
	}
	bulan, tahun, fieldErrs := parseBulanTahun(c)
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	resp, err := ctl.Service.RekapSangga(sanggaID, bulan, tahun)
	if err != nil {
		if errors.Is(err, service.ErrSanggaNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sangga tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung rekap sangga")
	}
	return helper.JsonOK(c, "Rekap sangga berhasil diambil", resp)
}

// GET /api/u/rekap/siswa/:id?bulan=&tahun=
func (ctl *RekapController) Siswa(c *fiber.Ctx) error {
	siswaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}
	bulan, tahun, fieldErrs := parseBulanTahun(c)
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	resp, err := ctl.Service.RekapSiswa(siswaID, bulan, tahun)
	if err != nil {
		if errors.Is(err, service.ErrSiswaNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung rekap siswa")
	}
	return helper.JsonOK(c, "Rekap siswa berhasil diambil", resp)
}

// GET /api/u/rekap/peringkat?bulan=&tahun=&dimensi=sangga|siswa
func (ctl *RekapController) Peringkat(c *fiber.Ctx) error {
	bulan, tahun, fieldErrs := parseBulanTahun(c)
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	dimensi := c.Query("dimensi", "sangga")
	switch dimensi {
	case "sangga":
		resp, err := ctl.Service.PeringkatSangga(bulan, tahun)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung peringkat")
		}
		return helper.JsonOK(c, "Peringkat sangga berhasil diambil", resp)
	case "siswa":
		resp, err := ctl.Service.PeringkatSiswa(bulan, tahun)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung peringkat")
		}
		return helper.JsonOK(c, "Peringkat siswa berhasil diambil", resp)
	default:
		return helper.JsonValidationError(c, map[string][]string{
			"dimensi": {"dimensi harus sangga atau siswa"},
		})
	}
}
