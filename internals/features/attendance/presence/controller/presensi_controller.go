package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/attendance/presence/dto"
	"presensiku_backend/internals/features/attendance/presence/model"
	"presensiku_backend/internals/features/attendance/presence/service"
	helper "presensiku_backend/internals/helpers"
)

type PresensiController struct {
	Service *service.PresensiService
}

func NewPresensiController(db *gorm.DB) *PresensiController {
	return &PresensiController{Service: service.NewPresensiService(db)}
}

var validate = validator.New()

/* ===================== SUBMIT ===================== */
// POST /api/a/presensi
// Satu payload roster penuh untuk (tanggal, sangga); replace penuh,
// last-write-wins antar pengisi.
func (ctrl *PresensiController) Submit(c *fiber.Ctx) error {
	var req dto.SubmitPresensiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"tanggal": {"tanggal harus berformat YYYY-MM-DD"},
		})
	}

	// aturan kalender: tanggal setelah hari ini belum boleh diisi
	today := service.NormalizeTanggal(time.Now())
	if service.NormalizeTanggal(tanggal).After(today) {
		return helper.JsonValidationError(c, map[string][]string{
			"tanggal": {"tanggal belum boleh diisi (melewati hari ini)"},
		})
	}

	entries := make([]service.EntriPresensi, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, service.EntriPresensi{
			SiswaID:    e.SiswaID,
			Status:     model.StatusPresensi(strings.TrimSpace(e.Status)),
			Keterangan: e.Keterangan,
		})
	}

	result, err := ctrl.Service.SubmitBatch(tanggal, req.SanggaID, entries)
	if err != nil {
		var vErr *service.ValidationError
		var rErr *service.RosterMismatchError
		switch {
		case errors.As(err, &vErr):
			return helper.JsonValidationError(c, vErr.Fields)
		case errors.As(err, &rErr):
			ids := make([]string, 0, len(rErr.SiswaIDs))
			for _, id := range rErr.SiswaIDs {
				ids = append(ids, id.String())
			}
			return helper.JsonErrorWithCode(c, fiber.StatusUnprocessableEntity,
				"ROSTER_MISMATCH", "Batch ditolak: ada siswa di luar roster sangga",
				map[string][]string{"siswa_ids": ids})
		case errors.Is(err, service.ErrSanggaNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Sangga tidak ditemukan")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan presensi")
		}
	}

	return helper.JsonOK(c, "Presensi berhasil disimpan", dto.SubmitPresensiResponse{
		Tanggal:      req.Tanggal,
		SanggaID:     req.SanggaID.String(),
		Tersimpan:    result.Tersimpan,
		BelumDiisi:   result.BelumDiisi,
		TotalAnggota: result.TotalAnggota,
	})
}

/* ===================== LIST ===================== */
// GET /api/u/presensi?tanggal=YYYY-MM-DD[&sangga_id=]
func (ctrl *PresensiController) ListByTanggal(c *fiber.Ctx) error {
	tanggal, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("tanggal")))
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"tanggal": {"tanggal harus berformat YYYY-MM-DD"},
		})
	}

	var sanggaID *uuid.UUID
	if v := strings.TrimSpace(c.Query("sangga_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "sangga_id tidak valid")
		}
		sanggaID = &id
	}

	rows, err := ctrl.Service.ListByTanggal(tanggal, sanggaID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil presensi")
	}

	items := make([]dto.PresensiResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.FromModel(row))
	}
	return helper.JsonOK(c, "ok", items)
}
