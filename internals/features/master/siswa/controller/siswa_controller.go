package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sanggaModel "presensiku_backend/internals/features/master/sangga/model"
	"presensiku_backend/internals/features/master/siswa/dto"
	"presensiku_backend/internals/features/master/siswa/model"
	helper "presensiku_backend/internals/helpers"
)

type SiswaController struct {
	DB *gorm.DB
}

func NewSiswaController(db *gorm.DB) *SiswaController {
	return &SiswaController{DB: db}
}

var validate = validator.New()

/* ===================== LIST ===================== */
// GET /api/a/siswa?q=&sangga_id=&page=&per_page=
func (ctrl *SiswaController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)
	q := strings.TrimSpace(c.Query("q"))
	sanggaID := strings.TrimSpace(c.Query("sangga_id"))

	tx := ctrl.DB.Model(&model.SiswaModel{})
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(siswa_nama) LIKE ? OR LOWER(siswa_kelas) LIKE ?", like, like)
	}
	if sanggaID != "" {
		id, err := uuid.Parse(sanggaID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "sangga_id tidak valid")
		}
		tx = tx.Where("siswa_sangga_id = ?", id)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}

	var rows []model.SiswaModel
	if err := tx.Order("siswa_nama ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	sanggaNames := ctrl.lookupSanggaNames(rows)
	items := make([]dto.SiswaResponse, 0, len(rows))
	for _, row := range rows {
		nama := ""
		if row.SiswaSanggaID != nil {
			nama = sanggaNames[*row.SiswaSanggaID]
		}
		items = append(items, dto.FromModel(row, nama))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", items, &p)
}

/* ===================== DETAIL ===================== */
// GET /api/a/siswa/:id
func (ctrl *SiswaController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.SiswaModel
	if err := ctrl.DB.First(&row, "siswa_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	nama := ""
	if row.SiswaSanggaID != nil {
		var sg sanggaModel.SanggaModel
		if err := ctrl.DB.First(&sg, "sangga_id = ?", *row.SiswaSanggaID).Error; err == nil {
			nama = sg.SanggaNama
		}
	}
	return helper.JsonOK(c, "ok", dto.FromModel(row, nama))
}

/* ===================== CREATE ===================== */
// POST /api/a/siswa
func (ctrl *SiswaController) Create(c *fiber.Ctx) error {
	var req dto.CreateSiswaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if req.SiswaSanggaID != nil {
		if err := ctrl.ensureSanggaExists(*req.SiswaSanggaID); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	row := model.SiswaModel{
		SiswaNama:     strings.TrimSpace(req.SiswaNama),
		SiswaKelas:    strings.TrimSpace(req.SiswaKelas),
		SiswaJurusan:  strings.TrimSpace(req.SiswaJurusan),
		SiswaSanggaID: req.SiswaSanggaID,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat siswa")
	}

	return helper.JsonCreated(c, "Siswa berhasil dibuat", dto.FromModel(row, ""))
}

/* ===================== UPDATE ===================== */
// PUT /api/a/siswa/:id
func (ctrl *SiswaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateSiswaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	updates := map[string]any{}
	if req.SiswaNama != nil {
		updates["siswa_nama"] = strings.TrimSpace(*req.SiswaNama)
	}
	if req.SiswaKelas != nil {
		updates["siswa_kelas"] = strings.TrimSpace(*req.SiswaKelas)
	}
	if req.SiswaJurusan != nil {
		updates["siswa_jurusan"] = strings.TrimSpace(*req.SiswaJurusan)
	}
	if req.LepasSangga {
		updates["siswa_sangga_id"] = nil
	} else if req.SiswaSanggaID != nil {
		if err := ctrl.ensureSanggaExists(*req.SiswaSanggaID); err != nil {
			return helper.FromFiberError(c, err)
		}
		updates["siswa_sangga_id"] = *req.SiswaSanggaID
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", nil)
	}

	tx := ctrl.DB.Model(&model.SiswaModel{}).Where("siswa_id = ?", id).Updates(updates)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah siswa")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Siswa berhasil diubah", nil)
}

/* ===================== DELETE ===================== */
// DELETE /api/a/siswa/:id. Presensi lama tidak dihapus (riwayat tetap).
func (ctrl *SiswaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.SiswaModel{}, "siswa_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus siswa")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Siswa berhasil dihapus", nil)
}

func (ctrl *SiswaController) ensureSanggaExists(id uuid.UUID) error {
	var sg sanggaModel.SanggaModel
	if err := ctrl.DB.First(&sg, "sangga_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Sangga tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return nil
}

func (ctrl *SiswaController) lookupSanggaNames(rows []model.SiswaModel) map[uuid.UUID]string {
	ids := make([]uuid.UUID, 0, len(rows))
	seen := map[uuid.UUID]struct{}{}
	for _, row := range rows {
		if row.SiswaSanggaID == nil {
			continue
		}
		if _, ok := seen[*row.SiswaSanggaID]; ok {
			continue
		}
		seen[*row.SiswaSanggaID] = struct{}{}
		ids = append(ids, *row.SiswaSanggaID)
	}
	out := map[uuid.UUID]string{}
	if len(ids) == 0 {
		return out
	}
	var sanggas []sanggaModel.SanggaModel
	if err := ctrl.DB.Where("sangga_id IN ?", ids).Find(&sanggas).Error; err != nil {
		return out
	}
	for _, sg := range sanggas {
		out[sg.SanggaID] = sg.SanggaNama
	}
	return out
}
