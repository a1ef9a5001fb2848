package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/master/sangga/dto"
	"presensiku_backend/internals/features/master/sangga/model"
	siswaModel "presensiku_backend/internals/features/master/siswa/model"
	helper "presensiku_backend/internals/helpers"
)

type SanggaController struct {
	DB *gorm.DB
}

func NewSanggaController(db *gorm.DB) *SanggaController {
	return &SanggaController{DB: db}
}

var validate = validator.New()

/* ===================== LIST ===================== */
// GET /api/a/sangga?q=&page=&per_page=
func (ctrl *SanggaController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)
	q := strings.TrimSpace(c.Query("q"))

	tx := ctrl.DB.Model(&model.SanggaModel{})
	if q != "" {
		tx = tx.Where("LOWER(sangga_nama) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung sangga")
	}

	var rows []model.SanggaModel
	if err := tx.Order("sangga_nama ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sangga")
	}

	items := make([]dto.SanggaResponse, 0, len(rows))
	for _, row := range rows {
		var n int64
		ctrl.DB.Model(&siswaModel.SiswaModel{}).Where("siswa_sangga_id = ?", row.SanggaID).Count(&n)
		items = append(items, dto.FromModel(row, n))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", items, &p)
}

/* ===================== DETAIL ===================== */
// GET /api/a/sangga/:id
func (ctrl *SanggaController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.SanggaModel
	if err := ctrl.DB.First(&row, "sangga_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sangga tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var n int64
	ctrl.DB.Model(&siswaModel.SiswaModel{}).Where("siswa_sangga_id = ?", id).Count(&n)
	return helper.JsonOK(c, "ok", dto.FromModel(row, n))
}

/* ===================== CREATE ===================== */
// POST /api/a/sangga
func (ctrl *SanggaController) Create(c *fiber.Ctx) error {
	var req dto.CreateSanggaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row := model.SanggaModel{SanggaNama: strings.TrimSpace(req.SanggaNama)}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama sangga sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sangga")
	}

	return helper.JsonCreated(c, "Sangga berhasil dibuat", dto.FromModel(row, 0))
}

/* ===================== UPDATE ===================== */
// PUT /api/a/sangga/:id
func (ctrl *SanggaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateSanggaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	updates := map[string]any{}
	if req.SanggaNama != nil {
		updates["sangga_nama"] = strings.TrimSpace(*req.SanggaNama)
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", nil)
	}

	tx := ctrl.DB.Model(&model.SanggaModel{}).Where("sangga_id = ?", id).Updates(updates)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah sangga")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sangga tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Sangga berhasil diubah", nil)
}

/* ===================== DELETE ===================== */
// DELETE /api/a/sangga/:id
// Siswa anggota dilepas (sangga_id jadi NULL), presensi lama tidak disentuh.
func (ctrl *SanggaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&siswaModel.SiswaModel{}).
			Where("siswa_sangga_id = ?", id).
			Update("siswa_sangga_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.SanggaModel{}, "sangga_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sangga tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sangga")
	}

	return helper.JsonDeleted(c, "Sangga berhasil dihapus", nil)
}

/* ===================== UPLOAD GAMBAR ===================== */
// POST /api/a/sangga/:id/gambar (multipart field "gambar")
func (ctrl *SanggaController) UploadGambar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.SanggaModel
	if err := ctrl.DB.First(&row, "sangga_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sangga tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	fileHeader, err := c.FormFile("gambar")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File gambar tidak ditemukan")
	}

	data, meta, err := helper.ConvertImageToWebp(fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	url, err := helper.UploadImageToStorage("sangga", fileHeader.Filename, data)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan metadata gambar")
	}

	if err := ctrl.DB.Model(&model.SanggaModel{}).
		Where("sangga_id = ?", id).
		Updates(map[string]any{
			"sangga_gambar_url":  url,
			"sangga_gambar_meta": datatypes.JSON(metaJSON),
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar sangga")
	}

	return helper.JsonUpdated(c, "Gambar sangga berhasil diunggah", fiber.Map{
		"sangga_gambar_url":  url,
		"sangga_gambar_meta": meta,
	})
}
