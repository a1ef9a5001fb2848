package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"presensiku_backend/internals/features/master/sangga/model"
)

/* ===================== REQUESTS ===================== */

type CreateSanggaRequest struct {
	SanggaNama string `json:"sangga_nama" validate:"required,min=2,max=100"`
}

type UpdateSanggaRequest struct {
	SanggaNama *string `json:"sangga_nama" validate:"omitempty,min=2,max=100"`
}

/* ===================== RESPONSES ===================== */

type SanggaResponse struct {
	SanggaID         uuid.UUID      `json:"sangga_id"`
	SanggaNama       string         `json:"sangga_nama"`
	SanggaGambarURL  *string        `json:"sangga_gambar_url,omitempty"`
	SanggaGambarMeta datatypes.JSON `json:"sangga_gambar_meta,omitempty"`
	JumlahSiswa      int64          `json:"jumlah_siswa"`
}

/* ===================== MAPPERS ===================== */

func FromModel(x model.SanggaModel, jumlahSiswa int64) SanggaResponse {
	return SanggaResponse{
		SanggaID:         x.SanggaID,
		SanggaNama:       x.SanggaNama,
		SanggaGambarURL:  x.SanggaGambarURL,
		SanggaGambarMeta: x.SanggaGambarMeta,
		JumlahSiswa:      jumlahSiswa,
	}
}
