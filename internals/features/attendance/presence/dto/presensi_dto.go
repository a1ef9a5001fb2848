package dto

import (
	"github.com/google/uuid"

	"presensiku_backend/internals/features/attendance/presence/model"
)

/* ===================== REQUESTS ===================== */

type EntriPresensiRequest struct {
	SiswaID    uuid.UUID `json:"siswa_id" validate:"required"`
	Status     string    `json:"status"` // hadir|izin|alfa|"" (draft)
	Keterangan string    `json:"keterangan" validate:"omitempty,max=500"`
}

type SubmitPresensiRequest struct {
	Tanggal  string                 `json:"tanggal" validate:"required,datetime=2006-01-02"`
	SanggaID uuid.UUID              `json:"sangga_id" validate:"required"`
	Entries  []EntriPresensiRequest `json:"entries" validate:"required,min=1,dive"`
}

/* ===================== RESPONSES ===================== */

type PresensiResponse struct {
	PresensiID uuid.UUID `json:"presensi_id"`
	Tanggal    string    `json:"tanggal"`
	SiswaID    uuid.UUID `json:"siswa_id"`
	SanggaID   uuid.UUID `json:"sangga_id"`
	Status     string    `json:"status"`
	Keterangan string    `json:"keterangan,omitempty"`
}

type SubmitPresensiResponse struct {
	Tanggal       string `json:"tanggal"`
	SanggaID      string `json:"sangga_id"`
	Tersimpan     int    `json:"tersimpan"`
	BelumDiisi    int    `json:"belum_diisi"`
	TotalAnggota  int    `json:"total_anggota"`
}

/* ===================== MAPPERS ===================== */

func FromModel(x model.PresensiModel) PresensiResponse {
	ket := ""
	if x.PresensiKeterangan != nil {
		ket = *x.PresensiKeterangan
	}
	return PresensiResponse{
		PresensiID: x.PresensiID,
		Tanggal:    x.PresensiTanggal.Format("2006-01-02"),
		SiswaID:    x.PresensiSiswaID,
		SanggaID:   x.PresensiSanggaID,
		Status:     string(x.PresensiStatus),
		Keterangan: ket,
	}
}
