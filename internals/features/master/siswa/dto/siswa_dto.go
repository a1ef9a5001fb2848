package dto

import (
	"github.com/google/uuid"

	"presensiku_backend/internals/features/master/siswa/model"
)

/* ===================== REQUESTS ===================== */

type CreateSiswaRequest struct {
	SiswaNama     string     `json:"siswa_nama" validate:"required,min=2,max=100"`
	SiswaKelas    string     `json:"siswa_kelas" validate:"omitempty,max=20"`
	SiswaJurusan  string     `json:"siswa_jurusan" validate:"omitempty,max=50"`
	SiswaSanggaID *uuid.UUID `json:"siswa_sangga_id" validate:"omitempty"`
}

type UpdateSiswaRequest struct {
	SiswaNama    *string `json:"siswa_nama" validate:"omitempty,min=2,max=100"`
	SiswaKelas   *string `json:"siswa_kelas" validate:"omitempty,max=20"`
	SiswaJurusan *string `json:"siswa_jurusan" validate:"omitempty,max=50"`

	// pointer-ke-pointer tidak dipakai; lepas sangga lewat flag eksplisit
	SiswaSanggaID *uuid.UUID `json:"siswa_sangga_id" validate:"omitempty"`
	LepasSangga   bool       `json:"lepas_sangga"`
}

/* ===================== RESPONSES ===================== */

type SiswaResponse struct {
	SiswaID       uuid.UUID  `json:"siswa_id"`
	SiswaNama     string     `json:"siswa_nama"`
	SiswaKelas    string     `json:"siswa_kelas"`
	SiswaJurusan  string     `json:"siswa_jurusan"`
	SiswaSanggaID *uuid.UUID `json:"siswa_sangga_id,omitempty"`
	SanggaNama    string     `json:"sangga_nama,omitempty"`
}

/* ===================== MAPPERS ===================== */

func FromModel(x model.SiswaModel, sanggaNama string) SiswaResponse {
	return SiswaResponse{
		SiswaID:       x.SiswaID,
		SiswaNama:     x.SiswaNama,
		SiswaKelas:    x.SiswaKelas,
		SiswaJurusan:  x.SiswaJurusan,
		SiswaSanggaID: x.SiswaSanggaID,
		SanggaNama:    sanggaNama,
	}
}
