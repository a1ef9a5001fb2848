package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusPresensi: status kehadiran final yang boleh tersimpan.
// Sentinel kosong hanya dipakai draft di sisi klien dan tidak pernah
// masuk tabel; siswa tanpa record untuk suatu tanggal berstatus
// "belum_isi" (turunan, bukan kolom).
type StatusPresensi string

const (
	StatusHadir StatusPresensi = "hadir"
	StatusIzin  StatusPresensi = "izin"
	StatusAlfa  StatusPresensi = "alfa"

	// turunan, tidak pernah dipersist
	StatusBelumIsi StatusPresensi = "belum_isi"

	// sentinel draft: entri belum diputuskan
	StatusUnset StatusPresensi = ""
)

// IsFinal: status yang sah untuk dipersist.
func (s StatusPresensi) IsFinal() bool {
	switch s {
	case StatusHadir, StatusIzin, StatusAlfa:
		return true
	}
	return false
}

func (s StatusPresensi) IsUnset() bool {
	return s == StatusUnset
}

// PresensiModel merepresentasikan tabel presensi.
// Natural key: (presensi_tanggal, presensi_siswa_id). Resubmit menimpa,
// tidak pernah menduplikasi.
type PresensiModel struct {
	PresensiID uuid.UUID `gorm:"type:uuid;primaryKey;column:presensi_id" json:"presensi_id"`

	PresensiTanggal time.Time `gorm:"type:date;not null;column:presensi_tanggal;uniqueIndex:uq_presensi_tanggal_siswa,priority:1" json:"presensi_tanggal"`
	PresensiSiswaID uuid.UUID `gorm:"type:uuid;not null;column:presensi_siswa_id;uniqueIndex:uq_presensi_tanggal_siswa,priority:2" json:"presensi_siswa_id"`

	PresensiSanggaID uuid.UUID `gorm:"type:uuid;not null;index;column:presensi_sangga_id" json:"presensi_sangga_id"`

	PresensiStatus     StatusPresensi `gorm:"type:varchar(10);not null;column:presensi_status" json:"presensi_status"`
	PresensiKeterangan *string        `gorm:"type:text;column:presensi_keterangan" json:"presensi_keterangan,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:presensi_created_at" json:"presensi_created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:presensi_updated_at" json:"presensi_updated_at"`
}

func (PresensiModel) TableName() string {
	return "presensi"
}

func (m *PresensiModel) BeforeCreate(tx *gorm.DB) error {
	if m.PresensiID == uuid.Nil {
		m.PresensiID = uuid.New()
	}
	return nil
}
