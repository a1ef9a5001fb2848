package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiswaModel merepresentasikan tabel siswa.
// siswa_sangga_id nullable: siswa tanpa sangga tidak ikut rekap kelompok.
type SiswaModel struct {
	SiswaID   uuid.UUID `gorm:"type:uuid;primaryKey;column:siswa_id" json:"siswa_id"`
	SiswaNama string    `gorm:"size:100;not null;column:siswa_nama" json:"siswa_nama"`

	// Deskriptor tampilan saja, tidak dipakai aggregator.
	SiswaKelas   string `gorm:"size:20;column:siswa_kelas" json:"siswa_kelas"`
	SiswaJurusan string `gorm:"size:50;column:siswa_jurusan" json:"siswa_jurusan"`

	SiswaSanggaID *uuid.UUID `gorm:"type:uuid;index;column:siswa_sangga_id" json:"siswa_sangga_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:siswa_created_at" json:"siswa_created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:siswa_updated_at" json:"siswa_updated_at"`
}

func (SiswaModel) TableName() string {
	return "siswa"
}

func (m *SiswaModel) BeforeCreate(tx *gorm.DB) error {
	if m.SiswaID == uuid.Nil {
		m.SiswaID = uuid.New()
	}
	return nil
}
