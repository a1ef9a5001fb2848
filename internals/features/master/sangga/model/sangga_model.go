package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SanggaModel merepresentasikan tabel sangga (kelompok siswa).
type SanggaModel struct {
	SanggaID   uuid.UUID `gorm:"type:uuid;primaryKey;column:sangga_id" json:"sangga_id"`
	SanggaNama string    `gorm:"size:100;unique;not null;column:sangga_nama" json:"sangga_nama"`

	// Gambar opsional; meta diisi saat upload (dimensi, format, ukuran).
	SanggaGambarURL  *string        `gorm:"type:text;column:sangga_gambar_url" json:"sangga_gambar_url,omitempty"`
	SanggaGambarMeta datatypes.JSON `gorm:"column:sangga_gambar_meta" json:"sangga_gambar_meta,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:sangga_created_at" json:"sangga_created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:sangga_updated_at" json:"sangga_updated_at"`
}

func (SanggaModel) TableName() string {
	return "sangga"
}

func (m *SanggaModel) BeforeCreate(tx *gorm.DB) error {
	if m.SanggaID == uuid.Nil {
		m.SanggaID = uuid.New()
	}
	return nil
}
