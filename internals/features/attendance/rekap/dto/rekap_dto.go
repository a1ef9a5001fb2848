package dto

import (
	"github.com/google/uuid"
)

/* ===================== REKAP PERTEMUAN (per tanggal) ===================== */

type RekapSanggaHarian struct {
	SanggaID   uuid.UUID `json:"sangga_id"`
	SanggaNama string    `json:"sangga_nama"`
	TotalSiswa int       `json:"total_siswa"`
	Hadir      int       `json:"hadir"`
	Izin       int       `json:"izin"`
	Alfa       int       `json:"alfa"`
	BelumIsi   int       `json:"belum_isi"`
	Persentase float64   `json:"persentase"`
}

type StatusSiswaHarian struct {
	SiswaID    uuid.UUID `json:"siswa_id"`
	SiswaNama  string    `json:"siswa_nama"`
	SanggaNama string    `json:"sangga_nama"`
	Status     string    `json:"status"` // hadir|izin|alfa|belum_isi
	Keterangan string    `json:"keterangan,omitempty"`
}

type RekapPertemuanResponse struct {
	Tanggal       string  `json:"tanggal"`
	TotalSiswa    int     `json:"total_siswa"`
	TotalPresensi int     `json:"total_presensi"`
	Hadir         int     `json:"hadir"`
	Izin          int     `json:"izin"`
	Alfa          int     `json:"alfa"`
	BelumIsi      int     `json:"belum_isi"`
	Persentase    float64 `json:"persentase"`

	// true bila data roster dan record tidak konsisten (mis. record milik
	// siswa yang sudah keluar dari semua sangga); rekap tetap dirender.
	Anomali bool `json:"anomali"`

	PerSangga   []RekapSanggaHarian `json:"per_sangga"`
	DaftarSiswa []StatusSiswaHarian `json:"daftar_siswa"`
}

/* ===================== REKAP SANGGA (per bulan) ===================== */

type RekapSiswaBulanan struct {
	SiswaID    uuid.UUID `json:"siswa_id"`
	SiswaNama  string    `json:"siswa_nama"`
	Hadir      int       `json:"hadir"`
	Izin       int       `json:"izin"`
	Alfa       int       `json:"alfa"`
	Persentase float64   `json:"persentase"`
}

type RekapSanggaResponse struct {
	SanggaID       uuid.UUID `json:"sangga_id"`
	SanggaNama     string    `json:"sangga_nama"`
	Bulan          int       `json:"bulan"`
	Tahun          int       `json:"tahun"`
	TotalPertemuan int       `json:"total_pertemuan"`
	TotalSiswa     int       `json:"total_siswa"`
	Hadir          int       `json:"hadir"`
	Izin           int       `json:"izin"`
	Alfa           int       `json:"alfa"`
	Persentase     float64   `json:"persentase"`

	DaftarSiswa []RekapSiswaBulanan `json:"daftar_siswa"`
}

/* ===================== REKAP SISWA (per bulan) ===================== */

type RekapSiswaResponse struct {
	SiswaID        uuid.UUID  `json:"siswa_id"`
	SiswaNama      string     `json:"siswa_nama"`
	SanggaID       *uuid.UUID `json:"sangga_id,omitempty"`
	SanggaNama     string     `json:"sangga_nama,omitempty"`
	Bulan          int        `json:"bulan"`
	Tahun          int        `json:"tahun"`
	TotalPertemuan int        `json:"total_pertemuan"`
	Hadir          int        `json:"hadir"`
	Izin           int        `json:"izin"`
	Alfa           int        `json:"alfa"`
	Persentase     float64    `json:"persentase"`
}

/* ===================== PERINGKAT ===================== */

type PeringkatEntry struct {
	Posisi     int       `json:"posisi"`
	Podium     bool      `json:"podium"` // posisi 1-3
	ID         uuid.UUID `json:"id"`
	Nama       string    `json:"nama"`
	Hadir      int       `json:"hadir"`
	Persentase float64   `json:"persentase"`
}

type PeringkatResponse struct {
	Bulan          int              `json:"bulan"`
	Tahun          int              `json:"tahun"`
	Dimensi        string           `json:"dimensi"` // sangga|siswa
	TotalPertemuan int              `json:"total_pertemuan"`
	Entries        []PeringkatEntry `json:"entries"`
}
