package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"presensiku_backend/internals/features/attendance/presence/model"
	sanggaModel "presensiku_backend/internals/features/master/sangga/model"
	siswaModel "presensiku_backend/internals/features/master/siswa/model"
)

var ErrSanggaNotFound = errors.New("sangga tidak ditemukan")

// ValidationError: payload submit cacat (status tidak dikenal, tanggal
// kosong, dst). Fields di-key per entri supaya operator tahu baris mana
// yang harus diperbaiki.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validasi presensi gagal: " + strings.Join(keys, ", ")
}

// RosterMismatchError: batch menyebut siswa yang bukan anggota sangga
// target. Seluruh batch ditolak, store tidak berubah.
type RosterMismatchError struct {
	SanggaID uuid.UUID
	SiswaIDs []uuid.UUID
}

func (e *RosterMismatchError) Error() string {
	ids := make([]string, 0, len(e.SiswaIDs))
	for _, id := range e.SiswaIDs {
		ids = append(ids, id.String())
	}
	return fmt.Sprintf("siswa bukan anggota sangga %s: %s", e.SanggaID, strings.Join(ids, ", "))
}

type EntriPresensi struct {
	SiswaID    uuid.UUID
	Status     model.StatusPresensi
	Keterangan string
}

type SubmitResult struct {
	Tersimpan    int
	BelumDiisi   int
	TotalAnggota int
}

type PresensiService struct {
	DB *gorm.DB
}

func NewPresensiService(db *gorm.DB) *PresensiService {
	return &PresensiService{DB: db}
}

// NormalizeTanggal memotong komponen waktu; seluruh tabel presensi
// bekerja pada granularity hari (UTC midnight).
func NormalizeTanggal(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SubmitBatch menerapkan satu payload roster penuh untuk (tanggal, sangga)
// secara atomik. Semantik replace penuh: entri berstatus final di-upsert
// lewat natural key (tanggal, siswa); entri unset tidak dipersist dan
// record lamanya (bila ada) dihapus sehingga kembali "belum_isi".
// Submit ulang payload yang sama adalah no-op (idempoten).
func (s *PresensiService) SubmitBatch(tanggal time.Time, sanggaID uuid.UUID, entries []EntriPresensi) (SubmitResult, error) {
	var result SubmitResult

	fieldErrs := map[string][]string{}
	if tanggal.IsZero() {
		fieldErrs["tanggal"] = append(fieldErrs["tanggal"], "tanggal wajib diisi")
	}
	if sanggaID == uuid.Nil {
		fieldErrs["sangga_id"] = append(fieldErrs["sangga_id"], "sangga_id wajib diisi")
	}
	if len(entries) == 0 {
		fieldErrs["entries"] = append(fieldErrs["entries"], "entries tidak boleh kosong")
	}
	if len(fieldErrs) > 0 {
		return result, &ValidationError{Fields: fieldErrs}
	}

	tanggal = NormalizeTanggal(tanggal)

	var sangga sanggaModel.SanggaModel
	if err := s.DB.First(&sangga, "sangga_id = ?", sanggaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result, ErrSanggaNotFound
		}
		return result, err
	}

	var roster []siswaModel.SiswaModel
	if err := s.DB.Where("siswa_sangga_id = ?", sanggaID).Find(&roster).Error; err != nil {
		return result, err
	}
	rosterSet := make(map[uuid.UUID]struct{}, len(roster))
	for _, siswa := range roster {
		rosterSet[siswa.SiswaID] = struct{}{}
	}
	result.TotalAnggota = len(roster)

	// Entri ganda untuk siswa yang sama: yang terakhir menang, meniru
	// perilaku form (payload dibangun per anggota roster oleh caller).
	var mismatch []uuid.UUID
	finals := map[uuid.UUID]EntriPresensi{}
	unset := map[uuid.UUID]struct{}{}
	for _, entry := range entries {
		if _, ok := rosterSet[entry.SiswaID]; !ok {
			mismatch = append(mismatch, entry.SiswaID)
			continue
		}
		status := model.StatusPresensi(strings.TrimSpace(string(entry.Status)))
		switch {
		case status.IsFinal():
			entry.Status = status
			finals[entry.SiswaID] = entry
			delete(unset, entry.SiswaID)
		case status.IsUnset():
			unset[entry.SiswaID] = struct{}{}
			delete(finals, entry.SiswaID)
		default:
			key := entry.SiswaID.String()
			fieldErrs[key] = append(fieldErrs[key], fmt.Sprintf("status %q tidak dikenal (hadir/izin/alfa)", status))
		}
	}

	if len(mismatch) > 0 {
		sort.Slice(mismatch, func(i, j int) bool { return mismatch[i].String() < mismatch[j].String() })
		return result, &RosterMismatchError{SanggaID: sanggaID, SiswaIDs: mismatch}
	}
	if len(fieldErrs) > 0 {
		return result, &ValidationError{Fields: fieldErrs}
	}

	rows := make([]model.PresensiModel, 0, len(finals))
	for _, entry := range finals {
		var ket *string
		if k := strings.TrimSpace(entry.Keterangan); k != "" {
			ket = &k
		}
		rows = append(rows, model.PresensiModel{
			PresensiTanggal:    tanggal,
			PresensiSiswaID:    entry.SiswaID,
			PresensiSanggaID:   sanggaID,
			PresensiStatus:     entry.Status,
			PresensiKeterangan: ket,
		})
	}
	// urutan insert deterministik
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].PresensiSiswaID.String() < rows[j].PresensiSiswaID.String()
	})

	unsetIDs := make([]uuid.UUID, 0, len(unset))
	for id := range unset {
		unsetIDs = append(unsetIDs, id)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if len(rows) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "presensi_tanggal"}, {Name: "presensi_siswa_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"presensi_sangga_id", "presensi_status", "presensi_keterangan", "presensi_updated_at",
				}),
			}).Create(&rows).Error; err != nil {
				return err
			}
		}
		if len(unsetIDs) > 0 {
			if err := tx.Where("presensi_tanggal = ? AND presensi_siswa_id IN ?", tanggal, unsetIDs).
				Delete(&model.PresensiModel{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	result.Tersimpan = len(rows)
	result.BelumDiisi = result.TotalAnggota - len(rows)
	return result, nil
}

// ListByTanggal mengambil seluruh record satu tanggal, opsional difilter
// satu sangga. Salah satu dari dua bentuk query yang dibutuhkan rekap.
func (s *PresensiService) ListByTanggal(tanggal time.Time, sanggaID *uuid.UUID) ([]model.PresensiModel, error) {
	tanggal = NormalizeTanggal(tanggal)
	tx := s.DB.Where("presensi_tanggal = ?", tanggal)
	if sanggaID != nil {
		tx = tx.Where("presensi_sangga_id = ?", *sanggaID)
	}
	var rows []model.PresensiModel
	if err := tx.Order("presensi_siswa_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListBySiswa mengambil record satu siswa dalam rentang [start, end).
func (s *PresensiService) ListBySiswa(siswaID uuid.UUID, start, end time.Time) ([]model.PresensiModel, error) {
	var rows []model.PresensiModel
	if err := s.DB.
		Where("presensi_siswa_id = ? AND presensi_tanggal >= ? AND presensi_tanggal < ?",
			siswaID, NormalizeTanggal(start), NormalizeTanggal(end)).
		Order("presensi_tanggal ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
