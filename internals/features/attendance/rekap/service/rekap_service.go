package service

import (
	"errors"
	"log"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	presensiModel "presensiku_backend/internals/features/attendance/presence/model"
	presensiService "presensiku_backend/internals/features/attendance/presence/service"
	"presensiku_backend/internals/features/attendance/rekap/dto"
	sanggaModel "presensiku_backend/internals/features/master/sangga/model"
	siswaModel "presensiku_backend/internals/features/master/siswa/model"
)

var (
	ErrSanggaNotFound = errors.New("sangga tidak ditemukan")
	ErrSiswaNotFound  = errors.New("siswa tidak ditemukan")
)

// RekapService menghitung rollup presensi langsung dari record mentah.
// Tidak ada cache: setiap panggilan membaca state store saat itu, jadi
// aman diulang kapan saja.
type RekapService struct {
	DB       *gorm.DB
	Presensi *presensiService.PresensiService
}

func NewRekapService(db *gorm.DB) *RekapService {
	return &RekapService{
		DB:       db,
		Presensi: presensiService.NewPresensiService(db),
	}
}

// Round2 membulatkan ke 2 desimal (half away from zero).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Persen: pembagi 0 menghasilkan 0, bukan error/NaN.
func Persen(pembilang, pembagi int) float64 {
	if pembagi == 0 {
		return 0
	}
	return Round2(float64(pembilang) / float64(pembagi) * 100)
}

func normalizeTanggal(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// monthRange: [awal bulan, awal bulan berikutnya)
func monthRange(bulan, tahun int) (time.Time, time.Time) {
	start := time.Date(tahun, time.Month(bulan), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

/* ===================== REKAP PERTEMUAN ===================== */

// RekapPertemuan merangkum satu tanggal: seluruh siswa ber-sangga vs
// record yang masuk hari itu. Siswa tanpa record dihitung belum_isi,
// bukan alfa.
func (s *RekapService) RekapPertemuan(tanggal time.Time) (dto.RekapPertemuanResponse, error) {
	tanggal = normalizeTanggal(tanggal)
	resp := dto.RekapPertemuanResponse{
		Tanggal:     tanggal.Format("2006-01-02"),
		PerSangga:   []dto.RekapSanggaHarian{},
		DaftarSiswa: []dto.StatusSiswaHarian{},
	}

	var sanggas []sanggaModel.SanggaModel
	if err := s.DB.Order("sangga_nama ASC, sangga_id ASC").Find(&sanggas).Error; err != nil {
		return resp, err
	}

	var roster []siswaModel.SiswaModel
	if err := s.DB.Where("siswa_sangga_id IS NOT NULL").
		Order("siswa_nama ASC, siswa_id ASC").
		Find(&roster).Error; err != nil {
		return resp, err
	}

	var records []presensiModel.PresensiModel
	if err := s.DB.Where("presensi_tanggal = ?", tanggal).Find(&records).Error; err != nil {
		return resp, err
	}
	recordBySiswa := make(map[uuid.UUID]presensiModel.PresensiModel, len(records))
	for _, rec := range records {
		recordBySiswa[rec.PresensiSiswaID] = rec
	}

	sanggaNama := make(map[uuid.UUID]string, len(sanggas))
	perSangga := make(map[uuid.UUID]*dto.RekapSanggaHarian, len(sanggas))
	for _, sg := range sanggas {
		sanggaNama[sg.SanggaID] = sg.SanggaNama
		perSangga[sg.SanggaID] = &dto.RekapSanggaHarian{
			SanggaID:   sg.SanggaID,
			SanggaNama: sg.SanggaNama,
		}
	}

	resp.TotalSiswa = len(roster)
	resp.TotalPresensi = len(records)

	for _, siswa := range roster {
		sg := perSangga[*siswa.SiswaSanggaID]
		if sg == nil {
			// sangga_id menggantung; tetap tampil di daftar global
			sg = &dto.RekapSanggaHarian{SanggaID: *siswa.SiswaSanggaID}
			perSangga[*siswa.SiswaSanggaID] = sg
		}
		sg.TotalSiswa++

		status := presensiModel.StatusBelumIsi
		ket := ""
		if rec, ok := recordBySiswa[siswa.SiswaID]; ok {
			status = rec.PresensiStatus
			if rec.PresensiKeterangan != nil {
				ket = *rec.PresensiKeterangan
			}
		}
		switch status {
		case presensiModel.StatusHadir:
			resp.Hadir++
			sg.Hadir++
		case presensiModel.StatusIzin:
			resp.Izin++
			sg.Izin++
		case presensiModel.StatusAlfa:
			resp.Alfa++
			sg.Alfa++
		default:
			resp.BelumIsi++
			sg.BelumIsi++
		}

		resp.DaftarSiswa = append(resp.DaftarSiswa, dto.StatusSiswaHarian{
			SiswaID:    siswa.SiswaID,
			SiswaNama:  siswa.SiswaNama,
			SanggaNama: sanggaNama[*siswa.SiswaSanggaID],
			Status:     string(status),
			Keterangan: ket,
		})
	}

	// roster drift: record milik siswa yang tak lagi ber-sangga tidak
	// bisa dipetakan ke daftar mana pun; rekap tetap dirender, tapi
	// ditandai supaya angka total_presensi vs roster bisa diperiksa.
	rosterSet := make(map[uuid.UUID]struct{}, len(roster))
	for _, siswa := range roster {
		rosterSet[siswa.SiswaID] = struct{}{}
	}
	stray := 0
	for _, rec := range records {
		if _, ok := rosterSet[rec.PresensiSiswaID]; !ok {
			stray++
		}
	}
	if stray > 0 {
		log.Printf("[WARN] rekap %s: %d record milik siswa di luar roster (record=%d, roster=%d)",
			resp.Tanggal, stray, resp.TotalPresensi, resp.TotalSiswa)
		resp.Anomali = true
	}
	resp.Persentase = Persen(resp.Hadir, resp.TotalSiswa)

	for _, sg := range sanggas {
		entry := perSangga[sg.SanggaID]
		entry.Persentase = Persen(entry.Hadir, entry.TotalSiswa)
		resp.PerSangga = append(resp.PerSangga, *entry)
	}

	return resp, nil
}

/* ===================== REKAP SANGGA ===================== */

// RekapSangga merangkum satu sangga untuk satu bulan. total_pertemuan
// dihitung lintas sangga: satu tanggal terhitung pertemuan bila ada
// record siapa pun pada tanggal itu.
func (s *RekapService) RekapSangga(sanggaID uuid.UUID, bulan, tahun int) (dto.RekapSanggaResponse, error) {
	resp := dto.RekapSanggaResponse{
		SanggaID:    sanggaID,
		Bulan:       bulan,
		Tahun:       tahun,
		DaftarSiswa: []dto.RekapSiswaBulanan{},
	}

	var sangga sanggaModel.SanggaModel
	if err := s.DB.First(&sangga, "sangga_id = ?", sanggaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp, ErrSanggaNotFound
		}
		return resp, err
	}
	resp.SanggaNama = sangga.SanggaNama

	totalPertemuan, err := s.TotalPertemuan(bulan, tahun)
	if err != nil {
		return resp, err
	}
	resp.TotalPertemuan = totalPertemuan

	var roster []siswaModel.SiswaModel
	if err := s.DB.Where("siswa_sangga_id = ?", sanggaID).
		Order("siswa_nama ASC, siswa_id ASC").
		Find(&roster).Error; err != nil {
		return resp, err
	}
	resp.TotalSiswa = len(roster)

	start, end := monthRange(bulan, tahun)
	var records []presensiModel.PresensiModel
	if err := s.DB.
		Where("presensi_sangga_id = ? AND presensi_tanggal >= ? AND presensi_tanggal < ?", sanggaID, start, end).
		Find(&records).Error; err != nil {
		return resp, err
	}

	type counts struct{ hadir, izin, alfa int }
	perSiswa := map[uuid.UUID]*counts{}
	for _, rec := range records {
		c := perSiswa[rec.PresensiSiswaID]
		if c == nil {
			c = &counts{}
			perSiswa[rec.PresensiSiswaID] = c
		}
		switch rec.PresensiStatus {
		case presensiModel.StatusHadir:
			c.hadir++
		case presensiModel.StatusIzin:
			c.izin++
		case presensiModel.StatusAlfa:
			c.alfa++
		}
	}

	// rollup kelompok = jumlah rollup anggota roster saat ini; record
	// milik mantan anggota tidak ikut (denominator pun memakai roster
	// saat ini).
	for _, siswa := range roster {
		c := perSiswa[siswa.SiswaID]
		if c == nil {
			c = &counts{}
		}
		resp.Hadir += c.hadir
		resp.Izin += c.izin
		resp.Alfa += c.alfa
		resp.DaftarSiswa = append(resp.DaftarSiswa, dto.RekapSiswaBulanan{
			SiswaID:    siswa.SiswaID,
			SiswaNama:  siswa.SiswaNama,
			Hadir:      c.hadir,
			Izin:       c.izin,
			Alfa:       c.alfa,
			Persentase: Persen(c.hadir, totalPertemuan),
		})
	}

	expected := resp.TotalSiswa * totalPertemuan
	resp.Persentase = Persen(resp.Hadir, expected)

	return resp, nil
}

/* ===================== REKAP SISWA ===================== */

// RekapSiswa: aritmetika yang sama dengan satu baris anggota di
// RekapSangga, bisa di-query sendiri untuk drill-down.
func (s *RekapService) RekapSiswa(siswaID uuid.UUID, bulan, tahun int) (dto.RekapSiswaResponse, error) {
	resp := dto.RekapSiswaResponse{
		SiswaID: siswaID,
		Bulan:   bulan,
		Tahun:   tahun,
	}

	var siswa siswaModel.SiswaModel
	if err := s.DB.First(&siswa, "siswa_id = ?", siswaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp, ErrSiswaNotFound
		}
		return resp, err
	}
	resp.SiswaNama = siswa.SiswaNama
	resp.SanggaID = siswa.SiswaSanggaID
	if siswa.SiswaSanggaID != nil {
		var sangga sanggaModel.SanggaModel
		if err := s.DB.First(&sangga, "sangga_id = ?", *siswa.SiswaSanggaID).Error; err == nil {
			resp.SanggaNama = sangga.SanggaNama
		}
	}

	totalPertemuan, err := s.TotalPertemuan(bulan, tahun)
	if err != nil {
		return resp, err
	}
	resp.TotalPertemuan = totalPertemuan

	start, end := monthRange(bulan, tahun)
	records, err := s.Presensi.ListBySiswa(siswaID, start, end)
	if err != nil {
		return resp, err
	}
	for _, rec := range records {
		switch rec.PresensiStatus {
		case presensiModel.StatusHadir:
			resp.Hadir++
		case presensiModel.StatusIzin:
			resp.Izin++
		case presensiModel.StatusAlfa:
			resp.Alfa++
		}
	}
	resp.Persentase = Persen(resp.Hadir, totalPertemuan)

	return resp, nil
}

/* ===================== SHARED ===================== */

// TotalPertemuan: jumlah tanggal berbeda yang punya minimal satu record
// pada bulan itu. Tanggal tanpa record bukan pertemuan.
func (s *RekapService) TotalPertemuan(bulan, tahun int) (int, error) {
	start, end := monthRange(bulan, tahun)
	var n int64
	if err := s.DB.Model(&presensiModel.PresensiModel{}).
		Where("presensi_tanggal >= ? AND presensi_tanggal < ?", start, end).
		Distinct("presensi_tanggal").
		Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

// urutkan entri peringkat: persentase turun, seri dipecah ID naik
// supaya urutan deterministik antar pemanggilan.
func sortPeringkat(entries []dto.PeringkatEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Persentase != entries[j].Persentase {
			return entries[i].Persentase > entries[j].Persentase
		}
		return entries[i].ID.String() < entries[j].ID.String()
	})
	for i := range entries {
		entries[i].Posisi = i + 1
		entries[i].Podium = i < 3
	}
}
