package service

import (
	"github.com/google/uuid"

	presensiModel "presensiku_backend/internals/features/attendance/presence/model"
	"presensiku_backend/internals/features/attendance/rekap/dto"
	sanggaModel "presensiku_backend/internals/features/master/sangga/model"
	siswaModel "presensiku_backend/internals/features/master/siswa/model"
)

/* ===================== PERINGKAT SANGGA ===================== */

// PeringkatSangga mengurutkan seluruh sangga berdasarkan persentase
// kehadiran bulan itu. Aritmetikanya identik dengan RekapSangga supaya
// papan peringkat dan halaman rekap tidak pernah berbeda angka.
func (s *RekapService) PeringkatSangga(bulan, tahun int) (dto.PeringkatResponse, error) {
	resp := dto.PeringkatResponse{
		Bulan:   bulan,
		Tahun:   tahun,
		Dimensi: "sangga",
		Entries: []dto.PeringkatEntry{},
	}

	totalPertemuan, err := s.TotalPertemuan(bulan, tahun)
	if err != nil {
		return resp, err
	}
	resp.TotalPertemuan = totalPertemuan

	var sanggas []sanggaModel.SanggaModel
	if err := s.DB.Find(&sanggas).Error; err != nil {
		return resp, err
	}

	var roster []siswaModel.SiswaModel
	if err := s.DB.Where("siswa_sangga_id IS NOT NULL").Find(&roster).Error; err != nil {
		return resp, err
	}
	rosterSize := map[uuid.UUID]int{}
	sanggaOfSiswa := map[uuid.UUID]uuid.UUID{}
	for _, siswa := range roster {
		rosterSize[*siswa.SiswaSanggaID]++
		sanggaOfSiswa[siswa.SiswaID] = *siswa.SiswaSanggaID
	}

	records, err := s.recordsBulan(bulan, tahun)
	if err != nil {
		return resp, err
	}
	hadirPerSangga := map[uuid.UUID]int{}
	for _, rec := range records {
		if rec.PresensiStatus != presensiModel.StatusHadir {
			continue
		}
		// ikut aritmetika rekap: hanya hadir anggota roster saat ini
		sgID, ok := sanggaOfSiswa[rec.PresensiSiswaID]
		if !ok || sgID != rec.PresensiSanggaID {
			continue
		}
		hadirPerSangga[sgID]++
	}

	for _, sg := range sanggas {
		hadir := hadirPerSangga[sg.SanggaID]
		expected := rosterSize[sg.SanggaID] * totalPertemuan
		resp.Entries = append(resp.Entries, dto.PeringkatEntry{
			ID:         sg.SanggaID,
			Nama:       sg.SanggaNama,
			Hadir:      hadir,
			Persentase: Persen(hadir, expected),
		})
	}

	sortPeringkat(resp.Entries)
	return resp, nil
}

/* ===================== PERINGKAT SISWA ===================== */

// PeringkatSiswa mengurutkan seluruh siswa ber-sangga berdasarkan
// persentase kehadiran individual bulan itu.
func (s *RekapService) PeringkatSiswa(bulan, tahun int) (dto.PeringkatResponse, error) {
	resp := dto.PeringkatResponse{
		Bulan:   bulan,
		Tahun:   tahun,
		Dimensi: "siswa",
		Entries: []dto.PeringkatEntry{},
	}

	totalPertemuan, err := s.TotalPertemuan(bulan, tahun)
	if err != nil {
		return resp, err
	}
	resp.TotalPertemuan = totalPertemuan

	var roster []siswaModel.SiswaModel
	if err := s.DB.Where("siswa_sangga_id IS NOT NULL").Find(&roster).Error; err != nil {
		return resp, err
	}

	records, err := s.recordsBulan(bulan, tahun)
	if err != nil {
		return resp, err
	}
	hadirPerSiswa := map[uuid.UUID]int{}
	for _, rec := range records {
		if rec.PresensiStatus == presensiModel.StatusHadir {
			hadirPerSiswa[rec.PresensiSiswaID]++
		}
	}

	for _, siswa := range roster {
		hadir := hadirPerSiswa[siswa.SiswaID]
		resp.Entries = append(resp.Entries, dto.PeringkatEntry{
			ID:         siswa.SiswaID,
			Nama:       siswa.SiswaNama,
			Hadir:      hadir,
			Persentase: Persen(hadir, totalPertemuan),
		})
	}

	sortPeringkat(resp.Entries)
	return resp, nil
}

func (s *RekapService) recordsBulan(bulan, tahun int) ([]presensiModel.PresensiModel, error) {
	start, end := monthRange(bulan, tahun)
	var records []presensiModel.PresensiModel
	if err := s.DB.
		Where("presensi_tanggal >= ? AND presensi_tanggal < ?", start, end).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
