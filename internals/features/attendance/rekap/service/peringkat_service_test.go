package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	presensiModel "presensiku_backend/internals/features/attendance/presence/model"
	presensiService "presensiku_backend/internals/features/attendance/presence/service"
	"presensiku_backend/internals/features/attendance/rekap/dto"
)

func TestPeringkatSanggaUrutanDanPodium(t *testing.T) {
	db := newTestDB(t)
	svc := NewRekapService(db)

	elang := seedSangga(t, db, "Elang")
	garuda := seedSangga(t, db, "Garuda")
	rajawali := seedSangga(t, db, "Rajawali")
	merpati := seedSangga(t, db, "Merpati")

	rosterElang := seedRoster(t, db, elang.SanggaID, "Adit", "Bunga")
	rosterGaruda := seedRoster(t, db, garuda.SanggaID, "Citra", "Dimas")
	rosterRajawali := seedRoster(t, db, rajawali.SanggaID, "Eka", "Fitri")
	seedRoster(t, db, merpati.SanggaID, "Gilang")

	// dua pertemuan; elang penuh, garuda separuh, rajawali kosong
	for _, hari := range []int{3, 10} {
		submit(t, db, tgl(hari), elang.SanggaID, hadirSemua(rosterElang))
		submit(t, db, tgl(hari), garuda.SanggaID, []presensiService.EntriPresensi{
			{SiswaID: rosterGaruda[0].SiswaID, Status: presensiModel.StatusHadir},
			{SiswaID: rosterGaruda[1].SiswaID, Status: presensiModel.StatusAlfa},
		})
	}
	// rajawali pernah isi tapi semua alfa
	submit(t, db, tgl(3), rajawali.SanggaID, []presensiService.EntriPresensi{
		{SiswaID: rosterRajawali[0].SiswaID, Status: presensiModel.StatusAlfa},
		{SiswaID: rosterRajawali[1].SiswaID, Status: presensiModel.StatusAlfa},
	})

	resp, err := svc.PeringkatSangga(3, 2025)
	require.NoError(t, err)
	assert.Equal(t, "sangga", resp.Dimensi)
	assert.Equal(t, 2, resp.TotalPertemuan)
	require.Len(t, resp.Entries, 4)

	assert.Equal(t, "Elang", resp.Entries[0].Nama)
	assert.Equal(t, float64(100), resp.Entries[0].Persentase)
	assert.Equal(t, "Garuda", resp.Entries[1].Nama)
	assert.Equal(t, float64(50), resp.Entries[1].Persentase)

	// 0% seri: ID naik sebagai pemecah
	seri := []string{resp.Entries[2].Nama, resp.Entries[3].Nama}
	assert.ElementsMatch(t, []string{"Merpati", "Rajawali"}, seri)
	assert.Less(t, resp.Entries[2].ID.String(), resp.Entries[3].ID.String())

	for i, e := range resp.Entries {
		assert.Equal(t, i+1, e.Posisi)
		assert.Equal(t, i < 3, e.Podium)
	}
}

func TestPeringkatSiswa(t *testing.T) {
	db := newTestDB(t)
	svc := NewRekapService(db)

	sg := seedSangga(t, db, "Elang")
	roster := seedRoster(t, db, sg.SanggaID, "Adit", "Bunga", "Citra")

	// dua pertemuan: Adit 2x hadir, Bunga 1x, Citra 0x
	submit(t, db, tgl(3), sg.SanggaID, []presensiService.EntriPresensi{
		{SiswaID: roster[0].SiswaID, Status: presensiModel.StatusHadir},
		{SiswaID: roster[1].SiswaID, Status: presensiModel.StatusHadir},
		{SiswaID: roster[2].SiswaID, Status: presensiModel.StatusAlfa},
	})
	submit(t, db, tgl(10), sg.SanggaID, []presensiService.EntriPresensi{
		{SiswaID: roster[0].SiswaID, Status: presensiModel.StatusHadir},
		{SiswaID: roster[1].SiswaID, Status: presensiModel.StatusIzin},
		{SiswaID: roster[2].SiswaID, Status: presensiModel.StatusAlfa},
	})

	resp, err := svc.PeringkatSiswa(3, 2025)
	require.NoError(t, err)
	assert.Equal(t, "siswa", resp.Dimensi)
	require.Len(t, resp.Entries, 3)

	assert.Equal(t, "Adit", resp.Entries[0].Nama)
	assert.Equal(t, float64(100), resp.Entries[0].Persentase)
	assert.Equal(t, "Bunga", resp.Entries[1].Nama)
	assert.Equal(t, float64(50), resp.Entries[1].Persentase)
	assert.Equal(t, "Citra", resp.Entries[2].Nama)
	assert.Equal(t, float64(0), resp.Entries[2].Persentase)
}

// Peringkat deterministik: dua kali panggil menghasilkan urutan identik,
// termasuk saat seluruh entri seri 0%.
func TestPeringkatDeterministik(t *testing.T) {
	db := newTestDB(t)
	svc := NewRekapService(db)

	sg := seedSangga(t, db, "Elang")
	seedRoster(t, db, sg.SanggaID, "Adit", "Bunga", "Citra")

	first, err := svc.PeringkatSiswa(3, 2025)
	require.NoError(t, err)
	second, err := svc.PeringkatSiswa(3, 2025)
	require.NoError(t, err)
	assert.Equal(t, first.Entries, second.Entries)
	assert.Equal(t, 0, first.TotalPertemuan)
	for _, e := range first.Entries {
		assert.Equal(t, float64(0), e.Persentase)
	}
}

func TestSortPeringkatSeriDipecahID(t *testing.T) {
	idA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	idB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	// seri 50%: ID yang menentukan, bukan nama
	entries := []dto.PeringkatEntry{
		{ID: idB, Nama: "Awal", Persentase: 50},
		{ID: idA, Nama: "Zulu", Persentase: 50},
		{ID: uuid.New(), Nama: "Juara", Persentase: 90},
	}
	sortPeringkat(entries)

	assert.Equal(t, "Juara", entries[0].Nama)
	assert.Equal(t, idA, entries[1].ID)
	assert.Equal(t, idB, entries[2].ID)
	assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Posisi, entries[1].Posisi, entries[2].Posisi})
}
