package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"presensiku_backend/internals/features/attendance/presence/model"
	sanggaModel "presensiku_backend/internals/features/master/sangga/model"
	siswaModel "presensiku_backend/internals/features/master/siswa/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// satu koneksi supaya :memory: tidak pecah jadi banyak database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&sanggaModel.SanggaModel{},
		&siswaModel.SiswaModel{},
		&model.PresensiModel{},
	))
	return db
}

func seedSangga(t *testing.T, db *gorm.DB, nama string) sanggaModel.SanggaModel {
	t.Helper()
	sg := sanggaModel.SanggaModel{SanggaNama: nama}
	require.NoError(t, db.Create(&sg).Error)
	return sg
}

func seedSiswa(t *testing.T, db *gorm.DB, nama string, sanggaID *uuid.UUID) siswaModel.SiswaModel {
	t.Helper()
	siswa := siswaModel.SiswaModel{SiswaNama: nama, SiswaSanggaID: sanggaID}
	require.NoError(t, db.Create(&siswa).Error)
	return siswa
}

func tanggalUji() time.Time {
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func TestSubmitBatchHappyPath(t *testing.T) {
	db := newTestDB(t)
	svc := NewPresensiService(db)

	sg := seedSangga(t, db, "Perintis")
	a := seedSiswa(t, db, "Adit", &sg.SanggaID)
	b := seedSiswa(t, db, "Bunga", &sg.SanggaID)
	c := seedSiswa(t, db, "Citra", &sg.SanggaID)

	res, err := svc.SubmitBatch(tanggalUji(), sg.SanggaID, []EntriPresensi{
		{SiswaID: a.SiswaID, Status: model.StatusHadir},
		{SiswaID: b.SiswaID, Status: model.StatusIzin, Keterangan: "sakit"},
		{SiswaID: c.SiswaID, Status: model.StatusUnset},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Tersimpan)
	assert.Equal(t, 1, res.BelumDiisi)
	assert.Equal(t, 3, res.TotalAnggota)

	rows, err := svc.ListByTanggal(tanggalUji(), &sg.SanggaID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[uuid.UUID]model.PresensiModel{}
	for _, r := range rows {
		byID[r.PresensiSiswaID] = r
	}
	assert.Equal(t, model.StatusHadir, byID[a.SiswaID].PresensiStatus)
	assert.Equal(t, model.StatusIzin, byID[b.SiswaID].PresensiStatus)
	require.NotNil(t, byID[b.SiswaID].PresensiKeterangan)
	assert.Equal(t, "sakit", *byID[b.SiswaID].PresensiKeterangan)
	_, ada := byID[c.SiswaID]
	assert.False(t, ada, "entri unset tidak boleh dipersist")
}

func TestSubmitBatchIdempoten(t *testing.T) {
	db := newTestDB(t)
	svc := NewPresensiService(db)

	sg := seedSangga(t, db, "Pencoba")
	a := seedSiswa(t, db, "Adit", &sg.SanggaID)
	b := seedSiswa(t, db, "Bunga", &sg.SanggaID)

	payload := []EntriPresensi{
		{SiswaID: a.SiswaID, Status: model.StatusHadir},
		{SiswaID: b.SiswaID, Status: model.StatusAlfa},
	}

	_, err := svc.SubmitBatch(tanggalUji(), sg.SanggaID, payload)
	require.NoError(t, err)
	res, err := svc.SubmitBatch(tanggalUji(), sg.SanggaID, payload)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Tersimpan)

	var n int64
	require.NoError(t, db.Model(&model.PresensiModel{}).Count(&n).Error)
	assert.EqualValues(t, 2, n, "submit ulang tidak boleh menduplikasi record")
}

func TestSubmitBatchReplacePenuh(t *testing.T) {
	db := newTestDB(t)
	svc := NewPresensiService(db)

	sg := seedSangga(t, db, "Pendobrak")
	a := seedSiswa(t, db, "Adit", &sg.SanggaID)
	b := seedSiswa(t, db, "Bunga", &sg.SanggaID)

	_, err := svc.SubmitBatch(tanggalUji(), sg.SanggaID, []EntriPresensi{
		{SiswaID: a.SiswaID, Status: model.StatusHadir},
		{SiswaID: b.SiswaID, Status: model.StatusHadir},
	})
	require.NoError(t, err)

	// koreksi: a jadi izin, b dikosongkan lagi
	res, err := svc.SubmitBatch(tanggalUji(), sg.SanggaID, []EntriPresensi{
		{SiswaID: a.SiswaID, Status: model.StatusIzin, Keterangan: "dispensasi"},
		{SiswaID: b.SiswaID, Status: model.StatusUnset},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Tersimpan)
	assert.Equal(t, 1, res.BelumDiisi)

	rows, err := svc.ListByTanggal(tanggalUji(), &sg.SanggaID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, a.SiswaID, rows[0].PresensiSiswaID)
	assert.Equal(t, model.StatusIzin, rows[0].PresensiStatus)
}

func TestSubmitBatchEntriGandaTerakhirMenang(t *testing.T) {
	db := newTestDB(t)
	svc := NewPresensiService(db)

	sg := seedSangga(t, db, "Penegas")
	a := seedSiswa(t, db, "Adit", &sg.SanggaID)

	res, err := svc.SubmitBatch(tanggalUji(), sg.SanggaID, []EntriPresensi{
		{SiswaID: a.SiswaID, Status: model.StatusAlfa},
		{SiswaID: a.SiswaID, Status: model.StatusHadir},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Tersimpan)

	rows, err := svc.ListByTanggal(tanggalUji(), &sg.SanggaID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, model.StatusHadir, rows[0].PresensiStatus)
}

func TestSubmitBatchRosterMismatchMenolakSeluruhBatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewPresensiService(db)

	sg := seedSangga(t, db, "Pelaksana")
	lain := seedSangga(t, db, "Perintis")
	a := seedSiswa(t, db, "Adit", &sg.SanggaID)
	asing := seedSiswa(t, db, "Zulfa", &lain.SanggaID)
	tanpaSangga := seedSiswa(t, db, "Yani", nil)

	_, err := svc.SubmitBatch(tanggalUji(), sg.SanggaID, []EntriPresensi{
		{SiswaID: a.SiswaID, Status: model.StatusHadir},
		{SiswaID: asing.SiswaID, Status: model.StatusHadir},
		{SiswaID: tanpaSangga.SiswaID, Status: model.StatusHadir},
	})
	require.Error(t, err)

	var mismatch *RosterMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, sg.SanggaID, mismatch.SanggaID)
	assert.Len(t, mismatch.SiswaIDs, 2)

	// batch ditolak utuh: entri valid pun tidak boleh tersimpan
	var n int64
	require.NoError(t, db.Model(&model.PresensiModel{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestSubmitBatchStatusTidakDikenal(t *testing.T) {
	db := newTestDB(t)
	svc := NewPresensiService(db)

	sg := seedSangga(t, db, "Perintis")
	a := seedSiswa(t, db, "Adit", &sg.SanggaID)

	_, err := svc.SubmitBatch(tanggalUji(), sg.SanggaID, []EntriPresensi{
		{SiswaID: a.SiswaID, Status: model.StatusPresensi("bolos")},
	})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, a.SiswaID.String())
}

func TestSubmitBatchSanggaTidakAda(t *testing.T) {
	db := newTestDB(t)
	svc := NewPresensiService(db)

	_, err := svc.SubmitBatch(tanggalUji(), uuid.New(), []EntriPresensi{
		{SiswaID: uuid.New(), Status: model.StatusHadir},
	})
	require.ErrorIs(t, err, ErrSanggaNotFound)
}

func TestSubmitBatchPayloadKosong(t *testing.T) {
	db := newTestDB(t)
	svc := NewPresensiService(db)

	_, err := svc.SubmitBatch(time.Time{}, uuid.Nil, nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "tanggal")
	assert.Contains(t, verr.Fields, "sangga_id")
	assert.Contains(t, verr.Fields, "entries")
}

func TestListBySiswaRentang(t *testing.T) {
	db := newTestDB(t)
	svc := NewPresensiService(db)

	sg := seedSangga(t, db, "Perintis")
	a := seedSiswa(t, db, "Adit", &sg.SanggaID)

	for hari := 1; hari <= 5; hari++ {
		tgl := time.Date(2025, 3, hari, 0, 0, 0, 0, time.UTC)
		_, err := svc.SubmitBatch(tgl, sg.SanggaID, []EntriPresensi{
			{SiswaID: a.SiswaID, Status: model.StatusHadir},
		})
		require.NoError(t, err)
	}

	rows, err := svc.ListBySiswa(a.SiswaID,
		time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, rows, 3, "rentang [start, end) eksklusif di ujung kanan")
}
