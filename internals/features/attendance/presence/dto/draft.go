package dto

import (
	"github.com/google/uuid"

	"presensiku_backend/internals/features/attendance/presence/model"
)

// DraftPresensi: daftar isian sementara per sangga sebelum disimpan.
// Murni in-memory, di-key siswa_id; urutan roster dipertahankan supaya
// form di sisi klien stabil.
type DraftPresensi struct {
	order   []uuid.UUID
	entries map[uuid.UUID]*EntriPresensiRequest
}

// NewDraft membuat draft kosong (semua status unset) untuk satu roster.
func NewDraft(rosterIDs []uuid.UUID) *DraftPresensi {
	d := &DraftPresensi{
		order:   make([]uuid.UUID, 0, len(rosterIDs)),
		entries: make(map[uuid.UUID]*EntriPresensiRequest, len(rosterIDs)),
	}
	for _, id := range rosterIDs {
		if _, ok := d.entries[id]; ok {
			continue
		}
		d.order = append(d.order, id)
		d.entries[id] = &EntriPresensiRequest{SiswaID: id}
	}
	return d
}

// SetStatus menimpa status (dan keterangan) satu siswa. Siswa di luar
// roster diabaikan; validasi keanggotaan terjadi saat submit.
func (d *DraftPresensi) SetStatus(siswaID uuid.UUID, status model.StatusPresensi, keterangan string) {
	if e, ok := d.entries[siswaID]; ok {
		e.Status = string(status)
		e.Keterangan = keterangan
	}
}

// MarkAllHadir menandai seluruh roster hadir (pola "tandai semua").
func (d *DraftPresensi) MarkAllHadir() {
	for _, e := range d.entries {
		e.Status = string(model.StatusHadir)
		e.Keterangan = ""
	}
}

// ClearAll mengembalikan seluruh roster ke unset.
func (d *DraftPresensi) ClearAll() {
	for _, e := range d.entries {
		e.Status = string(model.StatusUnset)
		e.Keterangan = ""
	}
}

// ToSubmitRequest mewujudkan draft jadi payload submit untuk satu
// (tanggal, sangga). Entri unset ikut dikirim: kontraknya handler
// menerima satu entri per anggota roster.
func (d *DraftPresensi) ToSubmitRequest(tanggal string, sanggaID uuid.UUID) SubmitPresensiRequest {
	entries := make([]EntriPresensiRequest, 0, len(d.order))
	for _, id := range d.order {
		entries = append(entries, *d.entries[id])
	}
	return SubmitPresensiRequest{
		Tanggal:  tanggal,
		SanggaID: sanggaID,
		Entries:  entries,
	}
}
