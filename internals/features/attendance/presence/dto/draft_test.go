package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presensiku_backend/internals/features/attendance/presence/model"
)

func TestNewDraftMenjagaUrutanRoster(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	d := NewDraft([]uuid.UUID{a, b, c, b}) // duplikat diabaikan

	req := d.ToSubmitRequest("2025-03-10", uuid.New())
	require.Len(t, req.Entries, 3)
	assert.Equal(t, a, req.Entries[0].SiswaID)
	assert.Equal(t, b, req.Entries[1].SiswaID)
	assert.Equal(t, c, req.Entries[2].SiswaID)
	for _, e := range req.Entries {
		assert.Equal(t, string(model.StatusUnset), e.Status)
	}
}

func TestDraftSetStatus(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	d := NewDraft([]uuid.UUID{a, b})

	d.SetStatus(a, model.StatusIzin, "sakit")
	d.SetStatus(uuid.New(), model.StatusHadir, "") // di luar roster, diabaikan

	req := d.ToSubmitRequest("2025-03-10", uuid.New())
	assert.Equal(t, string(model.StatusIzin), req.Entries[0].Status)
	assert.Equal(t, "sakit", req.Entries[0].Keterangan)
	assert.Equal(t, string(model.StatusUnset), req.Entries[1].Status)
	require.Len(t, req.Entries, 2)
}

func TestDraftMarkAllHadirLaluClearAll(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	d := NewDraft(ids)

	d.SetStatus(ids[1], model.StatusAlfa, "tanpa kabar")
	d.MarkAllHadir()
	req := d.ToSubmitRequest("2025-03-10", uuid.New())
	for _, e := range req.Entries {
		assert.Equal(t, string(model.StatusHadir), e.Status)
		assert.Empty(t, e.Keterangan)
	}

	d.ClearAll()
	req = d.ToSubmitRequest("2025-03-10", uuid.New())
	for _, e := range req.Entries {
		assert.Equal(t, string(model.StatusUnset), e.Status)
	}
}
