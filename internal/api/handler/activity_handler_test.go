package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/careledger/clinic-api/internal/core/domain"
)

func TestActivityHandler_List(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubActivity{entries: []domain.ActivityLog{
		{ID: 2, DoctorUsername: "dr.who", Action: "Added outcome for Jane in TB", Timestamp: now},
		{ID: 1, DoctorUsername: "dr.who", Action: "Enrolled Jane in TB", Timestamp: now.Add(-time.Minute)},
	}}
	h := NewActivityHandler(stub)

	c, rec := newContext(t, http.MethodGet, "/logs", "", "dr.who")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decode[[]map[string]any](t, rec)
	if len(resp) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp))
	}
	if resp[0]["doctor"] != "dr.who" || resp[0]["action"] != "Added outcome for Jane in TB" {
		t.Fatalf("unexpected first entry: %+v", resp[0])
	}
	if resp[0]["timestamp"] != "2026-05-01T12:00:00Z" {
		t.Fatalf("unexpected timestamp: %v", resp[0]["timestamp"])
	}
}

func TestActivityHandler_List_StoreError(t *testing.T) {
	boom := errors.New("db down")
	h := NewActivityHandler(&stubActivity{err: boom})

	c, _ := newContext(t, http.MethodGet, "/logs", "", "dr.who")
	if err := h.List(c); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}
