package health

import (
	"context"
	"errors"
	"testing"

	"plancompare-backend/internal/catalog"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func TestStatusMemory(t *testing.T) {
	svc := NewService(nil, catalog.NewMemoryRepo(catalog.DefaultCatalog()))
	st := svc.Status(context.Background())
	if !st.OK || st.Database != "memory" {
		t.Fatalf("unexpected status %+v", st)
	}
	if st.Plans["internet"] == 0 {
		t.Fatalf("expected internet plan count, got %v", st.Plans)
	}
}

func TestStatusDatabase(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		wantOK bool
		wantDB string
	}{
		{"up", nil, true, "up"},
		{"down", errors.New("refused"), false, "unreachable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(stubPinger{err: tc.err}, nil)
			st := svc.Status(context.Background())
			if st.OK != tc.wantOK || st.Database != tc.wantDB {
				t.Fatalf("got %+v", st)
			}
		})
	}
}
