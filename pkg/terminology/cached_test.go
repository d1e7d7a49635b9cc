package terminology

import (
	"context"
	"errors"
	"testing"

	"github.com/gofhir/catalog/model"
	"github.com/gofhir/catalog/pkg/schema"
)

func TestCached(t *testing.T) {
	calls := 0
	fail := false
	inner := ProviderFunc(func(_ context.Context, _ string, _ schema.BindingStrength, c model.CodeValue) (bool, bool, error) {
		calls++
		if fail {
			return false, false, errors.New("terminology server down")
		}
		return c.Code == "yes", true, nil
	})
	c := NewCached(inner, 8)
	ctx := context.Background()

	for range 3 {
		ok, found, err := c.MemberOf(ctx, "http://example.org/vs|1.0", schema.StrengthRequired, model.CodeValue{Code: "yes"})
		if err != nil || !ok || !found {
			t.Fatalf("MemberOf() = %v, %v, %v", ok, found, err)
		}
	}
	if calls != 1 {
		t.Errorf("inner called %d times; want 1", calls)
	}
	if st := c.Stats(); st.Hits != 2 || st.Misses != 1 {
		t.Errorf("stats = %+v; want 2 hits, 1 miss", st)
	}

	fail = true
	for range 2 {
		if _, _, err := c.MemberOf(ctx, "http://example.org/vs", schema.StrengthRequired, model.CodeValue{Code: "no"}); err == nil {
			t.Fatal("expected provider error")
		}
	}
	if calls != 3 {
		t.Errorf("errors must not be cached: inner called %d times; want 3", calls)
	}

	c.Purge()
	fail = false
	c.MemberOf(ctx, "http://example.org/vs", schema.StrengthExample, model.CodeValue{Code: "yes"})
	if calls != 4 {
		t.Errorf("purge must drop answers: inner called %d times; want 4", calls)
	}
}
