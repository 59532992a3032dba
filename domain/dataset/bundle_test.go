package dataset

import (
	"testing"
)

func TestBundleAddColumn(t *testing.T) {
	b := NewBundle()
	if err := b.AddColumn("region", []string{"n", "s", "n"}); err != nil {
		t.Fatalf("AddColumn: %v", err)
	}
	if err := b.AddColumn("outcome", []string{"y", "n", "y"}); err != nil {
		t.Fatalf("AddColumn: %v", err)
	}
	if b.ColumnCount() != 2 {
		t.Errorf("ColumnCount = %d, want 2", b.ColumnCount())
	}
	if b.RowCount() != 3 {
		t.Errorf("RowCount = %d, want 3", b.RowCount())
	}
}

func TestBundleRejectsEmptyKey(t *testing.T) {
	b := NewBundle()
	if err := b.AddColumn("", []string{"x"}); err == nil {
		t.Error("expected error for empty key")
	}
	if err := b.AddColumn("  ", []string{"x"}); err == nil {
		t.Error("expected error for blank key")
	}
}

func TestBundleRejectsDuplicateKey(t *testing.T) {
	b := NewBundle()
	if err := b.AddColumn("region", []string{"n"}); err != nil {
		t.Fatal(err)
	}
	if err := b.AddColumn("region", []string{"s"}); err == nil {
		t.Error("expected error for duplicate key")
	}
}

func TestBundleRejectsRowMismatch(t *testing.T) {
	b := NewBundle()
	if err := b.AddColumn("a", []string{"x", "y"}); err != nil {
		t.Fatal(err)
	}
	if err := b.AddColumn("b", []string{"x"}); err == nil {
		t.Error("expected error for row count mismatch")
	}
}

func TestBundleFingerprint(t *testing.T) {
	a := NewBundle()
	_ = a.AddColumn("k", []string{"x", "y"})
	b := NewBundle()
	_ = b.AddColumn("k", []string{"x", "y"})
	c := NewBundle()
	_ = c.AddColumn("k", []string{"x", "z"})

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("identical bundles should share a fingerprint")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("different bundles should not share a fingerprint")
	}
	if a.Fingerprint().IsEmpty() {
		t.Error("fingerprint should not be empty")
	}
}
