package storage

import (
	"path/filepath"
	"testing"
)

func tempDataFile(t *testing.T) *DataFile {
	t.Helper()
	f, err := NewDataFile(filepath.Join(t.TempDir(), "data", "portfolioData.ts"))
	if err != nil {
		t.Fatalf("NewDataFile: %v", err)
	}
	return f
}

func TestWriteAndRead(t *testing.T) {
	f := tempDataFile(t)
	content := []byte("export const portfolioData: PortfolioData = {};\n")
	if err := f.Write(content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := f.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content mismatch: got %q", got)
	}
}

func TestWriteCreatesParentDir(t *testing.T) {
	f := tempDataFile(t)
	if f.Exists() {
		t.Fatal("file should not exist before first write")
	}
	if err := f.Write([]byte("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !f.Exists() {
		t.Error("file should exist after write")
	}
}

func TestWriteOverwrites(t *testing.T) {
	f := tempDataFile(t)
	_ = f.Write([]byte("first"))
	if err := f.Write([]byte("second")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, _ := f.Read()
	if string(got) != "second" {
		t.Errorf("content = %q, want overwrite", got)
	}
}

func TestReadMissing(t *testing.T) {
	f := tempDataFile(t)
	if _, err := f.Read(); err == nil {
		t.Error("expected error reading missing file")
	}
}
