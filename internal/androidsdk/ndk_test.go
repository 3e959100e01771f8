package androidsdk

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestInstalledNDKs(t *testing.T) {
	sdk := t.TempDir()
	for _, dir := range []string{"25.2.9519653", "26.3.11579264", "26.1.10909125", "sources"} {
		if err := os.MkdirAll(filepath.Join(sdk, "ndk", dir), 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(sdk, "ndk", "README"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := InstalledNDKs(sdk)
	if err != nil {
		t.Fatalf("InstalledNDKs() error = %v", err)
	}
	want := []string{"26.3.11579264", "26.1.10909125", "25.2.9519653"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InstalledNDKs() = %v, want %v", got, want)
	}
}

func TestInstalledNDKsNoDirectory(t *testing.T) {
	got, err := InstalledNDKs(t.TempDir())
	if err != nil {
		t.Fatalf("InstalledNDKs() error = %v", err)
	}
	if got != nil {
		t.Errorf("InstalledNDKs() = %v, want nil", got)
	}
}

func TestInstalledNDKsEmptyRoot(t *testing.T) {
	got, err := InstalledNDKs("")
	if err != nil {
		t.Fatalf("InstalledNDKs() error = %v", err)
	}
	if got != nil {
		t.Errorf("InstalledNDKs() = %v, want nil", got)
	}
}
