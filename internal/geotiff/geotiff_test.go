package geotiff

import (
	"math"
	"testing"
)

func TestClearNoData(t *testing.T) {
	buf := []float32{1, -math.MaxFloat32, 2.5, -math.MaxFloat32, -3}
	ClearNoData(buf)

	want := []float32{1, 0, 2.5, 0, -3}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %f, want %f", i, buf[i], want[i])
		}
	}
}

func TestDiff(t *testing.T) {
	a := []float32{5, 3, 1}
	if err := Diff(a, []float32{1, 3, 2}); err != nil {
		t.Fatal(err)
	}
	want := []float32{4, 0, -1}
	for i := range want {
		if a[i] != want[i] {
			t.Errorf("a[%d] = %f, want %f", i, a[i], want[i])
		}
	}

	if err := Diff(a, []float32{1}); err == nil {
		t.Error("expected error for mismatched windows")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, _, err := Read("/nonexistent/dem.tif", Window{}); err == nil {
		t.Error("expected error opening missing file")
	}
}
