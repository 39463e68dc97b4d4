package compressor

import "testing"

func TestCompressUniqueDeduplicatesIdenticalRows(t *testing.T) {
	// Two identical rows [1,2] and one distinct row [3,4].
	orig, err := NewOriginalTable([]int{1, 2, 1, 2, 3, 4}, 2)
	if err != nil {
		t.Fatalf("NewOriginalTable() error = %v", err)
	}

	tab := CompressUnique(orig)
	if len(tab.UniqueEntries) != 4 {
		t.Fatalf("len(UniqueEntries) = %d, want 4", len(tab.UniqueEntries))
	}
	if tab.RowNums[0] != tab.RowNums[1] {
		t.Errorf("identical rows got different row numbers: %v", tab.RowNums)
	}
	if tab.RowNums[2] == tab.RowNums[0] {
		t.Errorf("distinct row collapsed into the same row number: %v", tab.RowNums)
	}

	for row := 0; row < orig.RowCount; row++ {
		for col := 0; col < orig.ColCount; col++ {
			got, err := tab.Lookup(row, col)
			if err != nil {
				t.Fatalf("Lookup(%d,%d) error = %v", row, col, err)
			}
			want := orig.Entries[row*orig.ColCount+col]
			if got != want {
				t.Errorf("Lookup(%d,%d) = %d, want %d", row, col, got, want)
			}
		}
	}
}

func TestNewOriginalTableRejectsBadColCount(t *testing.T) {
	if _, err := NewOriginalTable([]int{1, 2, 3}, 2); err == nil {
		t.Error("expected an error for entries not a multiple of colCount")
	}
	if _, err := NewOriginalTable([]int{1, 2}, 0); err == nil {
		t.Error("expected an error for colCount <= 0")
	}
}
