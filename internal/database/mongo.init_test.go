// Test parse index tag từ struct model.
package database

import (
	"testing"
)

func TestParseIndexTag_Unique(t *testing.T) {
	entries := parseIndexTag("unique")
	if len(entries) != 1 {
		t.Fatalf("tag 'unique' phải cho 1 index, có %d", len(entries))
	}
	if _, ok := entries[0]["unique"]; !ok {
		t.Errorf("thiếu thuộc tính unique: %v", entries[0])
	}
}

func TestParseIndexTag_UniqueSparse(t *testing.T) {
	entries := parseIndexTag("unique,sparse")
	if len(entries) != 1 {
		t.Fatalf("tag 'unique,sparse' phải cho 1 index, có %d", len(entries))
	}
	entry := entries[0]
	if _, ok := entry["unique"]; !ok {
		t.Errorf("thiếu unique: %v", entry)
	}
	if _, ok := entry["sparse"]; !ok {
		t.Errorf("thiếu sparse: %v", entry)
	}
}

func TestParseIndexTag_SingleGiamDan(t *testing.T) {
	entries := parseIndexTag("single:-1")
	if len(entries) != 1 {
		t.Fatalf("tag 'single:-1' phải cho 1 index, có %d", len(entries))
	}
	if entries[0]["single"] != "-1" {
		t.Errorf("single phải mang giá trị -1, có: %v", entries[0])
	}
}

func TestParseIndexTag_Compound(t *testing.T) {
	entries := parseIndexTag("compound:user_status")
	if entries[0]["compound"] != "user_status" {
		t.Errorf("compound phải mang tên group, có: %v", entries[0])
	}
}

func TestParseIndexTag_NhieuIndex(t *testing.T) {
	entries := parseIndexTag("unique;single:-1")
	if len(entries) != 2 {
		t.Fatalf("hai index phân cách bởi ';' phải cho 2 entry, có %d", len(entries))
	}
}

func TestParseOrder(t *testing.T) {
	if parseOrder("single:-1") != -1 {
		t.Error("single:-1 phải cho order -1")
	}
	if parseOrder("single:1") != 1 {
		t.Error("single:1 phải cho order 1")
	}
	if parseOrder("unique") != 1 {
		t.Error("không chỉ định order thì mặc định 1")
	}
}
