package util

import (
	"testing"
)

func TestOrderedSlice(t *testing.T) {
	s := OrderedSlice([]string{"cfg3", "cfg1", "cfg2"})

	expected := []string{"cfg1", "cfg2", "cfg3"}
	if len(s) != len(expected) {
		t.Fatal("unexpected number of values")
	}
	for i := range s {
		if s[i] != expected[i] {
			t.Fatalf("unexpected value at index %d", i)
		}
	}
}

func TestOrderedKeys(t *testing.T) {
	m := map[string]bool{"util_wfifo": true, "axi_dmac": false, "axi_ad9361": true}

	expected := []string{"axi_ad9361", "axi_dmac", "util_wfifo"}
	keys := OrderedKeys(m)
	if len(keys) != len(expected) {
		t.Fatal("unexpected number of keys")
	}
	for i := range keys {
		if keys[i] != expected[i] {
			t.Fatalf("unexpected key at index %d", i)
		}
	}
}

func TestOrderedEntries(t *testing.T) {
	m := map[int]string{5: "value", -4: "added", 4: "some"}

	expected := []OrderedMapEntry[int, string]{
		{Key: -4, Value: "added"},
		{Key: 4, Value: "some"},
		{Key: 5, Value: "value"},
	}

	entries := OrderedEntries(m)
	if len(entries) != len(expected) {
		t.Fatal("unexpected number of entries")
	}
	for i := range entries {
		if entries[i] != expected[i] {
			t.Fatalf("unexpected entry at index %d", i)
		}
	}
}
