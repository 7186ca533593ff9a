package util

import (
	"strconv"
	"strings"
	"testing"
)

func TestMappedSlice(t *testing.T) {
	r := []int{123, 44, -4}
	m := MappedSlice(r, func(v int) string { return strconv.Itoa(v) })

	expected := []string{"123", "44", "-4"}
	if len(m) != len(expected) {
		t.Fatal("unexpected result size")
	}
	for i := range m {
		if m[i] != expected[i] {
			t.Fatalf("unexpected value at index %d", i)
		}
	}
}

func TestFilteredSlice(t *testing.T) {
	r := []string{"cfg1.tcl", "readme.md", "cfg2.tcl"}
	f := FilteredSlice(r, func(v string) bool { return strings.HasSuffix(v, ".tcl") })

	expected := []string{"cfg1.tcl", "cfg2.tcl"}
	if len(f) != len(expected) {
		t.Fatal("unexpected result size")
	}
	for i := range f {
		if f[i] != expected[i] {
			t.Fatalf("unexpected value at index %d", i)
		}
	}
}
