package grid

import (
	"reflect"
	"testing"
)

func TestGetGridCoords(t *testing.T) {
	tests := []struct {
		index int
		cols  int
		wantX int
		wantY int
	}{
		{0, Width, 0, 0},
		{1, Width, 1, 0},
		{8, Width, 8, 0},
		{9, Width, 0, 1},
		{10, Width, 1, 1},
		{40, Width, 4, 4},
		{80, Width, 8, 8},

		{0, 64, 0, 0},
		{65, 64, 1, 1},
	}

	for _, tc := range tests {
		gotX, gotY := GetGridCoords(tc.index, tc.cols)
		if gotX != tc.wantX || gotY != tc.wantY {
			t.Errorf("GetGridCoords(%d, %d) = (%d, %d); want (%d, %d)", tc.index, tc.cols, gotX, gotY, tc.wantX, tc.wantY)
		}
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		in     int
		want   int
		wantOK bool
	}{
		{-10, 0, false},
		{-1, 0, false},
		{0, 0, true},
		{1, 1, true},
		{80, 80, true},
		{81, 0, false},
		{90, 0, false},
	}
	for _, tc := range tests {
		got, ok := Check(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("Check(%d) = (%d, %t); want (%d, %t)", tc.in, got, ok, tc.want, tc.wantOK)
		}
		if InRange(tc.in) != tc.wantOK {
			t.Errorf("InRange(%d) = %t; want %t", tc.in, !tc.wantOK, tc.wantOK)
		}
	}
}

func TestOffsetsOrder(t *testing.T) {
	want := [8]int{1, -1, 9, -9, 10, -8, 8, -10}
	if Offsets != want {
		t.Fatalf("Offsets = %v; want %v", Offsets, want)
	}
}

func TestNeighbors(t *testing.T) {
	tests := []struct {
		name string
		cell int
		want []int
	}{
		{"first cell is a real cell", 0, []int{1, 9, 10, 8}},
		{"last cell", 80, []int{79, 71, 72, 70}},
		{"interior cell has all eight", 40, []int{41, 39, 49, 31, 50, 32, 48, 30}},
		// Linear addressing: 9's -1 and -10 land on the previous row / below zero.
		{"row start wraps to previous row", 9, []int{10, 8, 18, 0, 19, 1, 17}},
		{"top edge", 4, []int{5, 3, 13, 14, 12}},
		{"bottom edge", 76, []int{77, 75, 67, 68, 66}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Neighbors(tc.cell)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Neighbors(%d) = %v; want %v", tc.cell, got, tc.want)
			}
		})
	}
}

func TestNeighborsNeverOutOfRange(t *testing.T) {
	for c := 0; c < Cells; c++ {
		got := Neighbors(c)
		want := 0
		for _, off := range Offsets {
			if InRange(c + off) {
				want++
			}
		}
		if len(got) != want {
			t.Errorf("cell %d: %d neighbours, want %d", c, len(got), want)
		}
		for _, n := range got {
			if !InRange(n) {
				t.Errorf("cell %d: neighbour %d out of range", c, n)
			}
		}
	}
}
