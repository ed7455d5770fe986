package chart

import (
	"bytes"
	"testing"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestHistogram_PNG(t *testing.T) {
	img, err := Histogram("Gold Distribution", "Gold", []float64{100, 250, 250, 900, 1200}, GoldColor)
	if err != nil {
		t.Fatalf("histogram: %v", err)
	}
	if !bytes.HasPrefix(img, pngMagic) {
		t.Error("expected PNG output")
	}
}

func TestHistogram_EmptyAndSingle(t *testing.T) {
	for name, values := range map[string][]float64{
		"empty":  nil,
		"single": {42},
	} {
		t.Run(name, func(t *testing.T) {
			img, err := Histogram("Points Distribution", "Points", values, PointsColor)
			if err != nil {
				t.Fatalf("histogram: %v", err)
			}
			if !bytes.HasPrefix(img, pngMagic) {
				t.Error("expected PNG output")
			}
		})
	}
}

func TestCache_Refresh(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get("gold"); ok {
		t.Fatal("new cache should be empty")
	}
	if !c.Updated().IsZero() {
		t.Error("new cache should have zero update time")
	}

	if err := c.Refresh([]float64{1000, 800}, []float64{5, 12}); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	for _, name := range []string{"gold", "points"} {
		img, ok := c.Get(name)
		if !ok || !bytes.HasPrefix(img, pngMagic) {
			t.Errorf("%s chart missing after refresh", name)
		}
	}
	if _, ok := c.Get("bank"); ok {
		t.Error("unknown chart should not exist")
	}
	if c.Updated().IsZero() {
		t.Error("refresh should set update time")
	}
}
