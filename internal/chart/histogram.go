package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Bins is the number of histogram buckets on the dashboard charts.
const Bins = 10

var (
	GoldColor   = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
	PointsColor = color.RGBA{R: 0x00, G: 0xD9, B: 0xFF, A: 0xFF}
)

// Histogram renders values as a PNG histogram. An empty sample yields an empty plot.
func Histogram(title, xLabel string, values []float64, fill color.Color) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Agents"

	if len(values) > 0 {
		h, err := plotter.NewHist(plotter.Values(values), Bins)
		if err != nil {
			return nil, fmt.Errorf("build histogram: %w", err)
		}
		h.FillColor = fill
		p.Add(h)
	}

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", title, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode %s: %w", title, err)
	}
	return buf.Bytes(), nil
}

// Cache holds the latest rendered gold and points charts.
type Cache struct {
	mu      sync.RWMutex
	images  map[string][]byte
	updated time.Time
}

// NewCache creates an empty chart cache.
func NewCache() *Cache {
	return &Cache{images: make(map[string][]byte)}
}

// Refresh re-renders both charts from per-agent columns.
func (c *Cache) Refresh(gold, points []float64) error {
	goldPNG, err := Histogram("Gold Distribution", "Gold", gold, GoldColor)
	if err != nil {
		return err
	}
	pointsPNG, err := Histogram("Points Distribution", "Points", points, PointsColor)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.images["gold"] = goldPNG
	c.images["points"] = pointsPNG
	c.updated = time.Now()
	c.mu.Unlock()
	return nil
}

// Get returns the named chart ("gold" or "points") if it has been rendered.
func (c *Cache) Get(name string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.images[name]
	return img, ok
}

// Updated reports when the charts were last rendered.
func (c *Cache) Updated() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.updated
}
