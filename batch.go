package net2draw

/* Drawing batch stuff */

// BatchItem is one colored polygon of a batch
type BatchItem struct {
	Color Color
	Geom  Polygon
}

// GeomBatch is an ordered list of colored polygons produced by one render
// call. Order matters: later items draw on top of earlier ones.
type GeomBatch struct {
	items []BatchItem
}

func NewGeomBatch() *GeomBatch {
	return &GeomBatch{}
}

func (batch *GeomBatch) Push(color Color, poly Polygon) {
	batch.items = append(batch.items, BatchItem{Color: color, Geom: poly})
}

func (batch *GeomBatch) Extend(color Color, polys []Polygon) {
	for _, poly := range polys {
		batch.Push(color, poly)
	}
}

func (batch *GeomBatch) Append(other *GeomBatch) {
	batch.items = append(batch.items, other.items...)
}

func (batch *GeomBatch) Items() []BatchItem {
	return batch.items
}

func (batch *GeomBatch) Len() int {
	return len(batch.items)
}

// ScaleAlpha multiplies alpha of every item, used to fade underpasses
func (batch *GeomBatch) ScaleAlpha(scale float64) {
	for i := range batch.items {
		batch.items[i].Color.Alpha *= scale
	}
}
