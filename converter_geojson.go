package net2draw

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
)

// BatchToGeoJSON returns GeoJSON representation of a drawing batch, one
// polygon feature per item with its fill color attached. Meant for debugging
// dumps, the presentation layer consumes batches directly.
func BatchToGeoJSON(batch *GeomBatch) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, item := range batch.Items() {
		ring := item.Geom.Ring()
		coords := make([][]float64, 0, len(ring))
		for _, pt := range ring {
			coords = append(coords, []float64{pt.X(), pt.Y()})
		}
		feature := geojson.NewPolygonFeature([][][]float64{coords})
		feature.SetProperty("fill", item.Color.Hex())
		feature.SetProperty("fill-opacity", item.Color.Alpha)
		fc.AddFeature(feature)
	}
	return fc
}

// OutlineToGeoJSON returns GeoJSON representation of outline segments
func OutlineToGeoJSON(segments []orb.LineString) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, seg := range segments {
		coords := make([][]float64, 0, len(seg))
		for _, pt := range seg {
			coords = append(coords, []float64{pt.X(), pt.Y()})
		}
		fc.AddFeature(geojson.NewLineStringFeature(coords))
	}
	return fc
}
