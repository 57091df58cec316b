package model

import (
	"image/color"
	"sync/atomic"
)

// ID identifies an entity within the IDSource that issued it.
type ID uint64

// IDSource hands out entity IDs. Each scene owns its own source, so IDs are only
// unique within that scene.
type IDSource struct {
	last atomic.Uint64
}

func (s *IDSource) Next() ID {
	return ID(s.last.Add(1))
}

// ColorNone hides an entity from the map view.
var ColorNone = color.RGBA{}

type Entity struct {
	ID       ID
	MapColor color.RGBA
}

func NewEntity(ids *IDSource, mapColor color.RGBA) *Entity {
	return &Entity{ID: ids.Next(), MapColor: mapColor}
}
