package model

import (
	"database/sql/driver"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
)

// SRID for all stored geometries (WGS 84 longitude/latitude).
const srid = 4326

// Point wraps orb.Point with EWKB encoding so it can be stored in a
// PostGIS geometry(POINT,4326) column through GORM.
type Point struct {
	orb.Point
}

// GormDataType tells GORM the column type for migrations.
func (Point) GormDataType() string {
	return "geometry(POINT,4326)"
}

// Value implements driver.Valuer using EWKB with the WGS 84 SRID.
func (p Point) Value() (driver.Value, error) {
	return ewkb.Value(p.Point, srid).Value()
}

// Scan implements sql.Scanner for EWKB data returned by PostGIS.
func (p *Point) Scan(value any) error {
	return ewkb.Scanner(&p.Point).Scan(value)
}

// LineString wraps orb.LineString with EWKB encoding so it can be stored in
// a PostGIS geometry(LINESTRING,4326) column through GORM.
type LineString struct {
	orb.LineString
}

// GormDataType tells GORM the column type for migrations.
func (LineString) GormDataType() string {
	return "geometry(LINESTRING,4326)"
}

// Value implements driver.Valuer using EWKB with the WGS 84 SRID.
func (ls LineString) Value() (driver.Value, error) {
	return ewkb.Value(ls.LineString, srid).Value()
}

// Scan implements sql.Scanner for EWKB data returned by PostGIS.
func (ls *LineString) Scan(value any) error {
	return ewkb.Scanner(&ls.LineString).Scan(value)
}
