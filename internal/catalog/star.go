// Package catalog holds the star data model, the embedded bright-star
// catalog, CSV loading, and B-V color conversion.
package catalog

// Star is a cataloged star. Right ascension is stored in decimal hours
// (0-24, J2000), the convention of the source catalog; declination in
// degrees. Stars are immutable once loaded.
type Star struct {
	ID            int     `json:"id"`
	Name          string  `json:"name,omitempty"`
	RAHours       float64 `json:"ra"`
	DecDeg        float64 `json:"dec"`
	Mag           float64 `json:"mag"`
	ColorIndex    float64 `json:"colorIndex"`
	Constellation string  `json:"constellation,omitempty"`
	DistanceLY    float64 `json:"distance,omitempty"`
	SpectralType  string  `json:"spectralType,omitempty"`
}

// RADeg returns the right ascension converted to degrees.
func (s Star) RADeg() float64 {
	return s.RAHours * 15
}

// Catalog is a collection of stars, already filtered by magnitude at load
// time. The sky core applies only the horizon filter on top of it.
type Catalog struct {
	Stars []Star
}

// Len reports the number of stars.
func (c Catalog) Len() int {
	return len(c.Stars)
}
