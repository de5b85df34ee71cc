// Package almanac maps seed numbers through the gardener's almanac chain
// (seed, soil, fertilizer, water, light, temperature, humidity, location)
// to find the lowest location number.
package almanac

import (
	"fmt"
	"strconv"
	"strings"
)

// MapType identifies one stage of the almanac chain.
type MapType uint8

const (
	SeedToSoil MapType = iota
	SoilToFertilizer
	FertilizerToWater
	WaterToLight
	LightToTemp
	TempToHumidity
	HumidityToLocation
)

var mapTypeNames = map[string]MapType{
	"seed-to-soil":            SeedToSoil,
	"soil-to-fertilizer":      SoilToFertilizer,
	"fertilizer-to-water":     FertilizerToWater,
	"water-to-light":          WaterToLight,
	"light-to-temperature":    LightToTemp,
	"temperature-to-humidity": TempToHumidity,
	"humidity-to-location":    HumidityToLocation,
}

// ParseMapType reads a mapping header like "seed-to-soil map:".
func ParseMapType(line string) (MapType, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ":", ""))
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty mapping header")
	}
	mt, ok := mapTypeNames[fields[0]]
	if !ok {
		return 0, fmt.Errorf("unknown mapping type %q", fields[0])
	}
	return mt, nil
}

// Range is a half-open interval [Start, End).
type Range struct {
	Start, End uint64
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v uint64) bool {
	return v >= r.Start && v < r.End
}

// Size is the number of values the range covers.
func (r Range) Size() uint64 {
	return r.End - r.Start
}

// Mapping is one stage of the chain. Src and Dst are parallel: a source
// value in Src[i] maps to the value at the same offset in Dst[i].
type Mapping struct {
	Type MapType
	Src  []Range
	Dst  []Range
}

// ParseMapping reads a mapping block: a header line followed by
// "dest src length" triples.
func ParseMapping(block string) (Mapping, error) {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	if len(lines) == 0 {
		return Mapping{}, fmt.Errorf("empty mapping block")
	}

	mt, err := ParseMapType(lines[0])
	if err != nil {
		return Mapping{}, err
	}

	mapping := Mapping{Type: mt}
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return Mapping{}, fmt.Errorf("malformed mapping row %q", line)
		}
		var nums [3]uint64
		for i := 0; i < 3; i++ {
			n, err := strconv.ParseUint(fields[i], 10, 64)
			if err != nil {
				return Mapping{}, fmt.Errorf("malformed mapping row %q: %w", line, err)
			}
			nums[i] = n
		}
		mapping.Dst = append(mapping.Dst, Range{Start: nums[0], End: nums[0] + nums[2]})
		mapping.Src = append(mapping.Src, Range{Start: nums[1], End: nums[1] + nums[2]})
	}
	return mapping, nil
}

// Dest maps a source value through the stage. Unmapped values pass
// through unchanged.
func (m Mapping) Dest(src uint64) uint64 {
	for i, r := range m.Src {
		if r.Contains(src) {
			return m.Dst[i].Start + (src - r.Start)
		}
	}
	return src
}

// Almanac is the parsed puzzle input: the seed list plus every stage of
// the chain in order.
type Almanac struct {
	Seeds    []uint64
	Mappings [7]Mapping
}

// Parse reads the full almanac text: a "seeds:" line followed by blank
// line separated mapping blocks.
func Parse(text string) (*Almanac, error) {
	blocks := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")
	if len(blocks) == 0 {
		return nil, fmt.Errorf("empty almanac")
	}

	seeds, err := parseSeeds(strings.TrimSpace(blocks[0]))
	if err != nil {
		return nil, err
	}

	almanac := &Almanac{Seeds: seeds}
	for _, block := range blocks[1:] {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		mapping, err := ParseMapping(block)
		if err != nil {
			return nil, err
		}
		almanac.Mappings[mapping.Type] = mapping
	}
	return almanac, nil
}

func parseSeeds(line string) ([]uint64, error) {
	key, rest, found := strings.Cut(line, ": ")
	if !found || key != "seeds" {
		return nil, fmt.Errorf("malformed seeds line %q", line)
	}

	var seeds []uint64
	for _, field := range strings.Fields(rest) {
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			continue
		}
		seeds = append(seeds, n)
	}
	return seeds, nil
}

// Location runs a seed through every stage in order.
func (a *Almanac) Location(seed uint64) uint64 {
	v := seed
	for _, m := range a.Mappings {
		v = m.Dest(v)
	}
	return v
}

// SeedLocations maps every seed to its location.
func (a *Almanac) SeedLocations() []uint64 {
	locations := make([]uint64, len(a.Seeds))
	for i, seed := range a.Seeds {
		locations[i] = a.Location(seed)
	}
	return locations
}

// LowestLocation is the part-one answer: the smallest location any seed
// maps to.
func (a *Almanac) LowestLocation() (uint64, error) {
	if len(a.Seeds) == 0 {
		return 0, fmt.Errorf("almanac has no seeds")
	}
	lowest := a.Location(a.Seeds[0])
	for _, seed := range a.Seeds[1:] {
		if loc := a.Location(seed); loc < lowest {
			lowest = loc
		}
	}
	return lowest, nil
}

// SeedRanges reinterprets the seed list as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("seed list has odd length %d", len(a.Seeds))
	}
	ranges := make([]Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		ranges = append(ranges, Range{
			Start: a.Seeds[i],
			End:   a.Seeds[i] + a.Seeds[i+1],
		})
	}
	return ranges, nil
}

// TotalRangeSize is the number of seeds covered by the seed ranges,
// used to size progress reporting for the range search.
func TotalRangeSize(ranges []Range) uint64 {
	var total uint64
	for _, r := range ranges {
		total += r.Size()
	}
	return total
}
