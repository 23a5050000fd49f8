package table

import (
	"reflect"
	"testing"
)

func TestCharacterSet_Complement(t *testing.T) {
	set := func(ranges ...Range) CharacterSet {
		return CharacterSet{Ranges: ranges}
	}

	tests := []struct {
		caption    string
		set        CharacterSet
		complement CharacterSet
	}{
		{
			caption:    "the complement of the empty set is the universal range",
			set:        set(),
			complement: set(Range{Min: 0x00, Max: 0xff}),
		},
		{
			caption:    "the complement of the universal range is empty",
			set:        set(Range{Min: 0x00, Max: 0xff}),
			complement: set(),
		},
		{
			caption:    "an interior range splits the domain in two",
			set:        set(Range{Min: 'a', Max: 'z'}),
			complement: set(Range{Min: 0x00, Max: 'a' - 1}, Range{Min: 'z' + 1, Max: 0xff}),
		},
		{
			caption:    "a range starting at the lower bound leaves one gap",
			set:        set(Range{Min: 0x00, Max: 0x1f}),
			complement: set(Range{Min: 0x20, Max: 0xff}),
		},
		{
			caption:    "a range ending at the upper bound leaves one gap",
			set:        set(Range{Min: 0x80, Max: 0xff}),
			complement: set(Range{Min: 0x00, Max: 0x7f}),
		},
		{
			caption:    "gaps between ranges become complement ranges",
			set:        set(Range{Min: '0', Max: '9'}, Range{Min: 'A', Max: 'Z'}, Range{Min: 'a', Max: 'z'}),
			complement: set(Range{Min: 0x00, Max: '0' - 1}, Range{Min: '9' + 1, Max: 'A' - 1}, Range{Min: 'Z' + 1, Max: 'a' - 1}, Range{Min: 'z' + 1, Max: 0xff}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			c := tt.set.Complement()
			if !reflect.DeepEqual(c.Ranges, tt.complement.Ranges) {
				t.Fatalf("unexpected complement; want: %v, got: %v", tt.complement.Ranges, c.Ranges)
			}
		})
	}
}

func TestCharacterSet_Complement_RoundTrip(t *testing.T) {
	set := CharacterSet{Ranges: []Range{
		{Min: 0x09, Max: 0x0a},
		{Min: ' ', Max: ' '},
		{Min: '0', Max: '9'},
		{Min: 0xf0, Max: 0xff},
	}}
	c := set.Complement()
	for i := 0; i <= CharMax; i++ {
		b := byte(i)
		if set.Includes(b) == c.Includes(b) {
			t.Fatalf("character %#x is in both or neither of the set and its complement", b)
		}
	}
	if cc := c.Complement(); !reflect.DeepEqual(cc, set) {
		t.Fatalf("double complement differs from the original; want: %v, got: %v", set, cc)
	}
}

func TestCharacterSet_MostCompactRepresentation(t *testing.T) {
	set := func(ranges ...Range) CharacterSet {
		return CharacterSet{Ranges: ranges}
	}

	tests := []struct {
		caption string
		set     CharacterSet
		rep     CharacterSet
		direct  bool
	}{
		{
			caption: "a single range keeps its direct form",
			set:     set(Range{Min: 'a', Max: 'z'}),
			rep:     set(Range{Min: 'a', Max: 'z'}),
			direct:  true,
		},
		{
			caption: "a two-range complement beats a three-range set",
			set:     set(Range{Min: 0x00, Max: '/'}, Range{Min: ':', Max: 0x60}, Range{Min: '{', Max: 0xff}),
			rep:     set(Range{Min: '0', Max: '9'}, Range{Min: 'a', Max: 'z'}),
			direct:  false,
		},
		{
			caption: "a tie favors the direct form",
			set:     set(Range{Min: 0x00, Max: 0x7f}),
			rep:     set(Range{Min: 0x00, Max: 0x7f}),
			direct:  true,
		},
		{
			caption: "the universal range never collapses to its empty complement",
			set:     set(Range{Min: 0x00, Max: 0xff}),
			rep:     set(Range{Min: 0x00, Max: 0xff}),
			direct:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			rep, direct := tt.set.MostCompactRepresentation()
			if direct != tt.direct {
				t.Fatalf("unexpected representation choice; want: %v, got: %v", tt.direct, direct)
			}
			if !reflect.DeepEqual(rep.Ranges, tt.rep.Ranges) {
				t.Fatalf("unexpected representation; want: %v, got: %v", tt.rep.Ranges, rep.Ranges)
			}
		})
	}
}
