package gradient

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseChannels(t *testing.T) {
	var tests = []struct {
		s  string
		ch Channels
		str string
	}{
		{"hsva", ChannelsHSVA, "hsva"},
		{"hsv", ChannelsHSV, "hsv"},
		{"a", ChannelA, "a"},
		{"avh", ChannelA | ChannelV | ChannelH, "hva"},
		{"rgbhsva", ChannelsHSVA, "hsva"},
		{"rgb", 0, "-"},
		{"-", 0, "-"},
		{"", 0, "-"},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			ch, err := ParseChannels(tt.s)
			test.Error(t, err)
			test.T(t, ch, tt.ch)
			test.String(t, ch.String(), tt.str)
		})
	}

	_, err := ParseChannels("hsx")
	test.That(t, err != nil, "expected error")
}

func TestChannelsHas(t *testing.T) {
	ch := ChannelH | ChannelA
	test.That(t, ch.Has(ChannelH))
	test.That(t, !ch.Has(ChannelsHSV))
	test.That(t, ch.HasAny(ChannelsHSV))
	test.That(t, !ChannelA.HasAny(ChannelsHSV))
}

func TestControlPointSetPos(t *testing.T) {
	p := NewControlPoint(1.5, ChannelsHSV, Color{})
	test.Float(t, p.Pos, 1.0)
	p.SetPos(-0.5)
	test.Float(t, p.Pos, 0.0)
	p.SetPos(0.25)
	test.Float(t, p.Pos, 0.25)
}

func TestDefaultControlPoints(t *testing.T) {
	s := DefaultControlPoints()
	test.T(t, s.Len(), 3)
	test.That(t, s.Sorted())
	test.Error(t, s.Validate())

	test.Float(t, s.Get(0).Pos, 0.0)
	test.Float(t, s.Get(1).Pos, 0.4)
	test.Float(t, s.Get(2).Pos, 1.0)
	test.That(t, s.Get(0).Fixed && s.Get(2).Fixed && !s.Get(1).Fixed)
	test.T(t, s.Get(1).Channels, ChannelsHSV)
	test.T(t, s.Get(1).Color.RGBA(), RGBA{1.0, 0.4, 0.0, 1.0})
}

func TestControlPointsSort(t *testing.T) {
	a := NewControlPoint(0.5, ChannelsHSV, Color{})
	b := NewControlPoint(0.5, ChannelA, Color{})
	fixed := &ControlPoint{Pos: 1.0, Fixed: true, Channels: ChannelsHSVA}
	c := NewControlPoint(1.0, ChannelsHSV, Color{})
	s := NewControlPoints(fixed, a, b, c)

	var got []*ControlPoint
	for _, p := range s.All() {
		got = append(got, p)
	}
	test.T(t, got, []*ControlPoint{a, b, c, fixed})
	test.T(t, s.Index(b), 1)
	test.T(t, s.Index(&ControlPoint{}), -1)

	test.Error(t, s.SetPos(0, 0.75))
	test.That(t, !s.Sorted())
	s.Sort()
	test.T(t, s.Index(a), 2)
}

func TestControlPointsFixed(t *testing.T) {
	s := DefaultControlPoints()
	err := s.Remove(0)
	test.That(t, errors.Is(err, ErrFixed), "expected ErrFixed", err)
	err = s.SetPos(2, 0.5)
	test.That(t, errors.Is(err, ErrFixed), "expected ErrFixed", err)
	test.Error(t, s.SetPos(2, 1.0))
	test.That(t, s.Remove(5) != nil, "expected index error")

	test.Error(t, s.Remove(1))
	test.T(t, s.Len(), 2)
}

func TestControlPointsValidate(t *testing.T) {
	black := &ControlPoint{Pos: 0.0, Fixed: true, Channels: ChannelsHSVA}
	white := &ControlPoint{Pos: 1.0, Fixed: true, Channels: ChannelsHSV}
	s := NewControlPoints(black, white)
	err := s.Validate()
	test.That(t, errors.Is(err, ErrInconsistent), "alpha has one control point", err)

	s.Insert(NewControlPoint(0.5, ChannelA, Color{}))
	err = s.Validate()
	test.That(t, errors.Is(err, ErrInconsistent), "alpha does not reach 1.0", err)

	s.Insert(NewControlPoint(1.0, ChannelA, Color{}))
	test.Error(t, s.Validate())

	test.Error(t, s.SetPos(1, 0.25))
	err = s.Validate()
	test.That(t, errors.Is(err, ErrInconsistent), "unsorted", err)

	s = DefaultControlPoints()
	s.Insert(&ControlPoint{Pos: 0.5, Fixed: true, Channels: ChannelA})
	err = s.Validate()
	test.That(t, errors.Is(err, ErrFixed), "interior fixed point", err)
}

func TestControlPointsClone(t *testing.T) {
	s := DefaultControlPoints()
	clone := s.Clone()
	clone.Get(1).Color.H = 0.5
	test.That(t, s.Get(1).Color.H != 0.5, "clone shares points")
	test.T(t, clone.Len(), s.Len())
	test.T(t, len(s.Channel(ChannelA)), 2)
	test.T(t, len(s.Channel(ChannelH)), 3)
}
