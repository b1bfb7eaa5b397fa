package gradient

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Channels is a set of HSVA color channels that a control point constrains.
type Channels uint8

// Channel flags.
const (
	ChannelH Channels = 1 << iota
	ChannelS
	ChannelV
	ChannelA

	ChannelsHSV  = ChannelH | ChannelS | ChannelV
	ChannelsHSVA = ChannelsHSV | ChannelA
)

var channelOrder = [4]Channels{ChannelH, ChannelS, ChannelV, ChannelA}

// ParseChannels parses a channel mask such as "hsva", "hsv", or "a". The letters r, g, and b are ignored for compatibility with older gradient files that prefix masks with "rgb", and "-" denotes the empty mask.
func ParseChannels(s string) (Channels, error) {
	var ch Channels
	for _, c := range s {
		switch c {
		case 'h':
			ch |= ChannelH
		case 's':
			ch |= ChannelS
		case 'v':
			ch |= ChannelV
		case 'a':
			ch |= ChannelA
		case 'r', 'g', 'b', '-':
		default:
			return 0, fmt.Errorf("invalid channel '%c' in %q", c, s)
		}
	}
	return ch, nil
}

// Has returns true if all channels in c are present.
func (ch Channels) Has(c Channels) bool {
	return ch&c == c
}

// HasAny returns true if any channel in c is present.
func (ch Channels) HasAny(c Channels) bool {
	return ch&c != 0
}

func (ch Channels) String() string {
	if ch&ChannelsHSVA == 0 {
		return "-"
	}
	sb := strings.Builder{}
	for i, c := range channelOrder {
		if ch.Has(c) {
			sb.WriteByte("hsva"[i])
		}
	}
	return sb.String()
}

////////////////////////////////////////////////////////////////

// ControlPoint is a color anchored at a position in the gradient. Only the channels in Channels are constrained by the point, the others are interpolated through as if the point were absent. Fixed points mark the begin and end of the gradient and cannot be moved or removed, although their color can be changed.
type ControlPoint struct {
	Pos      float64
	Fixed    bool
	Channels Channels
	Color    Color
}

// NewControlPoint returns a movable control point at position pos ∈ [0,1].
func NewControlPoint(pos float64, channels Channels, color Color) *ControlPoint {
	p := &ControlPoint{
		Channels: channels,
		Color:    color,
	}
	p.SetPos(pos)
	return p
}

// SetPos sets the position clamped to [0,1]. The owning ControlPoints must be sorted afterwards.
func (p *ControlPoint) SetPos(f float64) {
	p.Pos = clamp01(f)
}

func (p *ControlPoint) String() string {
	fixed := ""
	if p.Fixed {
		fixed = " fixed"
	}
	return fmt.Sprintf("%g %v%v %v", p.Pos, p.Channels, fixed, p.Color)
}

////////////////////////////////////////////////////////////////

// ControlPoints is an ordered set of control points, sorted by position. Changing the position of a point is a two-phase operation: SetPos marks the set unsorted and Sort restores the order. Iterating an unsorted set panics.
type ControlPoints struct {
	points []*ControlPoint
	sorted bool
}

// NewControlPoints returns a set with the given points, sorted by position.
func NewControlPoints(points ...*ControlPoint) *ControlPoints {
	s := &ControlPoints{
		points: points,
	}
	s.Sort()
	return s
}

// DefaultControlPoints returns fixed black and white points at 0.0 and 1.0, and a movable orange point at 0.4 that only constrains hue, saturation, and value.
func DefaultControlPoints() *ControlPoints {
	black := &ControlPoint{Pos: 0.0, Fixed: true, Channels: ChannelsHSVA}
	black.Color.SetRGB(0.0, 0.0, 0.0)
	white := &ControlPoint{Pos: 1.0, Fixed: true, Channels: ChannelsHSVA}
	white.Color.SetRGB(1.0, 1.0, 1.0)
	orange := &ControlPoint{Pos: 0.4, Channels: ChannelsHSV}
	orange.Color.SetRGB(1.0, 0.4, 0.0)
	return NewControlPoints(black, white, orange)
}

// Len returns the number of control points.
func (s *ControlPoints) Len() int {
	return len(s.points)
}

// Sorted returns true if the set is sorted by position.
func (s *ControlPoints) Sorted() bool {
	return s.sorted
}

// Get returns the i-th control point in position order.
func (s *ControlPoints) Get(i int) *ControlPoint {
	s.mustBeSorted()
	return s.points[i]
}

// Index returns the index of p in the set, or -1 if it is not present.
func (s *ControlPoints) Index(p *ControlPoint) int {
	return slices.Index(s.points, p)
}

// All iterates over the control points in position order.
func (s *ControlPoints) All() iter.Seq2[int, *ControlPoint] {
	s.mustBeSorted()
	return slices.All(s.points)
}

// Insert adds a control point and sorts the set. Points at the same position are kept and the one inserted last comes after the others, unless those are fixed.
func (s *ControlPoints) Insert(p *ControlPoint) {
	s.points = append(s.points, p)
	s.Sort()
}

// Remove removes the control point at index i. Fixed points cannot be removed.
func (s *ControlPoints) Remove(i int) error {
	if i < 0 || len(s.points) <= i {
		return fmt.Errorf("control point index %d out of range", i)
	} else if s.points[i].Fixed {
		return fmt.Errorf("remove control point %d: %w", i, ErrFixed)
	}
	s.points = slices.Delete(s.points, i, i+1)
	return nil
}

// SetPos sets the position of the control point at index i, clamped to [0,1]. It does not sort the set, Sort must be called before iterating again. Fixed points cannot be moved.
func (s *ControlPoints) SetPos(i int, f float64) error {
	if i < 0 || len(s.points) <= i {
		return fmt.Errorf("control point index %d out of range", i)
	} else if p := s.points[i]; p.Fixed && !equal(clamp01(f), p.Pos) {
		return fmt.Errorf("move control point %d: %w", i, ErrFixed)
	}
	s.points[i].SetPos(f)
	s.sorted = false
	return nil
}

// Sort sorts the control points by position. At equal positions fixed points come after movable points, otherwise the relative order is kept. It must be called after a position was changed externally.
func (s *ControlPoints) Sort() {
	slices.SortStableFunc(s.points, func(a, b *ControlPoint) int {
		if a.Pos < b.Pos {
			return -1
		} else if b.Pos < a.Pos {
			return 1
		} else if !a.Fixed && b.Fixed {
			return -1
		} else if a.Fixed && !b.Fixed {
			return 1
		}
		return 0
	})
	s.sorted = true
}

// Clone returns a deep copy of the set.
func (s *ControlPoints) Clone() *ControlPoints {
	points := make([]*ControlPoint, len(s.points))
	for i, p := range s.points {
		q := *p
		points[i] = &q
	}
	return &ControlPoints{
		points: points,
		sorted: s.sorted,
	}
}

// Channel returns the control points that constrain the single channel ch, in position order.
func (s *ControlPoints) Channel(ch Channels) []*ControlPoint {
	s.mustBeSorted()
	var points []*ControlPoint
	for _, p := range s.points {
		if p.Channels.Has(ch) {
			points = append(points, p)
		}
	}
	return points
}

// Validate checks that the set is sorted, that fixed control points lie at 0.0 or 1.0, and that every channel is constrained by at least two control points, one at 0.0 and one at 1.0, so that every channel has a value over the whole range.
func (s *ControlPoints) Validate() error {
	if !s.sorted {
		return fmt.Errorf("control points not sorted: %w", ErrInconsistent)
	}
	for i, p := range s.points {
		if p.Fixed && p.Pos != 0.0 && p.Pos != 1.0 {
			return fmt.Errorf("fixed control point %d at %g is not at 0 or 1: %w", i, p.Pos, ErrFixed)
		}
	}
	for i, ch := range channelOrder {
		points := s.Channel(ch)
		if len(points) < 2 {
			return fmt.Errorf("channel %c has %d control points, need at least 2: %w", "hsva"[i], len(points), ErrInconsistent)
		} else if points[0].Pos != 0.0 || points[len(points)-1].Pos != 1.0 {
			return fmt.Errorf("channel %c is not covered on [0,1]: %w", "hsva"[i], ErrInconsistent)
		}
	}
	return nil
}

func (s *ControlPoints) mustBeSorted() {
	if !s.sorted {
		panic("control points must be sorted before use")
	}
}
