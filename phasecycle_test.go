package quno

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func colorsOf(sets [][]Branch) [][]Color {
	out := make([][]Color, len(sets))
	for i, set := range sets {
		for _, b := range set {
			out[i] = append(out[i], b.Color)
		}
	}
	return out
}

func TestPhaseCycle(t *testing.T) {
	Convey("Given a phase cycle over the pair (RED, BLUE)", t, func() {
		p := NewPhaseCycle([]Branch{{Red, Number}, {Blue, Skip}})

		So(colorsOf(p.Candidates()), ShouldResemble, [][]Color{{Red, Blue}})

		Convey("After one rotation both orders should be plausible", func() {
			p.Rotate()
			So(colorsOf(p.Candidates()), ShouldResemble, [][]Color{{Red, Blue}, {Blue, Red}})
		})

		Convey("After two rotations the colors should be flipped", func() {
			p.Rotate()
			p.Rotate()
			So(colorsOf(p.Candidates()), ShouldResemble, [][]Color{{Blue, Red}})
		})

		Convey("After three rotations it should be ambiguous again", func() {
			for range 3 {
				p.Rotate()
			}
			So(p.Candidates(), ShouldHaveLength, 2)
		})

		Convey("After four rotations it should be back where it started", func() {
			for range 4 {
				p.Rotate()
			}
			So(p.Count(), ShouldEqual, 4)
			So(colorsOf(p.Candidates()), ShouldResemble, [][]Color{{Red, Blue}})
		})

		Convey("Types should ride along unchanged", func() {
			p.Rotate()
			p.Rotate()
			So(p.Candidates()[0], ShouldResemble, []Branch{{Blue, Number}, {Red, Skip}})
		})
	})
}
