package quno

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestActionFor(t *testing.T) {
	Convey("Given the card types", t, func() {
		So(ActionFor(MakeEntangled), ShouldHaveSameTypeAs, MakeEntangledAction{})
		So(ActionFor(Interference), ShouldHaveSameTypeAs, InterferenceAction{})
		So(ActionFor(Entangled), ShouldResemble, PlainAction{Type: Entangled})
		So(ActionFor(Draw2), ShouldResemble, PlainAction{Type: Draw2})
	})
}

func TestResolve(t *testing.T) {
	Convey("Given a deck", t, func() {
		d := testDeck(50, 0)

		Convey("An unmeasured card should not resolve", func() {
			c, err := NewCard([]Branch{{Red, Number}}, false, testSource(51))
			So(err, ShouldBeNil)

			_, err = Resolve(d, c)
			So(errors.Is(err, ErrNotYetMeasured), ShouldBeTrue)
		})

		Convey("A plain card should become the top card", func() {
			c, err := newMeasuredCard(Branch{Green, Reverse}, testSource(52))
			So(err, ShouldBeNil)

			res, err := Resolve(d, c)
			So(err, ShouldBeNil)
			So(res.Action, ShouldResemble, PlainAction{Type: Reverse})
			So(colorsOf(d.Candidates()), ShouldResemble, [][]Color{{Green}})
		})

		Convey("An interference card should rotate the top card", func() {
			So(d.SetTopCard([]Branch{{Blue, Number}}), ShouldBeNil)
			c, err := newMeasuredCard(Branch{Yellow, Interference}, testSource(53))
			So(err, ShouldBeNil)

			_, err = Resolve(d, c)
			So(err, ShouldBeNil)
			So(d.RotationCount(), ShouldEqual, 1)
			So(d.top.cycle.Base(), ShouldResemble, []Branch{{Blue, Number}})
		})

		Convey("An interference card on an empty pile should land on it", func() {
			c, err := newMeasuredCard(Branch{Yellow, Interference}, testSource(54))
			So(err, ShouldBeNil)

			_, err = Resolve(d, c)
			So(err, ShouldBeNil)
			So(d.RotationCount(), ShouldEqual, 0)
			So(colorsOf(d.Candidates()), ShouldResemble, [][]Color{{Yellow}})
		})

		Convey("A make-entangled card should deal a pair", func() {
			c, err := NewCard([]Branch{{Red, MakeEntangled}}, false, testSource(55))
			So(err, ShouldBeNil)
			_, err = c.Measure()
			So(err, ShouldBeNil)

			res, err := Resolve(d, c)
			So(err, ShouldBeNil)
			So(res.Action, ShouldHaveSameTypeAs, MakeEntangledAction{})
			So(res.Received, ShouldNotBeNil)
			So(res.Partner, ShouldNotBeNil)
			So(res.Partner.IsEntangled(), ShouldBeTrue)
			So(res.Partner.KnownColors()[0], ShouldNotEqual, res.Received.Color)
			So(colorsOf(d.Candidates()), ShouldResemble, [][]Color{{Red}})
		})
	})
}
