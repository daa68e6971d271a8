package quno

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewCard(t *testing.T) {
	Convey("Given branch specifications", t, func() {
		Convey("An empty one should be rejected", func() {
			_, err := NewCard(nil, false, testSource(20))
			So(err, ShouldEqual, ErrEmptyBranchSet)
		})

		Convey("Three branches should be rejected", func() {
			_, err := NewCard([]Branch{{Red, Number}, {Blue, Number}, {Green, Number}}, false, testSource(20))
			So(errors.Is(err, ErrTooManyBranches), ShouldBeTrue)
		})

		Convey("A superposition card should expose both branches", func() {
			c, err := NewCard([]Branch{{Red, Number}, {Blue, Skip}}, false, testSource(20))
			So(err, ShouldBeNil)
			So(c.KnownColors(), ShouldResemble, []Color{Red, Blue})
			So(c.KnownTypes(), ShouldResemble, []Type{Number, Skip})
			So(c.WasMeasured(), ShouldBeFalse)
			So(c.ID(), ShouldNotEqual, uuid.Nil)
			So(c.String(), ShouldEqual, "RED NUMBER | BLUE SKIP")
		})

		Convey("An entangled card should say so", func() {
			c, err := NewCard([]Branch{{Green, Wild}}, true, testSource(20))
			So(err, ShouldBeNil)
			So(c.IsEntangled(), ShouldBeTrue)
			So(c.String(), ShouldEqual, "GREEN WILD (entangled)")
		})
	})
}

func TestCardMeasure(t *testing.T) {
	Convey("Given a definite card", t, func() {
		c, err := NewCard([]Branch{{Yellow, Draw2}}, false, testSource(21))
		So(err, ShouldBeNil)

		_, err = c.Outcome()
		So(errors.Is(err, ErrNotYetMeasured), ShouldBeTrue)

		Convey("When measured", func() {
			outcome, err := c.Measure()
			So(err, ShouldBeNil)

			Convey("Then it should return its only branch", func() {
				So(outcome, ShouldResemble, Branch{Yellow, Draw2})
				So(c.WasMeasured(), ShouldBeTrue)

				stored, err := c.Outcome()
				So(err, ShouldBeNil)
				So(stored, ShouldResemble, outcome)
			})

			Convey("Then measuring again should fail", func() {
				_, err := c.Measure()
				So(errors.Is(err, ErrAlreadyMeasured), ShouldBeTrue)
			})
		})
	})

	Convey("Given a card configured with no shots", t, func() {
		c, err := NewCard([]Branch{{Green, Wild}}, false, testSource(22), WithShots(0))
		So(err, ShouldBeNil)

		Convey("Measuring should fail and leave the card untouched", func() {
			_, err := c.Measure()
			So(errors.Is(err, ErrInvalidShots), ShouldBeTrue)
			So(c.WasMeasured(), ShouldBeFalse)
			So(c.Branches(), ShouldResemble, []Branch{{Green, Wild}})
		})
	})

	Convey("Given many superposition cards over the same two branches", t, func() {
		const trials = 200

		branches := []Branch{{Red, Reverse}, {Green, MakeEntangled}}
		seen := make(map[Branch]int)

		for seed := uint64(0); seed < trials; seed++ {
			c, err := NewCard(branches, false, testSource(100+seed))
			So(err, ShouldBeNil)

			outcome, err := c.Measure()
			So(err, ShouldBeNil)
			seen[outcome]++

			So(c.KnownColors(), ShouldHaveLength, 1)
			So(c.KnownTypes(), ShouldHaveLength, 1)
		}

		t.Logf("outcomes: %s", spew.Sdump(seen))

		Convey("Then every outcome should be one of the branches", func() {
			So(seen[branches[0]]+seen[branches[1]], ShouldEqual, trials)
		})

		Convey("Then both branches should be equally likely", func() {
			ratio := float64(seen[branches[0]]) / trials
			So(ratio, ShouldBeBetween, 0.35, 0.65)
		})
	})
}

func TestCardMeasureIsReproducible(t *testing.T) {
	Convey("Given two cards in the same state with the same seed", t, func() {
		branches := []Branch{{Blue, Wild}, {Yellow, Skip}}

		a, err := NewCard(branches, false, testSource(42))
		So(err, ShouldBeNil)
		b, err := NewCard(branches, false, testSource(42))
		So(err, ShouldBeNil)

		Convey("Then they should measure the same", func() {
			first, err := a.Measure()
			So(err, ShouldBeNil)
			second, err := b.Measure()
			So(err, ShouldBeNil)
			So(first, ShouldResemble, second)
		})
	})
}

func TestCardReconstruct(t *testing.T) {
	Convey("Given an unmeasured superposition card", t, func() {
		branches := []Branch{{Blue, Number}, {Red, Draw2}}
		c, err := NewCard(branches, false, testSource(22))
		So(err, ShouldBeNil)

		Convey("Reconstruct should recover both branches and leave it unmeasured", func() {
			got, err := c.Reconstruct()
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 2)
			So(got, ShouldContain, branches[0])
			So(got, ShouldContain, branches[1])
			So(c.WasMeasured(), ShouldBeFalse)

			_, err = c.Measure()
			So(err, ShouldBeNil)
		})
	})
}

func TestCardIsPlayable(t *testing.T) {
	Convey("Given a superposition card", t, func() {
		c, err := NewCard([]Branch{{Red, Number}, {Blue, Skip}}, false, testSource(23))
		So(err, ShouldBeNil)

		Convey("It should play on an empty pile", func() {
			So(c.IsPlayable(nil), ShouldBeTrue)
		})

		Convey("It should play on a matching color or type", func() {
			So(c.IsPlayable(&Branch{Blue, Wild}), ShouldBeTrue)
			So(c.IsPlayable(&Branch{Green, Number}), ShouldBeTrue)
		})

		Convey("It should not play on anything else", func() {
			So(c.IsPlayable(&Branch{Green, Wild}), ShouldBeFalse)
		})
	})

	Convey("Given an entangled card", t, func() {
		c, err := NewCard([]Branch{{Red, Number}}, true, testSource(24))
		So(err, ShouldBeNil)

		Convey("It should play on anything", func() {
			So(c.IsPlayable(&Branch{Green, Wild}), ShouldBeTrue)
		})
	})
}
