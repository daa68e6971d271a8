package quno

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewConfig(t *testing.T) {
	Convey("Given the default config", t, func() {
		cfg := NewConfig()

		So(cfg.Shots, ShouldEqual, 1024)
		So(cfg.Seed, ShouldEqual, uint64(0))
		So(cfg.SuperpositionChance, ShouldEqual, 0.25)
		So(cfg.PhaseStep, ShouldAlmostEqual, math.Pi/2, tolerance)
	})
}

func TestLoadConfig(t *testing.T) {
	Convey("Given no config file and no environment", t, func() {
		cfg, err := LoadConfig(t.TempDir())
		So(err, ShouldBeNil)
		So(cfg, ShouldResemble, NewConfig())
	})

	Convey("Given a config file", t, func() {
		dir := t.TempDir()
		body := "shots: 256\nseed: 7\nsuperposition_chance: 0.5\n"
		So(os.WriteFile(filepath.Join(dir, "quno.yaml"), []byte(body), 0o644), ShouldBeNil)

		cfg, err := LoadConfig(dir)
		So(err, ShouldBeNil)

		Convey("Then its values should override the defaults", func() {
			So(cfg.Shots, ShouldEqual, 256)
			So(cfg.Seed, ShouldEqual, uint64(7))
			So(cfg.SuperpositionChance, ShouldEqual, 0.5)
			So(cfg.PhaseStep, ShouldAlmostEqual, math.Pi/2, tolerance)
		})
	})

	Convey("Given environment overrides", t, func() {
		t.Setenv("QUNO_SHOTS", "2048")
		t.Setenv("QUNO_SEED", "99")

		cfg, err := LoadConfig(t.TempDir())
		So(err, ShouldBeNil)
		So(cfg.Shots, ShouldEqual, 2048)
		So(cfg.Seed, ShouldEqual, uint64(99))
	})

	Convey("Given a non-positive shot count", t, func() {
		t.Setenv("QUNO_SHOTS", "0")

		cfg, err := LoadConfig(t.TempDir())
		So(err, ShouldBeNil)
		So(cfg.Shots, ShouldEqual, 1024)
	})

	Convey("Given a seeded config", t, func() {
		cfg := NewConfig()
		cfg.Seed = 5
		So(cfg.seed(), ShouldEqual, uint64(5))
	})
}
