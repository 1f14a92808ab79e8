package config

import (
	"testing"

	"github.com/mediabar-cli/mediabar/filesystem"
	"github.com/mediabar-cli/mediabar/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				val := viper.Get(name)
				So(val, ShouldNotBeNil)
			}
		})

		Convey("Should register the declared number of fields", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("motion.panel_transition_ms")
			So(result, ShouldEqual, "motion_panel_transition_ms")
		})

		Convey("Field.Env should prefix with the application name", func() {
			f := Default[key.MotionReduce]
			So(f.Env(), ShouldEqual, "MEDIABAR_MOTION_REDUCE")
		})
	})
}
