package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fluenterrors "github.com/alexisbeaulieu97/fluent/pkg/errors"
)

func TestRenderDefaultGallery(t *testing.T) {
	out, _, err := execute(t, "render", "--width", "100")
	require.NoError(t, err)

	for _, want := range []string{"Fluent gallery", "dark theme", "Sliders", "Color", "Command bar", "Volume", "Critical"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderGalleryFile(t *testing.T) {
	scene := writeFile(t, "gallery.yaml", `version: "1.0"
title: Release controls
theme: light
overflow:
  items:
    - id: ship
      label: Ship
`)

	out, _, err := execute(t, "render", "--gallery", scene, "--width", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "Release controls")
	assert.Contains(t, out, "light theme")
	assert.Contains(t, out, "Ship")
}

func TestRenderRejectsInvalidGallery(t *testing.T) {
	scene := writeFile(t, "gallery.yaml", "version: \"1.0\"\ntitle: Broken\ntheme: sepia\n")

	_, _, err := execute(t, "render", "--gallery", scene)
	require.Error(t, err)

	var verr *fluenterrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "theme", verr.Field)
}

func TestRenderRejectsUnknownTheme(t *testing.T) {
	_, _, err := execute(t, "render", "--theme", "sepia")
	require.Error(t, err)
}

func TestRenderRejectsNegativeWidth(t *testing.T) {
	_, _, err := execute(t, "render", "--width", "-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestOutputWidthFallsBack(t *testing.T) {
	assert.Equal(t, fallbackWidth, outputWidth(&bytes.Buffer{}))
}
