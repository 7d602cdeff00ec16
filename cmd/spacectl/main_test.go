// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/diffeo/go-spacelab/memory"
	"github.com/diffeo/go-spacelab/restserver"
	"github.com/diffeo/go-spacelab/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run runs spacectl with some arguments and returns its output.
func run(args ...string) (string, error) {
	var out bytes.Buffer
	app := newApp(&out)
	err := app.Run(append([]string{"spacectl"}, args...))
	return out.String(), err
}

func TestRoundTrip(t *testing.T) {
	server := httptest.NewServer(restserver.NewRouter(memory.New()))
	defer server.Close()
	remote := func(args ...string) (string, error) {
		return run(append([]string{"--url", server.URL}, args...)...)
	}

	out, err := remote("scientist", "add", "--name", "Mel T. Valent", "--field", "Xenobiology")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, err = remote("planet", "add", "--name", "TauCeti e", "--distance", "12", "--star", "Tau Ceti")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, err = remote("mission", "add", "--name", "Survey", "--scientist", "1", "--planet", "1")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, err = remote("scientist", "list")
	if assert.NoError(t, err) {
		assert.Contains(t, out, "FIELD OF STUDY")
		assert.Contains(t, out, "Mel T. Valent")
		assert.Contains(t, out, "Xenobiology")
	}

	out, err = remote("scientist", "show", "1")
	if assert.NoError(t, err) {
		assert.Contains(t, out, "1: Mel T. Valent (Xenobiology)")
		assert.Contains(t, out, "Survey")
	}

	out, err = remote("planet", "show", "1")
	if assert.NoError(t, err) {
		assert.Contains(t, out, "1: TauCeti e (12 from Earth, near Tau Ceti)")
		assert.Contains(t, out, "Survey")
	}

	out, err = remote("mission", "list", "--planet", "1")
	if assert.NoError(t, err) {
		assert.Contains(t, out, "Survey")
	}

	out, err = remote("mission", "list", "--scientist", "5")
	if assert.NoError(t, err) {
		assert.NotContains(t, out, "Survey")
	}

	_, err = remote("scientist", "rm", "1")
	assert.NoError(t, err)

	out, err = remote("mission", "list")
	if assert.NoError(t, err) {
		assert.NotContains(t, out, "Survey")
	}

	_, err = remote("scientist", "show", "1")
	assert.Equal(t, space.ErrNoSuchScientist{ID: 1}, err)

	_, err = remote("mission", "rm", "1")
	assert.Equal(t, space.ErrNoSuchMission{ID: 1}, err)
}

func TestValidation(t *testing.T) {
	server := httptest.NewServer(restserver.NewRouter(memory.New()))
	defer server.Close()

	_, err := run("--url", server.URL, "scientist", "add", "--field", "Xenobiology")
	assert.IsType(t, space.ValidationError{}, err)
}

func TestBadID(t *testing.T) {
	_, err := run("--backend", "memory", "planet", "show", "mars")
	assert.EqualError(t, err, `invalid ID "mars"`)

	_, err = run("--backend", "memory", "planet", "show")
	assert.EqualError(t, err, "expected exactly one ID argument")
}

func TestDirectBackend(t *testing.T) {
	out, err := run("--backend", "memory", "planet", "add", "--name", "Mars")
	if assert.NoError(t, err) {
		assert.Equal(t, "1\n", out)
	}
}
