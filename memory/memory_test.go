// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"testing"

	"github.com/diffeo/go-spacelab/space/spacetest"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic store tests against the memory backend.
type Suite struct {
	spacetest.Suite
}

// SetupTest creates an empty store for each test.
func (s *Suite) SetupTest() {
	s.Store = New()
}

// TestStore runs the space generic tests.
func TestStore(t *testing.T) {
	suite.Run(t, &Suite{})
}
