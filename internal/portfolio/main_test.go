// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package portfolio

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
