package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GregMSThompson/hsbooks/pkg/logger"
)

func TestPointerHelpers(t *testing.T) {
	assert.Equal(t, 5, *Ptr(5))
	assert.Equal(t, "", Value[string](nil))
	assert.Equal(t, "card", Value(Ptr("card")))
	assert.Equal(t, 3, ValueOr(nil, 3))
	assert.Equal(t, 7, ValueOr(Ptr(7), 3))
}

func TestTestCtxCarriesLogger(t *testing.T) {
	assert.NotNil(t, logger.FromContext(TestCtx()))
}
