package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/campaign-planner/internal/types"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "0.00", Money(0))
	assert.Equal(t, "23.50", Money(23.5))
	assert.Equal(t, "1234.57", Money(1234.567))
	assert.Equal(t, "0.02", Money(0.015))
}

func TestOptionalValues(t *testing.T) {
	assert.Equal(t, "", OptionalMoney(nil))
	assert.Equal(t, "7.00", OptionalMoney(types.Float(7)))
	assert.Equal(t, "", OptionalNumber(nil))
	assert.Equal(t, "1200", OptionalNumber(types.Float(1200)))
	assert.Equal(t, "12.5", OptionalNumber(types.Float(12.5)))
}

func TestMarshalJSON_KeepsAmpersand(t *testing.T) {
	data, err := marshalJSON(map[string]string{"url": "https://example.com/?a=1&b=2"}, "")

	assert.NoError(t, err)
	assert.Contains(t, string(data), "a=1&b=2")
}
