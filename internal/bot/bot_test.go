package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAdminIDs(t *testing.T) {
	assert.Equal(t, []int64{1, 2, 3}, ParseAdminIDs("1, 2,3"))
	assert.Nil(t, ParseAdminIDs(""))

	// Мусор пропускается
	assert.Equal(t, []int64{42}, ParseAdminIDs("abc,42"))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "1", formatQuantity(1))
	assert.Equal(t, "1.5", formatQuantity(1.5))
	assert.Equal(t, "0.25", formatQuantity(0.25))
}
