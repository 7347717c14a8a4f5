package video

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBeforeCreate_AssignsID(t *testing.T) {
	v := &Video{Title: "Lesson"}
	assert.NoError(t, v.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, v.ID)
}

func TestBeforeCreate_KeepsExistingID(t *testing.T) {
	id := uuid.New()
	v := &Video{ID: id}
	assert.NoError(t, v.BeforeCreate(nil))
	assert.Equal(t, id, v.ID)
}

func TestBeforeCreate_ForcesZeroViews(t *testing.T) {
	v := &Video{ViewCount: 42}
	assert.NoError(t, v.BeforeCreate(nil))
	assert.Equal(t, int64(0), v.ViewCount)
}

func TestBeforeCreate_ClearsPriceOnFreeVideo(t *testing.T) {
	price := 9.99
	v := &Video{IsPremium: false, PremiumPrice: &price}
	assert.NoError(t, v.BeforeCreate(nil))
	assert.Nil(t, v.PremiumPrice)

	v = &Video{IsPremium: true, PremiumPrice: &price}
	assert.NoError(t, v.BeforeCreate(nil))
	assert.Equal(t, &price, v.PremiumPrice)
}
