package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusiness_FindServices(t *testing.T) {
	business := &Business{
		Services: []Service{
			{Name: "Haircut", Price: 20},
			{Name: "Coloring", Price: 35},
			{Name: "Beard", Price: 10},
		},
	}

	t.Run("keeps request order and skips repeats", func(t *testing.T) {
		services, missing, ok := business.FindServices([]string{"Coloring", "Haircut", "Coloring"})
		assert.True(t, ok)
		assert.Empty(t, missing)
		assert.Equal(t, []Service{{Name: "Coloring", Price: 35}, {Name: "Haircut", Price: 20}}, services)
	})

	t.Run("reports first unknown name", func(t *testing.T) {
		services, missing, ok := business.FindServices([]string{"Haircut", "Massage", "Facial"})
		assert.False(t, ok)
		assert.Equal(t, "Massage", missing)
		assert.Nil(t, services)
	})

	t.Run("empty selection", func(t *testing.T) {
		services, missing, ok := business.FindServices(nil)
		assert.True(t, ok)
		assert.Empty(t, missing)
		assert.Empty(t, services)
	})

	t.Run("names are matched exactly", func(t *testing.T) {
		_, missing, ok := business.FindServices([]string{"haircut"})
		assert.False(t, ok)
		assert.Equal(t, "haircut", missing)
	})
}
