package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictacgpu/internal/config"
	"github.com/rocketscienceinc/tictacgpu/internal/render"
)

func TestPalette(t *testing.T) {
	t.Run("Configured colors replace the backgrounds", func(t *testing.T) {
		conf := &config.Config{Render: config.Render{
			Background: []float32{0, 0, 0, 1},
			RoundOver:  []float32{1, 1, 1, 1},
		}}

		colors := palette(conf)

		assert.Equal(t, render.Color{0, 0, 0, 1}, colors.Background)
		assert.Equal(t, render.Color{1, 1, 1, 1}, colors.RoundOver)
		assert.Equal(t, render.DefaultPalette().Cross, colors.Cross)
	})

	t.Run("Malformed colors fall back to defaults", func(t *testing.T) {
		conf := &config.Config{Render: config.Render{
			Background: []float32{0, 0},
		}}

		colors := palette(conf)

		assert.Equal(t, render.DefaultPalette().Background, colors.Background)
		assert.Equal(t, render.DefaultPalette().RoundOver, colors.RoundOver)
	})
}

func TestConnectSpectator(t *testing.T) {
	t.Run("Disabled feed is nil", func(t *testing.T) {
		assert.Nil(t, connectSpectator(nil, config.Spectator{Enabled: false}))
	})
}
