package core

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferValidate(t *testing.T) {
	tests := []struct {
		name  string
		buf   *Buffer
		param string
	}{
		{"Nil", nil, "buffer"},
		{"ZeroWidth", &Buffer{Width: 0, Height: 1}, "width"},
		{"ZeroHeight", &Buffer{Width: 1, Height: 0}, "height"},
		{"ShortPix", &Buffer{Width: 2, Height: 2, Pix: make([]uint8, 15)}, "pix"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.buf.Validate()
			require.ErrorIs(t, err, ErrInvalidParameter)

			var pe *ParameterError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.param, pe.Name)
		})
	}

	assert.NoError(t, NewBuffer(3, 2).Validate())
}

func TestBufferAccess(t *testing.T) {
	buf := NewBuffer(2, 2)
	buf.Set(1, RGB8{10, 20, 30}, 7)

	assert.Equal(t, 4, buf.Len())
	assert.Equal(t, Color{10, 20, 30}, buf.At(1))
	assert.Equal(t, uint8(7), buf.Pix[7])
	assert.Equal(t, []Color{{10, 20, 30}, {0, 0, 0}}, buf.Colors([]int{1, 3}))

	buf.Fill(RGB8{1, 2, 3})
	assert.Equal(t, []uint8{1, 2, 3, 255}, buf.Pix[12:16])
}

func TestFromRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	copy(img.Pix, []uint8{1, 2, 3, 4, 5, 6, 7, 8})

	buf := FromRGBA(img)
	require.NoError(t, buf.Validate())
	assert.Equal(t, Color{5, 6, 7}, buf.At(1))

	sub := image.NewRGBA(image.Rect(0, 0, 3, 2)).SubImage(image.Rect(1, 0, 3, 2)).(*image.RGBA)
	sub.Pix[4] = 99 // pixel (2,0)
	out := FromRGBA(sub)
	require.NoError(t, out.Validate())
	assert.Equal(t, 2, out.Width)
	assert.Equal(t, Color{99, 0, 0}, out.At(1))
}

func TestMean(t *testing.T) {
	_, ok := Mean(nil)
	assert.False(t, ok)

	m, ok := Mean([]Color{{0, 0, 0}, {255, 255, 255}})
	require.True(t, ok)
	assert.Equal(t, Color{127.5, 127.5, 127.5}, m)
}

func TestParameterError(t *testing.T) {
	err := NewParameterError("k", 0)
	assert.Equal(t, "invalid parameter: k=0", err.Error())
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
