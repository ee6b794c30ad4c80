package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
)

// WaveIndicator отображает номер волны римскими цифрами и отсчёт до следующей.
type WaveIndicator struct {
	X, Y     int
	Color    color.Color
	fontFace font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:        x,
		Y:        y,
		Color:    config.TextLightColor,
		fontFace: face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// WaveLabel is the text the indicator shows.
func WaveLabel(wave, countdownSeconds int) string {
	if wave == 0 {
		return fmt.Sprintf("First wave in %ds", countdownSeconds)
	}
	return fmt.Sprintf("Wave %s - next in %ds", toRoman(wave), countdownSeconds)
}

// Draw отрисовывает индикатор, центрируя текст по X.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, countdownSeconds int) {
	label := WaveLabel(wave, countdownSeconds)
	x := i.X - len(label)*config.TextCharWidth/2
	text.Draw(screen, label, i.fontFace, x, i.Y, i.Color)
}
