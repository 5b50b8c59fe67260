package main

import "github.com/gdamore/tcell/v2"

// pixel returns the RGB triple of pixel i in an RGBA buffer.
func pixel(pix []byte, i int) [3]byte {
	return [3]byte{pix[4*i], pix[4*i+1], pix[4*i+2]}
}

// halfBlock styles an upper-half-block glyph so its foreground paints the top
// cell and its background paints the bottom cell.
func halfBlock(top, bottom [3]byte) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(top[0]), int32(top[1]), int32(top[2]))).
		Background(tcell.NewRGBColor(int32(bottom[0]), int32(bottom[1]), int32(bottom[2])))
}

func drawText(s tcell.Screen, x, y int, text string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
