package assets

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/common"
)

// Sheet frame sizes. Sheets are a single row of frames.
const (
	HeroFrameW   = 36
	HeroFrameH   = 42
	SpiderFrameW = 42
	SpiderFrameH = 32
	CoinFrameW   = 22
	CoinFrameH   = 22
	HeartsFrameW = 128
	HeartsFrameH = 35
	KeyIconW     = 34
	KeyIconH     = 30
)

var (
	colorOutline = color.NRGBA{R: 0x2b, G: 0x1d, B: 0x2f, A: 0xff}
	colorSkin    = color.NRGBA{R: 0xf2, G: 0xc1, B: 0x8d, A: 0xff}
	colorShirt   = color.NRGBA{R: 0xd9, G: 0x3d, B: 0x3d, A: 0xff}
	colorPants   = color.NRGBA{R: 0x3a, G: 0x52, B: 0x9b, A: 0xff}
	colorSpider  = color.NRGBA{R: 0x4b, G: 0x2e, B: 0x5c, A: 0xff}
	colorEye     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorGold    = color.NRGBA{R: 0xf7, G: 0xc8, B: 0x3b, A: 0xff}
	colorGoldDk  = color.NRGBA{R: 0xc2, G: 0x8a, B: 0x14, A: 0xff}
	colorDirt    = color.NRGBA{R: 0x8a, G: 0x5a, B: 0x33, A: 0xff}
	colorGrass   = color.NRGBA{R: 0x5c, G: 0xb8, B: 0x3a, A: 0xff}
	colorStone   = color.NRGBA{R: 0x6b, G: 0x6b, B: 0x78, A: 0xff}
	colorWood    = color.NRGBA{R: 0x7a, G: 0x4a, B: 0x24, A: 0xff}
	colorHeart   = color.NRGBA{R: 0xe0, G: 0x2a, B: 0x4a, A: 0xff}
	colorEmpty   = color.NRGBA{R: 0x55, G: 0x4a, B: 0x5a, A: 0xff}
)

func rect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func circle(dst *ebiten.Image, cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), clr, true)
}

// drawHeroSheet: stop, run A, run B, jump, fall.
func drawHeroSheet() *ebiten.Image {
	sheet := ebiten.NewImage(HeroFrameW*5, HeroFrameH)
	legs := [5][2]float64{{0, 0}, {-4, 4}, {4, -4}, {-3, -3}, {3, 3}}
	arms := [5]float64{0, 2, -2, -8, 6}
	for f := 0; f < 5; f++ {
		ox := float64(f * HeroFrameW)
		rect(sheet, ox+11, 2, 14, 12, colorSkin)
		rect(sheet, ox+11, 2, 14, 4, colorOutline)
		rect(sheet, ox+20, 7, 3, 3, colorOutline)
		rect(sheet, ox+9, 14, 18, 14, colorShirt)
		rect(sheet, ox+5, 16+arms[f], 4, 9, colorSkin)
		rect(sheet, ox+27, 16+arms[f], 4, 9, colorSkin)
		rect(sheet, ox+11+legs[f][0], 28, 6, 14, colorPants)
		rect(sheet, ox+19+legs[f][1], 28, 6, 14, colorPants)
	}
	return sheet
}

// drawSpiderSheet: crawl A, B, C, dead (flat), hurt (flash).
func drawSpiderSheet() *ebiten.Image {
	sheet := ebiten.NewImage(SpiderFrameW*5, SpiderFrameH)
	for f := 0; f < 5; f++ {
		ox := float64(f * SpiderFrameW)
		body := color.Color(colorSpider)
		if f == 4 {
			body = colorEye
		}
		if f == 3 {
			rect(sheet, ox+4, 24, 34, 8, body)
			rect(sheet, ox+12, 26, 4, 2, colorOutline)
			rect(sheet, ox+26, 26, 4, 2, colorOutline)
			continue
		}
		step := float64(f%3) * 2
		for i := 0; i < 3; i++ {
			ly := 14 + float64(i)*5
			rect(sheet, ox+2+step, ly, 10, 2, colorOutline)
			rect(sheet, ox+30-step, ly, 10, 2, colorOutline)
		}
		circle(sheet, ox+21, 18, 12, body)
		circle(sheet, ox+16, 15, 3, colorEye)
		circle(sheet, ox+26, 15, 3, colorEye)
		rect(sheet, ox+16, 15, 2, 2, colorOutline)
		rect(sheet, ox+26, 15, 2, 2, colorOutline)
	}
	return sheet
}

// drawCoinSheet: face, three-quarter, edge.
func drawCoinSheet() *ebiten.Image {
	sheet := ebiten.NewImage(CoinFrameW*3, CoinFrameH)
	widths := [3]float64{20, 12, 4}
	for f, w := range widths {
		ox := float64(f * CoinFrameW)
		x := ox + (CoinFrameW-w)/2
		rect(sheet, x, 1, w, 20, colorGoldDk)
		if w > 4 {
			rect(sheet, x+2, 3, w-4, 16, colorGold)
		}
	}
	return sheet
}

func drawDoor() *ebiten.Image {
	img := ebiten.NewImage(42, 66)
	rect(img, 0, 0, 42, 66, colorOutline)
	rect(img, 4, 4, 34, 62, colorWood)
	rect(img, 20, 4, 2, 62, colorOutline)
	circle(img, 32, 38, 3, colorGold)
	return img
}

func drawKey() *ebiten.Image {
	img := ebiten.NewImage(30, 30)
	circle(img, 8, 15, 7, colorGold)
	circle(img, 8, 15, 3, colorOutline)
	rect(img, 14, 13, 15, 4, colorGold)
	rect(img, 22, 17, 3, 6, colorGold)
	rect(img, 27, 17, 3, 4, colorGold)
	return img
}

func drawPlatform(w, h int, ground bool) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	base := colorDirt
	if ground {
		base = colorStone
	}
	rect(img, 0, 0, float64(w), float64(h), base)
	rect(img, 0, 0, float64(w), 10, colorGrass)
	for x := 0; x < w; x += common.TileSize {
		rect(img, float64(x), 10, 1, float64(h-10), colorOutline)
	}
	return img
}

func drawBackground(top, bottom color.Color) *ebiten.Image {
	if top == nil {
		top = color.NRGBA{R: 0x4a, G: 0x90, B: 0xd9, A: 0xff}
	}
	if bottom == nil {
		bottom = color.NRGBA{R: 0xcd, G: 0xea, B: 0xff, A: 0xff}
	}
	img := ebiten.NewImage(common.BaseWidth, common.BaseHeight)
	tr, tg, tb, _ := top.RGBA()
	br, bg, bb, _ := bottom.RGBA()
	const bands = 30
	bandH := float64(common.BaseHeight) / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / (bands - 1)
		c := color.NRGBA{
			R: uint8(common.Lerp(float64(tr>>8), float64(br>>8), t)),
			G: uint8(common.Lerp(float64(tg>>8), float64(bg>>8), t)),
			B: uint8(common.Lerp(float64(tb>>8), float64(bb>>8), t)),
			A: 0xff,
		}
		rect(img, 0, float64(i)*bandH, common.BaseWidth, bandH+1, c)
	}
	return img
}

// drawHeartsSheet draws one frame per damage point up to six: three hearts
// of two halves each, emptied from the right.
func drawHeartsSheet() *ebiten.Image {
	const frames = 7
	sheet := ebiten.NewImage(HeartsFrameW*frames, HeartsFrameH)
	for f := 0; f < frames; f++ {
		ox := float64(f * HeartsFrameW)
		remaining := 6 - f
		for slot := 0; slot < 3; slot++ {
			cx := ox + 20 + float64(slot)*42
			for half := 0; half < 2; half++ {
				clr := colorEmpty
				if slot*2+half < remaining {
					clr = colorHeart
				}
				hx := cx - 8 + float64(half)*8
				circle(sheet, hx+4, 12, 6, clr)
				rect(sheet, hx-2+float64(half)*4, 12, 8, 10, clr)
			}
		}
	}
	return sheet
}

// drawKeyIconSheet: frame 0 empty slot, frame 1 key held.
func drawKeyIconSheet() *ebiten.Image {
	sheet := ebiten.NewImage(KeyIconW*2, KeyIconH)
	for f := 0; f < 2; f++ {
		ox := float64(f * KeyIconW)
		clr := color.Color(colorEmpty)
		if f == 1 {
			clr = colorGold
		}
		circle(sheet, ox+9, 15, 7, clr)
		rect(sheet, ox+15, 13, 16, 4, clr)
		rect(sheet, ox+24, 17, 3, 6, clr)
	}
	return sheet
}

func drawCoinIcon() *ebiten.Image {
	img := ebiten.NewImage(CoinFrameW, CoinFrameH)
	circle(img, 11, 11, 10, colorGoldDk)
	circle(img, 11, 11, 7, colorGold)
	return img
}
