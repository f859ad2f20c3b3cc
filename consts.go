package main

import "image/color"

// diffuse color of the hull, the light model matches a simple
// ambient + lambert shader
var HullColor = [3]float64{0.39, 1.0, 0.0}

const (
	ambientLight = 0.2
	diffuseLight = 0.8
)

var BackgroundColor color.Color = color.Black
var WindowColor color.Color = rgbaOf(0x2b2f33e0)
var ShadowColor color.Color = rgbaOf(0x00000080)
var ModalColor color.Color = rgbaOf(0x00000060)

var PointColor color.Color = rgbaOf(0x8a8f94ff)
var HullVertexColor color.Color = rgbaOf(0xffd166ff)
var OutlineColor color.Color = rgbaOf(0xef476fff)

var ButtonColors = ButtonColorSet{
	Normal:   rgbaOf(0x3c6e71ff),
	Hover:    rgbaOf(0x4f8f93ff),
	Disabled: rgbaOf(0x555555ff),
}
