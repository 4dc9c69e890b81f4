package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/rigid/gm"
	"github.com/oliverbestmann/rigid/physics"
)

var (
	colorStatic  = cp.FColor{R: 0.5, G: 0.5, B: 0.55, A: 1}
	colorDynamic = cp.FColor{R: 0.2, G: 0.8, B: 0.3, A: 1}
	colorSensor  = cp.FColor{R: 0.9, G: 0.8, B: 0.2, A: 0.3}
	colorOutline = cp.FColor{R: 1, G: 1, B: 1, A: 1}
	colorContact = cp.FColor{R: 1, A: 1}
)

type debugImage struct {
	Image     *ebiten.Image
	Transform gm.Affine
}

func (d debugImage) draw(p vector.Path, outline cp.FColor, fill cp.FColor) {
	dpo := &vector.DrawPathOptions{}
	dpo.ColorScale.Scale(fill.R*fill.A, fill.G*fill.A, fill.B*fill.A, fill.A)
	vector.FillPath(d.Image, &p, &vector.FillOptions{}, dpo)

	*dpo = vector.DrawPathOptions{}
	dpo.ColorScale.Scale(outline.R*outline.A, outline.G*outline.A, outline.B*outline.A, outline.A)
	vector.StrokePath(d.Image, &p, &vector.StrokeOptions{Width: 1}, dpo)
}

func (d debugImage) DrawShape(shape physics.Shape) {
	body := shape.Rigid()

	fill := colorDynamic
	switch {
	case body.IsSensor():
		fill = colorSensor
	case body.IsStatic():
		fill = colorStatic
	}

	switch shape := shape.(type) {
	case *physics.Circle:
		d.DrawCircle(shape.Center(), shape.Radius(), colorOutline, fill)

	case *physics.Rectangle:
		vertices := shape.Vertices()
		d.DrawPolygon(vertices[:], colorOutline, fill)
	}
}

func (d debugImage) DrawCircle(pos gm.Vec, radius float64, outline, fill cp.FColor) {
	tpos := d.Transform.Transform(pos)
	radius = d.Transform.TransformVec(gm.Vec{X: radius}).Length()

	var p vector.Path
	p.Arc(float32(tpos.X), float32(tpos.Y), float32(radius), 0, math.Pi*2, vector.Clockwise)

	d.draw(p, outline, fill)
}

func (d debugImage) DrawPolygon(vertices []gm.Vec, outline, fill cp.FColor) {
	var p vector.Path

	for idx, vertex := range vertices {
		tv := d.Transform.Transform(vertex)
		if idx == 0 {
			p.MoveTo(float32(tv.X), float32(tv.Y))
		} else {
			p.LineTo(float32(tv.X), float32(tv.Y))
		}
	}

	p.Close()

	d.draw(p, outline, fill)
}

func (d debugImage) DrawSegment(a, b gm.Vec, color cp.FColor) {
	ta := d.Transform.Transform(a)
	tb := d.Transform.Transform(b)

	var p vector.Path
	p.MoveTo(float32(ta.X), float32(ta.Y))
	p.LineTo(float32(tb.X), float32(tb.Y))
	d.draw(p, color, cp.FColor{})
}

// DrawContact marks the contact point and the penetration along the normal.
func (d debugImage) DrawContact(contact physics.Contact) {
	info := contact.Info

	tpos := d.Transform.Transform(info.Contact)

	var p vector.Path
	p.Arc(float32(tpos.X), float32(tpos.Y), 3, 0, math.Pi*2, vector.Clockwise)
	d.draw(p, colorContact, colorContact)

	// the depth is usually tiny, draw the normal with a minimum length
	length := max(info.Depth, 0.25)
	d.DrawSegment(info.Contact, info.Contact.Add(info.Normal.Mul(length)), colorContact)
}
