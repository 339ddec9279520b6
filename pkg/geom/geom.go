// pkg/geom/geom.go
package geom

import "math"

// Point — точка на плоскости в пиксельных координатах.
type Point struct {
	X, Y float64
}

// Rect — выровненный по осям прямоугольник, заданный верхним левым углом.
type Rect struct {
	X, Y, W, H float64
}

// Left возвращает левую границу прямоугольника.
func (r Rect) Left() float64 { return r.X }

// Right возвращает правую границу прямоугольника.
func (r Rect) Right() float64 { return r.X + r.W }

// Top возвращает верхнюю границу прямоугольника.
func (r Rect) Top() float64 { return r.Y }

// Bottom возвращает нижнюю границу прямоугольника.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center возвращает центр прямоугольника.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Corners возвращает четыре угла прямоугольника.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.Left(), r.Top()},
		{r.Right(), r.Top()},
		{r.Right(), r.Bottom()},
		{r.Left(), r.Bottom()},
	}
}

// Dist возвращает евклидово расстояние между двумя точками.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// InHorizontalSpan сообщает, лежит ли x в горизонтальном диапазоне прямоугольника.
func (r Rect) InHorizontalSpan(x float64) bool {
	return x >= r.Left() && x <= r.Right()
}

// InVerticalSpan сообщает, лежит ли y в вертикальном диапазоне прямоугольника.
func (r Rect) InVerticalSpan(y float64) bool {
	return y >= r.Top() && y <= r.Bottom()
}

// VerticalEdgeDist — минимальное вертикальное расстояние от точки до
// верхней или нижней грани.
func (r Rect) VerticalEdgeDist(p Point) float64 {
	return math.Min(math.Abs(p.Y-r.Top()), math.Abs(p.Y-r.Bottom()))
}

// HorizontalEdgeDist — минимальное горизонтальное расстояние от точки до
// левой или правой грани.
func (r Rect) HorizontalEdgeDist(p Point) float64 {
	return math.Min(math.Abs(p.X-r.Left()), math.Abs(p.X-r.Right()))
}

// NearestCornerDist — расстояние от точки до ближайшего угла.
// Всегда считается заново, без промежуточного состояния.
func (r Rect) NearestCornerDist(p Point) float64 {
	min := math.Inf(1)
	for _, c := range r.Corners() {
		if d := Dist(p, c); d < min {
			min = d
		}
	}
	return min
}
