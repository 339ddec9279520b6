// component/movement.go
package component

// Position — компонент позиции (верхний левый угол спрайта).
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	Speed float64 // пикселей в секунду, всегда > 0
}
