// internal/interfaces/score_sink.go
package interfaces

// Имена счётчиков, которые игра публикует в ScoreSink.
const (
	ScoreCrossings = "crossings"
	ScoreHits      = "hits"
)

// ScoreSink принимает именованные счётчики для показа игроку. Ядро игры
// не знает, чем именно они рисуются.
type ScoreSink interface {
	SetScore(name string, value int)
}
