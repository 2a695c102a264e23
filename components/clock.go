package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type ClockData struct {
	Delta   time.Duration
	Elapsed time.Duration
	Tick    uint64
}

var Clock = donburi.NewComponentType[ClockData]()
