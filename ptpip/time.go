package ptpip

import (
	"sync"
	"time"

	"go.uber.org/atomic"
)

// MutableTicker ticks on C at an interval that may be changed while it
// runs. A stopped ticker keeps its goroutine until Close.
type MutableTicker struct {
	C <-chan bool
	d *atomic.Int64
	e *atomic.Bool
	i chan bool

	done chan struct{}
	once sync.Once
}

func NewMutableTicker(d time.Duration) *MutableTicker {
	c := make(chan bool, 1)
	mt := &MutableTicker{
		C:    c,
		d:    atomic.NewInt64(int64(d)),
		e:    atomic.NewBool(true),
		i:    make(chan bool, 1),
		done: make(chan struct{}),
	}

	go func() {
		for {
			t := time.NewTimer(time.Duration(mt.d.Load()))
			select {
			case <-t.C:
				if mt.e.Load() {
					select {
					case c <- true:
					default:
					}
				}
			case <-mt.i:
				t.Stop()
			case <-mt.done:
				t.Stop()
				return
			}
		}
	}()

	return mt
}

func (mt *MutableTicker) Interval() time.Duration {
	return time.Duration(mt.d.Load())
}

func (mt *MutableTicker) SetInterval(d time.Duration) {
	mt.d.Store(int64(d))
	mt.interrupt()
}

func (mt *MutableTicker) Stop() {
	mt.e.Store(false)
	mt.interrupt()
}

func (mt *MutableTicker) Start() {
	mt.e.Store(true)
	mt.interrupt()
}

// Close ends the ticker goroutine. The ticker cannot be restarted.
func (mt *MutableTicker) Close() {
	mt.once.Do(func() { close(mt.done) })
}

func (mt *MutableTicker) interrupt() {
	select {
	case mt.i <- true:
	default:
	}
}
