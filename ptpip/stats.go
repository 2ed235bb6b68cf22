package ptpip

import (
	"fmt"
	"time"

	"github.com/paulbellamy/ratecounter"
	"go.uber.org/atomic"
)

type channelStats struct {
	packets *ratecounter.RateCounter
	bytes   *ratecounter.RateCounter
	total   *atomic.Uint64
}

func newChannelStats() *channelStats {
	return &channelStats{
		packets: ratecounter.NewRateCounter(time.Second),
		bytes:   ratecounter.NewRateCounter(time.Second),
		total:   atomic.NewUint64(0),
	}
}

func (c *channelStats) add(packets, bytes int) {
	c.packets.Incr(int64(packets))
	c.bytes.Incr(int64(bytes))
	c.total.Add(uint64(packets))
}

// Stats counts received packets and bytes per channel.
type Stats struct {
	control *channelStats
	event   *channelStats
}

func NewStats() *Stats {
	return &Stats{
		control: newChannelStats(),
		event:   newChannelStats(),
	}
}

// ChannelRate is a point-in-time view of one channel.
type ChannelRate struct {
	PacketsPerSecond int64  `json:"packets_per_second"`
	BytesPerSecond   int64  `json:"bytes_per_second"`
	Packets          uint64 `json:"packets"`
}

func (c *channelStats) rate() ChannelRate {
	return ChannelRate{
		PacketsPerSecond: c.packets.Rate(),
		BytesPerSecond:   c.bytes.Rate(),
		Packets:          c.total.Load(),
	}
}

func (s *Stats) Control() ChannelRate { return s.control.rate() }
func (s *Stats) Event() ChannelRate   { return s.event.rate() }

func (s *Stats) String() string {
	c, e := s.Control(), s.Event()
	return fmt.Sprintf("control: %d pkt/s %d B/s (%d total), event: %d pkt/s %d B/s (%d total)",
		c.PacketsPerSecond, c.BytesPerSecond, c.Packets,
		e.PacketsPerSecond, e.BytesPerSecond, e.Packets)
}
