// Package relay forwards camera events and property snapshots to
// websocket clients and applies the property changes they request.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/paulbellamy/ratecounter"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/hanwen/go-ptpip/log"
	"github.com/hanwen/go-ptpip/propcodec"
	"github.com/hanwen/go-ptpip/ptpip"
)

// Camera is the part of a session the relay drives.
type Camera interface {
	OnEvent(func(*ptpip.Event))
	GetAllDevicePropDescContext(ctx context.Context, partial bool) ([]*ptpip.DeviceProperty, error)
	SetControlDeviceA(ctx context.Context, code uint16, dt ptpip.DataTypeSelector, v ptpip.DataDependentType) error
	Stats() *ptpip.Stats
	Done() <-chan struct{}
}

const eventQueue = 64

// Server pushes camera events and decoded properties to websocket
// clients.
type Server struct {
	upgrader       websocket.Upgrader
	eventClients   map[*websocket.Conn]bool
	eventLock      sync.Mutex
	controlClients map[*websocket.Conn]bool
	controlLock    sync.Mutex

	cam     Camera
	camLock sync.Mutex

	props     map[uint16]*propcodec.Property
	propsLock sync.Mutex

	events     chan *ptpip.Event
	eventRate  *ratecounter.RateCounter
	eventCount *atomic.Uint64
	dropped    *atomic.Uint64

	pollTicker *ptpip.MutableTicker
	refreshNow chan bool
	statsEvery time.Duration

	eg  *errgroup.Group
	ctx context.Context
	log *log.ChildLogger
}

func NewServer(ctx context.Context, cam Camera, poll time.Duration, log *log.ChildLogger) *Server {
	eg, egCtx := errgroup.WithContext(ctx)
	if poll <= 0 {
		poll = 10 * time.Second
	}
	s := &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		eventClients:   map[*websocket.Conn]bool{},
		controlClients: map[*websocket.Conn]bool{},

		cam:   cam,
		props: map[uint16]*propcodec.Property{},

		events:     make(chan *ptpip.Event, eventQueue),
		eventRate:  ratecounter.NewRateCounter(time.Second),
		eventCount: atomic.NewUint64(0),
		dropped:    atomic.NewUint64(0),

		pollTicker: ptpip.NewMutableTicker(poll),
		refreshNow: make(chan bool, 1),
		statsEvery: time.Second,

		eg:  eg,
		ctx: egCtx,
		log: log,
	}
	cam.OnEvent(s.enqueue)
	return s
}

// Handler serves /events and /control.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/events", s.HandleEvents)
	mux.HandleFunc("/control", s.HandleControl)
	mux.HandleFunc("/properties", s.HandleProperties)
	return log.HTTPLogHandler(mux)
}

// Message is everything the relay sends to clients. Type selects the
// field that is set.
type Message struct {
	Type       string            `json:"type"`
	Event      *EventPayload     `json:"event,omitempty"`
	Properties []PropertyPayload `json:"properties,omitempty"`
	Stats      *StatsPayload     `json:"stats,omitempty"`
	Result     *ResultPayload    `json:"result,omitempty"`
}

type EventPayload struct {
	Code   uint16   `json:"code"`
	Name   string   `json:"name"`
	Params []uint32 `json:"params,omitempty"`
}

type PropertyPayload struct {
	Code      uint16   `json:"code"`
	Name      string   `json:"name"`
	Current   string   `json:"current,omitempty"`
	Available []string `json:"available,omitempty"`
	Writable  bool     `json:"writable"`
}

type StatsPayload struct {
	Control         ptpip.ChannelRate `json:"control"`
	Event           ptpip.ChannelRate `json:"event"`
	EventsPerSecond int64             `json:"events_per_second"`
	Events          uint64            `json:"events"`
	Dropped         uint64            `json:"dropped"`
}

type ResultPayload struct {
	Code  uint16 `json:"code"`
	Value string `json:"value"`
	Error string `json:"error,omitempty"`
}

// ControlPayload is what control clients send.
type ControlPayload struct {
	Set     *SetPayload `json:"set,omitempty"`
	Refresh *bool       `json:"refresh,omitempty"`
	Poll    *int        `json:"poll,omitempty"`
}

// SetPayload selects a value by the name the relay reported for it.
type SetPayload struct {
	Code  uint16 `json:"code"`
	Value string `json:"value"`
}

// HTTP handler / WebSocket

func (s *Server) HandleEvents(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithField("prefix", "relay.HandleEvents").Errorf("failed to upgrade: %s", err)
		return
	}
	defer ws.Close()

	s.register(&s.eventLock, s.eventClients, ws)
	defer s.unregister(&s.eventLock, s.eventClients, ws)
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			s.log.Debugf("event client gone: %s", err)
			return
		}
	}
}

func (s *Server) HandleControl(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithField("prefix", "relay.HandleControl").Errorf("failed to upgrade: %s", err)
		return
	}
	defer ws.Close()

	s.register(&s.controlLock, s.controlClients, ws)
	defer s.unregister(&s.controlLock, s.controlClients, ws)

	s.send(&s.controlLock, ws, &Message{Type: "properties", Properties: s.snapshot()})
	for {
		var p ControlPayload
		if err := ws.ReadJSON(&p); err != nil {
			s.log.Debugf("control client gone: %s", err)
			return
		}

		if p.Poll != nil {
			if *p.Poll < 1 {
				s.log.Warningf("invalid poll interval: %d", *p.Poll)
			} else {
				s.pollTicker.SetInterval(time.Duration(*p.Poll) * time.Second)
				s.log.Debugf("set poll interval: %ds", *p.Poll)
			}
		}

		if p.Refresh != nil && *p.Refresh {
			s.refresh()
		}

		if p.Set != nil {
			res := s.set(p.Set)
			s.send(&s.controlLock, ws, &Message{Type: "result", Result: res})
		}
	}
}

// HandleProperties serves the current snapshot as JSON.
func (s *Server) HandleProperties(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.snapshot()); err != nil {
		s.log.Warningf("failed to write properties: %s", err)
	}
}

func (s *Server) register(mu *sync.Mutex, clients map[*websocket.Conn]bool, c *websocket.Conn) {
	mu.Lock()
	defer mu.Unlock()
	clients[c] = true
}

func (s *Server) unregister(mu *sync.Mutex, clients map[*websocket.Conn]bool, c *websocket.Conn) {
	mu.Lock()
	defer mu.Unlock()
	delete(clients, c)
}

func (s *Server) send(mu *sync.Mutex, c *websocket.Conn, m *Message) {
	mu.Lock()
	defer mu.Unlock()
	if err := c.WriteJSON(m); err != nil {
		s.log.Warningf("failed to send %s: %s", m.Type, err)
	}
}

func (s *Server) broadcast(mu *sync.Mutex, clients map[*websocket.Conn]bool, m *Message) {
	j, err := json.Marshal(m)
	if err != nil {
		s.log.Errorf("failed to marshal %s: %s", m.Type, err)
		return
	}

	mu.Lock()
	defer mu.Unlock()
	for c := range clients {
		if err := c.WriteMessage(websocket.TextMessage, j); err != nil {
			s.log.Warningf("failed to send %s: %s", m.Type, err)
		}
	}
}

// enqueue runs on the session's reader goroutine and must not block.
func (s *Server) enqueue(e *ptpip.Event) {
	s.eventRate.Incr(1)
	s.eventCount.Inc()
	select {
	case s.events <- e:
	default:
		s.dropped.Inc()
	}
}

func (s *Server) refresh() {
	select {
	case s.refreshNow <- true:
	default:
	}
}

// Workers

// Run serves until ctx is cancelled or the camera disconnects.
func (s *Server) Run() error {
	defer s.pollTicker.Close()

	s.eg.Go(s.workerProps)
	s.eg.Go(s.workerBroadcastEvents)
	s.eg.Go(s.workerBroadcastStats)
	s.eg.Go(func() error {
		select {
		case <-s.cam.Done():
			return ptpip.ErrSocketClosed
		case <-s.ctx.Done():
			return nil
		}
	})
	return s.eg.Wait()
}

func (s *Server) workerProps() error {
	partial := false
	for {
		if err := s.fetchProps(partial); err != nil {
			s.log.Warning(err)
		} else {
			partial = true
		}

		select {
		case <-s.pollTicker.C:
		case <-s.refreshNow:
		case <-s.ctx.Done():
			return nil
		}
	}
}

func (s *Server) workerBroadcastEvents() error {
	for {
		var e *ptpip.Event
		select {
		case e = <-s.events:
		case <-s.ctx.Done():
			return nil
		}

		s.log.Debugf("event %v", e)
		if e.Code == ptpip.EC_SONY_PropertyChanged || e.Code == ptpip.EC_DevicePropChanged {
			s.refresh()
		}
		s.broadcast(&s.eventLock, s.eventClients, &Message{Type: "event", Event: &EventPayload{
			Code:   e.Code,
			Name:   ptpip.EC_names[int(e.Code)],
			Params: e.Param,
		}})
	}
}

func (s *Server) workerBroadcastStats() error {
	tick := time.NewTicker(s.statsEvery)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
		case <-s.ctx.Done():
			return nil
		}

		st := s.cam.Stats()
		s.broadcast(&s.controlLock, s.controlClients, &Message{Type: "stats", Stats: &StatsPayload{
			Control:         st.Control(),
			Event:           st.Event(),
			EventsPerSecond: s.eventRate.Rate(),
			Events:          s.eventCount.Load(),
			Dropped:         s.dropped.Load(),
		}})
	}
}

// Camera communication, one transaction at a time

func (s *Server) fetchProps(partial bool) error {
	s.camLock.Lock()
	raw, err := s.cam.GetAllDevicePropDescContext(s.ctx, partial)
	s.camLock.Unlock()
	if err != nil {
		return fmt.Errorf("failed to fetch properties: %s", err)
	}

	decoded := propcodec.DecodeAll(raw)
	if len(decoded) == 0 {
		return nil
	}

	s.propsLock.Lock()
	for code, p := range decoded {
		s.props[code] = p
	}
	s.propsLock.Unlock()

	s.broadcast(&s.controlLock, s.controlClients, &Message{Type: "properties", Properties: payloads(decoded)})
	s.broadcast(&s.eventLock, s.eventClients, &Message{Type: "properties", Properties: payloads(decoded)})
	return nil
}

func (s *Server) set(p *SetPayload) *ResultPayload {
	res := &ResultPayload{Code: p.Code, Value: p.Value}

	s.propsLock.Lock()
	prop, ok := s.props[p.Code]
	s.propsLock.Unlock()
	if !ok {
		res.Error = fmt.Sprintf("unknown property 0x%04x", p.Code)
		return res
	}
	v, ok := prop.Find(p.Value)
	if !ok {
		res.Error = fmt.Sprintf("%s: %q is not available", prop.Name(), p.Value)
		return res
	}
	if !prop.Writable {
		res.Error = fmt.Sprintf("%s is read only", prop.Name())
		return res
	}

	w := v.ToWire()
	s.log.Debugf("set %s", w)
	s.camLock.Lock()
	err := s.cam.SetControlDeviceA(s.ctx, w.Code, w.Type, w.Value)
	s.camLock.Unlock()
	if err != nil {
		res.Error = err.Error()
		return res
	}
	s.refresh()
	return res
}

func (s *Server) snapshot() []PropertyPayload {
	s.propsLock.Lock()
	defer s.propsLock.Unlock()
	return payloads(s.props)
}

func payloads(props map[uint16]*propcodec.Property) []PropertyPayload {
	out := make([]PropertyPayload, 0, len(props))
	for _, p := range props {
		pp := PropertyPayload{
			Code:     p.Code,
			Name:     p.Name(),
			Writable: p.Writable,
		}
		if p.Current != nil {
			pp.Current = p.Current.String()
		}
		for _, v := range p.Available {
			pp.Available = append(pp.Available, v.String())
		}
		out = append(out, pp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
