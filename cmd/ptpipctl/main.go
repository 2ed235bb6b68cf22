// ptpipctl talks to a camera over PTP/IP.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hanwen/go-ptpip/config"
	"github.com/hanwen/go-ptpip/log"
	"github.com/hanwen/go-ptpip/propcodec"
	"github.com/hanwen/go-ptpip/ptpip"
	"github.com/hanwen/go-ptpip/relay"
)

type overrides []string

func (o *overrides) String() string { return strings.Join(*o, " ") }

func (o *overrides) Set(v string) error {
	*o = append(*o, v)
	return nil
}

const usage = `usage: ptpipctl [flags] COMMAND

commands:
  info       print the device info dataset
  props      print every property the camera reports
  objects    list storages and the objects on them
  ping       probe the event channel
  relay      serve events and properties over websocket
`

func main() {
	var sets overrides
	confPath := flag.String("config", config.DefaultPath, "configuration file")
	host := flag.String("host", "", "camera address, overrides camera.host")
	flag.Var(&sets, "set", "override a setting, as section.key=value (repeatable)")
	sony := flag.Bool("sony", true, "run the Sony remote control handshake after connecting")
	timeout := flag.Duration("timeout", 10*time.Second, "timeout for each camera operation")
	verbose := flag.Bool("v", false, "log at debug level")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	l := log.NewChildLogger(log.Root, "main", *verbose)

	conf, err := config.Load(*confPath)
	if err != nil {
		l.Fatalf("config: %v", err)
	}
	for _, kv := range sets {
		if err := conf.Set(kv); err != nil {
			l.Fatalf("config: %v", err)
		}
	}
	if *host != "" {
		conf.Camera.Host = *host
	}
	if *verbose {
		conf.Debug.Stream = true
		conf.Debug.Session = true
	}
	if conf.Camera.Host == "" {
		l.Fatalf("no camera address; use -host or camera.host")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sess := ptpip.NewSession(conf.Options())
	sess.OnDisconnect(func(err error) {
		l.Warningf("camera disconnected: %v", err)
	})

	cctx, cancel := context.WithTimeout(ctx, *timeout)
	err = sess.ConnectContext(cctx)
	cancel()
	if err != nil {
		l.Fatalf("connect: %v", err)
	}
	defer sess.Disconnect()
	id, name := sess.Peer()
	l.Infof("connected to %q (%x), session %d", name, id, sess.SessionID())

	c := &cli{sess: sess, conf: conf, timeout: *timeout, log: l}
	if err := c.open(ctx, *sony); err != nil {
		l.Fatalf("open session: %v", err)
	}

	switch cmd := flag.Arg(0); cmd {
	case "info":
		err = c.info(ctx)
	case "props":
		err = c.props(ctx)
	case "objects":
		err = c.objects(ctx)
	case "ping":
		err = c.ping(ctx)
	case "relay":
		err = c.serve(ctx)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		l.Fatalf("%s: %v", flag.Arg(0), err)
	}
}

type cli struct {
	sess    *ptpip.Session
	conf    *config.Config
	timeout time.Duration
	log     *log.ChildLogger
}

func (c *cli) ctx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, c.timeout)
}

// open starts the PTP session and, for Sony bodies, the three step
// SDIO handshake that unlocks remote control.
func (c *cli) open(parent context.Context, sony bool) error {
	ctx, cancel := c.ctx(parent)
	defer cancel()

	if err := c.sess.OpenSession(ctx, 1); err != nil {
		return err
	}
	if !sony {
		return nil
	}
	for phase := uint32(1); phase <= 3; phase++ {
		if err := c.sess.SDIOConnect(ctx, phase); err != nil {
			return fmt.Errorf("SDIO connect %d: %w", phase, err)
		}
	}
	return nil
}

func (c *cli) info(parent context.Context) error {
	ctx, cancel := c.ctx(parent)
	defer cancel()

	info, err := c.sess.GetDeviceInfo(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s (%s), serial %s\n", info.Manufacturer, info.Model, info.DeviceVersion, info.SerialNumber)
	fmt.Printf("vendor extension %#x: %s\n", info.VendorExtensionID, info.VendorExtensionDesc)
	printCodes("operations", info.OperationsSupported, ptpip.OC_names)
	printCodes("events", info.EventsSupported, ptpip.EC_names)
	printCodes("properties", info.DevicePropertiesSupported, ptpip.DPC_names)
	return nil
}

func printCodes(title string, codes []uint16, names map[int]string) {
	fmt.Printf("%s:\n", title)
	for _, code := range codes {
		n, ok := names[int(code)]
		if !ok {
			n = "?"
		}
		fmt.Printf("  %#04x %s\n", code, n)
	}
}

func (c *cli) props(parent context.Context) error {
	ctx, cancel := c.ctx(parent)
	defer cancel()

	raw, err := c.sess.GetAllDevicePropDescContext(ctx, false)
	if err != nil {
		return err
	}
	sort.Slice(raw, func(i, j int) bool { return raw[i].Code < raw[j].Code })
	for _, d := range raw {
		rw := "r "
		if d.Writable() {
			rw = "rw"
		}
		p, ok := propcodec.Decode(d)
		if !ok || p.Current == nil {
			fmt.Printf("%#04x %s %-28s %v\n", d.Code, rw, ptpip.DPC_names[int(d.Code)], d.Current)
			continue
		}
		var avail []string
		for _, v := range p.Available {
			avail = append(avail, v.String())
		}
		fmt.Printf("%#04x %s %-28s %s", d.Code, rw, p.Name(), p.Current)
		if len(avail) > 0 {
			fmt.Printf(" [%s]", strings.Join(avail, ", "))
		}
		fmt.Println()
	}
	return nil
}

func (c *cli) objects(parent context.Context) error {
	ctx, cancel := c.ctx(parent)
	defer cancel()

	sids, err := c.sess.GetStorageIDs(ctx)
	if err != nil {
		return err
	}
	for _, sid := range sids {
		handles, err := c.sess.GetObjectHandles(ctx, sid, 0, 0)
		if err != nil {
			return fmt.Errorf("storage %#x: %w", sid, err)
		}
		fmt.Printf("storage %#x: %d objects\n", sid, len(handles))
		for _, h := range handles {
			info, err := c.sess.GetObjectInfoContext(ctx, h)
			if err != nil {
				c.log.Warningf("object %#x: %v", h, err)
				continue
			}
			fmt.Printf("  %#08x %-24s %10d %s\n", h, info.Filename, info.CompressedSize, info.CaptureDate.Format(time.RFC3339))
		}
	}
	return nil
}

func (c *cli) ping(parent context.Context) error {
	ctx, cancel := c.ctx(parent)
	defer cancel()

	start := time.Now()
	done := make(chan error, 1)
	if err := c.sess.Ping(func(err error) { done <- err }); err != nil {
		return err
	}
	select {
	case err := <-done:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		return ctx.Err()
	}
	fmt.Printf("pong in %v\n", time.Since(start))
	fmt.Println(c.sess.Stats())
	return nil
}

func (c *cli) serve(parent context.Context) error {
	eg, ctx := errgroup.WithContext(parent)
	srv := relay.NewServer(ctx, c.sess, c.conf.Relay.Poll, c.sess.Log().Relay)
	hs := &http.Server{Addr: c.conf.Relay.Listen, Handler: srv.Handler()}

	eg.Go(srv.Run)
	eg.Go(func() error {
		c.log.Infof("relay listening on %s", hs.Addr)
		if err := hs.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.Shutdown(sctx)
	})
	return eg.Wait()
}
