// Package config holds the client settings read from ptpipctl.yaml.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hanwen/go-ptpip/ptpip"
)

const DefaultPath = "ptpipctl.yaml"

type Camera struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	DeviceID string `yaml:"device_id"`
}

type Client struct {
	Name string `yaml:"name"`
}

type Session struct {
	Keepalive   time.Duration `yaml:"keepalive"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

type Debug struct {
	Stream  bool `yaml:"stream"`
	Session bool `yaml:"session"`
	Data    bool `yaml:"data"`
	Relay   bool `yaml:"relay"`
}

type Relay struct {
	Listen string `yaml:"listen"`

	// Poll is how often property snapshots are refreshed without a
	// property change event.
	Poll time.Duration `yaml:"poll"`
}

type Config struct {
	Camera  Camera  `yaml:"camera"`
	Client  Client  `yaml:"client"`
	Session Session `yaml:"session"`
	Debug   Debug   `yaml:"debug"`
	Relay   Relay   `yaml:"relay"`
}

func Default() *Config {
	return &Config{
		Camera:  Camera{Port: ptpip.DefaultPort},
		Client:  Client{Name: "go-ptpip"},
		Session: Session{DialTimeout: 5 * time.Second},
		Relay:   Relay{Listen: ":8080", Poll: 10 * time.Second},
	}
}

// Load reads path over the defaults. A missing file is not an error
// when path is DefaultPath.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && path == DefaultPath {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if err := c.Merge(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Merge applies YAML data on top of c. Environment variables in data are
// expanded first.
func (c *Config) Merge(data []byte) error {
	data = []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(data, c); err != nil {
		return err
	}
	return c.Validate()
}

// Set applies one "section.key=value" override.
func (c *Config) Set(kv string) error {
	i := strings.IndexByte(kv, '=')
	if i < 0 {
		return fmt.Errorf("override %q: want section.key=value", kv)
	}
	path := strings.Split(kv[:i], ".")
	if len(path) < 2 {
		return fmt.Errorf("override %q: want section.key=value", kv)
	}

	// camera.port=1234 => {camera: {port: 1234}}
	var pre, suf string
	for _, p := range path {
		pre += "{" + p + ": "
		suf += "}"
	}
	return c.Merge([]byte(pre + kv[i+1:] + suf))
}

func (c *Config) Validate() error {
	if c.Camera.Port <= 0 || c.Camera.Port > 0xffff {
		return fmt.Errorf("camera.port %d out of range", c.Camera.Port)
	}
	if len(c.Client.Name) > 80 {
		return fmt.Errorf("client.name longer than 80 characters")
	}
	if c.Session.Keepalive < 0 || c.Session.DialTimeout < 0 {
		return fmt.Errorf("negative session duration")
	}
	return nil
}

// Options converts c into session options.
func (c *Config) Options() ptpip.Options {
	return ptpip.Options{
		Host:        c.Camera.Host,
		Port:        c.Camera.Port,
		DeviceID:    c.Camera.DeviceID,
		ClientName:  c.Client.Name,
		DialTimeout: c.Session.DialTimeout,
		Keepalive:   c.Session.Keepalive,
		Debug: ptpip.DebugFlags{
			Stream:  c.Debug.Stream,
			Session: c.Debug.Session,
			Data:    c.Debug.Data,
			Relay:   c.Debug.Relay,
		},
	}
}
