// Package config resolves the startup parameters of the clock from
// defaults and an optional key file.
//
// The key file uses the freedesktop key file syntax:
//
//	[fbclock]
//	device=/dev/fb1
//	battery=/sys/class/power_supply/BAT0/capacity
//	log-file=$XDG_RUNTIME_DIR/fbclock.log
//	layout=Mon Jan _2 15:04:05 2006
//	foreground=false
//	interval=1s
package config

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rkoesters/xdg/keyfile"
	"mvdan.cc/sh/shell"

	"github.com/srlehn/fbclock/internal/consts"
	"github.com/srlehn/fbclock/internal/errors"
)

const (
	Group = consts.ProgramName

	KeyDevice     = `device`
	KeyBattery    = `battery`
	KeyLogFile    = `log-file`
	KeyLayout     = `layout`
	KeyForeground = `foreground`
	KeyInterval   = `interval`
)

type Config struct {
	Device     string
	Capacity   string // battery capacity file, empty disables the suffix
	LogFile    string
	Layout     string // empty: asctime layout
	Foreground bool
	Interval   time.Duration
}

func Default() Config {
	return Config{
		Device:   consts.DefaultDevice,
		Interval: time.Second,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/fbclock/fbclock.conf.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ``, errors.New(err)
	}
	return filepath.Join(dir, consts.ProgramName, consts.ProgramName+`.conf`), nil
}

// Load returns the defaults overridden by the key file at path.
// With an empty path the default location is tried and may be absent.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := len(path) > 0
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			// no home directory, nothing to load
			return cfg, nil
		}
	}
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, errors.Op(path, `open config`, err)
	}
	defer f.Close()
	if err := cfg.Read(f); err != nil {
		return cfg, errors.Op(path, `read config`, err)
	}
	return cfg, nil
}

// Read overrides the fields whose keys are present in the key file.
func (c *Config) Read(r io.Reader) error {
	if err := errors.NilParam(r); err != nil {
		return err
	}
	kf, err := keyfile.New(r)
	if err != nil {
		return errors.New(err)
	}
	strs := []struct {
		key    string
		dst    *string
		isPath bool
	}{
		{KeyDevice, &c.Device, true},
		{KeyBattery, &c.Capacity, true},
		{KeyLogFile, &c.LogFile, true},
		{KeyLayout, &c.Layout, false},
	}
	for _, s := range strs {
		if !kf.KeyExists(Group, s.key) {
			continue
		}
		v, err := kf.String(Group, s.key)
		if err != nil {
			return errors.WrapPrefix(err, s.key, 0)
		}
		if s.isPath {
			if v, err = ExpandPath(v); err != nil {
				return errors.WrapPrefix(err, s.key, 0)
			}
		}
		*s.dst = v
	}
	if kf.KeyExists(Group, KeyForeground) {
		c.Foreground, err = kf.Bool(Group, KeyForeground)
		if err != nil {
			return errors.WrapPrefix(err, KeyForeground, 0)
		}
	}
	if kf.KeyExists(Group, KeyInterval) {
		c.Interval, err = time.ParseDuration(kf.Value(Group, KeyInterval))
		if err != nil {
			return errors.WrapPrefix(err, KeyInterval, 0)
		}
	}
	return nil
}

// ExpandPath expands shell parameters like $HOME and ${XDG_RUNTIME_DIR}
// from the environment.
func ExpandPath(p string) (string, error) {
	if len(p) == 0 {
		return p, nil
	}
	exp, err := shell.Expand(p, nil)
	if err != nil {
		return ``, errors.New(err)
	}
	return exp, nil
}

func (c Config) Validate() error {
	if len(c.Device) == 0 {
		return errors.New(`no framebuffer device`)
	}
	if c.Interval <= 0 {
		return errors.Errorf(`invalid interval %v`, c.Interval)
	}
	return nil
}

// Abs makes the file paths absolute against the working directory.
// The detached clock runs in "/", so relative paths would not resolve there.
func (c *Config) Abs() error {
	if c == nil {
		return errors.NilReceiver()
	}
	for _, p := range []*string{&c.Device, &c.Capacity, &c.LogFile} {
		if len(*p) == 0 || filepath.IsAbs(*p) {
			continue
		}
		abs, err := filepath.Abs(*p)
		if err != nil {
			return errors.New(err)
		}
		*p = abs
	}
	return nil
}
