package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dbx-go/dbx/internal/dialect"
)

// Config represents the application configuration.
type Config struct {
	Profiles    []Profile   `mapstructure:"profiles" yaml:"profiles"`
	Preferences Preferences `mapstructure:"preferences" yaml:"preferences"`
}

// Profile is a saved set of connection parameters. Passwords are never
// written to the config file; the loader keeps them in the OS keychain.
type Profile struct {
	Name     string `mapstructure:"name" yaml:"name"`
	Dialect  string `mapstructure:"dialect" yaml:"dialect"`
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	Database string `mapstructure:"database" yaml:"database"`
	Username string `mapstructure:"username" yaml:"username"`
	Password string `mapstructure:"-" yaml:"-"`
	File     string `mapstructure:"file" yaml:"file,omitempty"`
	SSLMode  string `mapstructure:"sslmode" yaml:"sslmode,omitempty"`
}

// Preferences holds user preferences.
type Preferences struct {
	DefaultProfile string `mapstructure:"default_profile" yaml:"default_profile"`
}

// DSN builds the connection string the profile's driver expects.
func (p Profile) DSN() string {
	switch dialect.Dialect(p.Dialect) {
	case dialect.MySQL:
		dsn := ""
		if p.Username != "" {
			dsn = p.Username
			if p.Password != "" {
				dsn += ":" + p.Password
			}
			dsn += "@"
		}
		return fmt.Sprintf("%stcp(%s:%d)/%s?parseTime=true", dsn, p.Host, p.Port, p.Database)
	case dialect.SQLite:
		return p.File
	case dialect.MSSQL:
		u := &url.URL{
			Scheme: "sqlserver",
			Host:   fmt.Sprintf("%s:%d", p.Host, p.Port),
		}
		if p.Username != "" {
			u.User = url.UserPassword(p.Username, p.Password)
		}
		q := url.Values{}
		q.Set("database", p.Database)
		u.RawQuery = q.Encode()
		return u.String()
	default: // postgres, redshift
		dsn := "postgresql://"
		if p.Username != "" {
			dsn += url.QueryEscape(p.Username)
			if p.Password != "" {
				dsn += ":" + url.QueryEscape(p.Password)
			}
			dsn += "@"
		}
		dsn += p.Host
		if p.Port > 0 {
			dsn += ":" + strconv.Itoa(p.Port)
		}
		dsn += "/" + p.Database
		if p.SSLMode != "" {
			dsn += "?sslmode=" + p.SSLMode
		}
		return dsn
	}
}

// DisplayString returns a human-readable summary of the profile.
func (p Profile) DisplayString() string {
	if dialect.Dialect(p.Dialect) == dialect.SQLite {
		return p.File
	}
	s := p.Host
	if p.Port > 0 {
		s += ":" + strconv.Itoa(p.Port)
	}
	s += "/" + p.Database
	if p.Username != "" {
		s = p.Username + "@" + s
	}
	return s
}

// ParseDSN parses a connection string into a Profile. A bare path with no
// scheme is treated as a SQLite database file.
func ParseDSN(dsn string) (Profile, error) {
	if !strings.Contains(dsn, "://") {
		return Profile{
			Name:    "sqlite-" + dsn,
			Dialect: string(dialect.SQLite),
			File:    dsn,
		}, nil
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return Profile{}, fmt.Errorf("invalid DSN: %w", err)
	}

	d, err := dialect.Parse(u.Scheme)
	if err != nil {
		return Profile{}, fmt.Errorf("invalid DSN: %w", err)
	}

	if d == dialect.SQLite {
		path := u.Path
		if u.Host != "" {
			path = u.Host + path
		}
		return Profile{
			Name:    "sqlite-" + path,
			Dialect: string(d),
			File:    path,
		}, nil
	}

	p := Profile{
		Dialect:  string(d),
		Host:     u.Hostname(),
		Database: strings.TrimPrefix(u.Path, "/"),
		SSLMode:  u.Query().Get("sslmode"),
	}
	if d == dialect.MSSQL {
		p.Database = u.Query().Get("database")
	}

	if u.User != nil {
		p.Username = u.User.Username()
		if pw, ok := u.User.Password(); ok {
			p.Password = pw
		}
	}

	if portStr := u.Port(); portStr != "" {
		p.Port, _ = strconv.Atoi(portStr)
	}
	if p.Port == 0 {
		p.Port = d.DefaultPort()
	}

	p.Name = fmt.Sprintf("%s-%s-%d-%s", p.Dialect, p.Host, p.Port, p.Database)
	return p, nil
}

// HasProfile checks if a profile with the given name already exists.
func (cfg *Config) HasProfile(name string) bool {
	for _, p := range cfg.Profiles {
		if p.Name == name {
			return true
		}
	}
	return false
}

// AddProfile appends a profile, replacing an existing one of the same name.
func (cfg *Config) AddProfile(p Profile) {
	for i, existing := range cfg.Profiles {
		if existing.Name == p.Name {
			cfg.Profiles[i] = p
			return
		}
	}
	cfg.Profiles = append(cfg.Profiles, p)
}

// Lookup returns the named profile.
func (cfg *Config) Lookup(name string) (Profile, bool) {
	for _, p := range cfg.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}
