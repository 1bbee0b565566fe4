package config

import "time"

// Config collects every tunable of the storefront. Values are parsed from
// the environment with the CAFEJS prefix.
type Config struct {
	Web     Web
	DB      DB
	Session Session
	Login   Login
}

type Web struct {
	Address         string        `conf:"default:0.0.0.0:3000"`
	ReadTimeout     time.Duration `conf:"default:5s"`
	WriteTimeout    time.Duration `conf:"default:10s"`
	IdleTimeout     time.Duration `conf:"default:120s"`
	ShutdownTimeout time.Duration `conf:"default:20s"`
}

type DB struct {
	User         string `conf:"default:postgres"`
	Password     string `conf:"default:postgres,mask"`
	Host         string `conf:"default:localhost"`
	Name         string `conf:"default:cafejs"`
	MaxOpenConns int    `conf:"default:25"`
	MaxIdleConns int    `conf:"default:25"`
	DisableTLS   bool   `conf:"default:true"`
}

// Session selects where issued tokens live. The memory backend matches the
// original behavior: sessions are lost on restart. The postgres backend
// stores them in the session table instead.
type Session struct {
	Backend string `conf:"default:memory"`
}

// Login shapes the rate limit applied to the login endpoint.
type Login struct {
	Burst     int           `conf:"default:10"`
	Every     time.Duration `conf:"default:500ms"`
	ClientTTL int           `conf:"default:60"`
}
