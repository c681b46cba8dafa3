// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line into a [StructuredConfig].
//
// Flags:
//
//	-a               HTTP server address in format [host]:port
//	-grpc-address    gRPC health server address in format [host]:port
//	-env             run mode (development|production)
//	-d               database DSN
//	-db-driver       database driver (sqlite|postgres)
//	-c/-config       JSON file path with configs
//	-token-sign-key  token signing key
//	-token-issuer    token issuer name
//	-token-duration  token lifetime (e.g. "1h", "30m")
//	-log-level       log level (debug|info|warn|error)
//	-allow-shutdown  enable POST /shutdown
//	-weather-api-key OpenWeather API key
//	-news-api-key    NewsAPI key
//	-request-timeout outbound request timeout (e.g. "10s")
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var cfg StructuredConfig

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health server address host:port")
	fs.StringVar(&cfg.App.Env, "env", "", "Run mode (development|production)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "db-driver", "", "Database driver (sqlite|postgres)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.BoolVar(&cfg.Server.AllowShutdown, "allow-shutdown", false, "Enable POST /shutdown")
	fs.StringVar(&cfg.Adapter.Weather.APIKey, "weather-api-key", "", "OpenWeather API key")
	fs.StringVar(&cfg.Adapter.News.APIKey, "news-api-key", "", "NewsAPI key")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address is rendered as an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host binds all interfaces; otherwise the host must
// be "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
