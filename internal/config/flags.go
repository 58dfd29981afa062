package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d record store DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "720h")
//	-request-timeout server request timeout (e.g., "10s")
//	-rate-limit requests per second per identity
//	-rate-burst rate limiter burst
//	-mongo-db MongoDB database name
//	-server-url vault API base URL used by the client
//	-token bearer token used by the client
//	-identity owner e-mail used by the client
//	-auto-lock client inactivity lock period (e.g., "5m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-pass-vault", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, mongoDatabase string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout, autoLock time.Duration
	var rateLimit float64
	var rateBurst int
	var serverURL, token, identity string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Record store DSN")
	fs.StringVar(&mongoDatabase, "mongo-db", "", "MongoDB database name")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 720h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Requests per second per identity")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Rate limiter burst")
	fs.StringVar(&serverURL, "server-url", "", "Vault API base URL")
	fs.StringVar(&token, "token", "", "Bearer token for the vault API")
	fs.StringVar(&identity, "identity", "", "Owner e-mail")
	fs.DurationVar(&autoLock, "auto-lock", 0, "Lock the vault after inactivity (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Mongo: Mongo{Database: mongoDatabase},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Adapter: Adapter{
			HTTPAddress: serverURL,
			Token:       token,
		},
		Client: Client{
			Identity: identity,
			AutoLock: autoLock,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns "" when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
