package config

import (
	"errors"
	"flag"
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

// parseFlags parses the server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-jwt-secret token signing key
//	-jwt-issuer token issuer name
//	-jwt-expiry token lifetime in seconds
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-nano-banana-url image model endpoint
//	-nano-banana-timeout image model call timeout
//	-auto-migrate apply schema migrations at startup
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenExpiry int64
	var requestTimeout time.Duration
	var synthesizerURL string
	var synthesizerTimeout time.Duration
	var autoMigrate bool

	fs := flag.NewFlagSet("brand-snap", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "jwt-secret", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "jwt-issuer", "", "Token issuer")
	fs.Int64Var(&tokenExpiry, "jwt-expiry", 0, "Token lifetime in seconds")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&synthesizerURL, "nano-banana-url", "", "Image model endpoint")
	fs.DurationVar(&synthesizerTimeout, "nano-banana-timeout", 0, "Image model call timeout")
	fs.BoolVar(&autoMigrate, "auto-migrate", false, "Apply schema migrations at startup")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:       tokenSignKey,
			TokenIssuer:        tokenIssuer,
			TokenExpirySeconds: tokenExpiry,
		},
		Storage: Storage{
			DB: DB{
				DSN:         databaseDSN,
				AutoMigrate: autoMigrate,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Synthesizer: Synthesizer{
			Endpoint: synthesizerURL,
			Timeout:  synthesizerTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
