package config

import (
	"errors"
	"flag"
	"io"
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

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server http address in format [host]:[port]
//	-grpc-address server grpc address in format [host]:[port]
//	-d server database DSN
//	-c/-config json file path with configs
//	-hash-key response integrity hash key
//	-version server version
//	-schema-version pinned client cache schema version
//	-request-timeout server request timeout (e.g. "30s")
//	-server dictionary server address used by the client
//	-adapter-timeout client request timeout (e.g. "15s")
//	-snapshot-driver client snapshot driver (sqlite|file)
//	-snapshot-dsn client snapshot path
//	-check-interval incremental sync period (e.g. "30m")
//	-probe-interval connectivity probe period (e.g. "30s")
//	-preload comma separated dictionary types fetched at startup
//	-batch-max-age skip batch refetch of types synced more recently than this
//	-log-file client log file
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-dict-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress, grpcServerAddress NetAddress
	var (
		databaseDSN, jsonConfigPath, hashKey, version, schemaVersion string
		adapterAddress, snapshotDriver, snapshotDSN, preload, logFile string
		requestTimeout, adapterTimeout, checkInterval, probeInterval  time.Duration
		batchMaxAge                                                   time.Duration
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Response integrity hash key")
	fs.StringVar(&version, "version", "", "Server version")
	fs.StringVar(&schemaVersion, "schema-version", "", "Pinned cache schema version")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s)")
	fs.StringVar(&adapterAddress, "server", "", "Dictionary server address")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 15s)")
	fs.StringVar(&snapshotDriver, "snapshot-driver", "", "Snapshot driver (sqlite|file)")
	fs.StringVar(&snapshotDSN, "snapshot-dsn", "", "Snapshot path")
	fs.DurationVar(&checkInterval, "check-interval", 0, "Incremental sync period (e.g., 30m)")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe period (e.g., 30s)")
	fs.StringVar(&preload, "preload", "", "Comma separated dictionary types to preload")
	fs.DurationVar(&batchMaxAge, "batch-max-age", 0, "Batch freshness window")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	return &StructuredConfig{
		App: App{
			HashKey:       hashKey,
			Version:       version,
			SchemaVersion: schemaVersion,
		},
		Storage: Storage{
			DB:       DB{DSN: databaseDSN},
			Snapshot: Snapshot{Driver: snapshotDriver, DSN: snapshotDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			CheckInterval: checkInterval,
			ProbeInterval: probeInterval,
		},
		Cache: Cache{
			PreloadTypes: splitList(preload),
			BatchMaxAge:  batchMaxAge,
		},
		Log:          Log{FilePath: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
