package server

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-dict-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-dict-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-dict-keeper/internal/logger"
)

const readinessInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	stop     chan struct{}
	stopOnce sync.Once

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		stop:            make(chan struct{}),
		logger:          logger,
	}, nil
}

// serve returns nil once shutdown has stopped the server.
func (g *grpcServer) serve() error {
	go g.watchReadiness()

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server: %w", err)
	}
	return nil
}

func (g *grpcServer) shutdown() {
	g.stopOnce.Do(func() {
		close(g.stop)
		g.handler.Shutdown()
		g.logger.Info().Msg("gRPC server Shutdown")
		g.server.GracefulStop()
	})
}

func (g *grpcServer) watchReadiness() {
	ticker := time.NewTicker(readinessInterval)
	defer ticker.Stop()

	for {
		ctx, cancel := context.WithTimeout(context.Background(), readinessInterval/2)
		g.handler.CheckReadiness(ctx)
		cancel()

		select {
		case <-g.stop:
			return
		case <-ticker.C:
		}
	}
}
