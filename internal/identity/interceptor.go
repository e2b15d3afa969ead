// Package identity extracts the caller identity from gRPC metadata and
// attaches per-request identifiers used by logging.
package identity

import (
	"context"

	"resource_broker/internal/core"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
)

const (
	// MetadataKeyClientID is the metadata key carrying the caller identity
	MetadataKeyClientID = "client-id"
)

type clientIDKey struct{}
type requestIDKey struct{}

// withRequestID adds a request ID to the context
func withRequestID(ctx context.Context) context.Context {
	return context.WithValue(ctx, requestIDKey{}, uuid.New().String())
}

// RequestID extracts the request ID from the context
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return "unknown"
}

// ClientIP extracts the client address from the context
func ClientIP(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok {
		return p.Addr.String()
	}
	return "unknown"
}

// FromContext returns the caller identity attached by the interceptors.
// The second return is false when the caller sent no client-id metadata.
func FromContext(ctx context.Context) (string, bool) {
	if id, ok := ctx.Value(clientIDKey{}).(string); ok && id != "" {
		return id, true
	}
	return "", false
}

// WithClientID attaches an explicit caller identity, bypassing metadata.
// Used by in-process callers and tests.
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey{}, clientID)
}

// withClientID reads client-id metadata and attaches it to the context.
// A missing or empty value is left for the handler to reject, since only
// some RPCs require an identity.
func withClientID(ctx context.Context) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx
	}
	vals := md.Get(MetadataKeyClientID)
	if len(vals) == 0 || vals[0] == "" {
		return ctx
	}
	return context.WithValue(ctx, clientIDKey{}, vals[0])
}

// wrappedStream overrides the stream context so handlers see the
// enriched context.
type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context {
	return w.ctx
}

// UnaryServerInterceptor attaches request IDs and caller identity to
// unary calls and logs each call.
func UnaryServerInterceptor(logger core.ILogger) grpc.UnaryServerInterceptor {
	log := logger.WithField("component", "identity")
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		ctx = withRequestID(withClientID(ctx))

		clientID, _ := FromContext(ctx)
		log.Debug("Unary call",
			"method", info.FullMethod,
			"request_id", RequestID(ctx),
			"client_id", clientID,
			"client_ip", ClientIP(ctx))

		return handler(ctx, req)
	}
}

// StreamServerInterceptor attaches request IDs and caller identity to
// streaming calls and logs stream open and close.
func StreamServerInterceptor(logger core.ILogger) grpc.StreamServerInterceptor {
	log := logger.WithField("component", "identity")
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx := withRequestID(withClientID(ss.Context()))

		clientID, _ := FromContext(ctx)
		log.Debug("Stream opened",
			"method", info.FullMethod,
			"request_id", RequestID(ctx),
			"client_id", clientID,
			"client_ip", ClientIP(ctx))

		err := handler(srv, &wrappedStream{ServerStream: ss, ctx: ctx})

		log.Debug("Stream closed",
			"method", info.FullMethod,
			"request_id", RequestID(ctx),
			"error", err)
		return err
	}
}
